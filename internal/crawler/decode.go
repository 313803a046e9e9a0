package crawler

import (
	"fmt"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// CharsetAuto asks Decode to sniff the encoding instead of using a fixed one.
const CharsetAuto = "auto"

// Decode converts raw bytes to text. Undecodable sequences become U+FFFD
// rather than failing the fetch. Only an unknown charset name is an error.
func Decode(data []byte, contentType, name string) (string, error) {
	var enc encoding.Encoding
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "", "utf-8", "utf8":
		enc = unicode.UTF8
	case CharsetAuto:
		enc, _, _ = charset.DetermineEncoding(data, contentType)
	default:
		var err error
		enc, err = htmlindex.Get(n)
		if err != nil {
			return "", fmt.Errorf("charset %q: %w", name, err)
		}
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "�"), nil
	}
	return string(out), nil
}
