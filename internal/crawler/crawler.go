
package crawler

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultUserAgent identifies the harvester to the sites it reads.
const DefaultUserAgent = "gov-tables/1.0 (+https://github.com/gov-tables)"

var ErrFetch = errors.New("fetch failure")

// FetchError wraps the transport or status failure behind a fetch.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string { return fmt.Sprintf("unable to fetch %s: %v", e.URL, e.Err) }

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// Options configures an HTTPClient. Zero values mean transport defaults: no
// overall timeout and no size cap.
type Options struct {
	Timeout   time.Duration
	SizeCap   int64
	UserAgent string
	// Charset names the fixed encoding of fetched pages ("utf-8" when empty).
	// "auto" sniffs it from the Content-Type header and the markup instead.
	Charset   string
}

type HTTPClient struct {
	client    *http.Client
	sizeCap   int64
	userAgent string
	charset   string
}

// Page is a fetched and decoded document.
type Page struct {
	URL         string
	ContentType string
	Text        string
	Elapsed     time.Duration
}

func NewHTTPClient(opts Options) *HTTPClient {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	return &HTTPClient{
		client: &http.Client{
			Transport: transport,
			Timeout:   opts.Timeout,
		},
		sizeCap:   opts.SizeCap,
		userAgent: ua,
		charset:   opts.Charset,
	}
}

// Fetch issues a single GET and returns the decoded body. It never retries;
// every failure comes back as a *FetchError.
func (h *HTTPClient) Fetch(ctx context.Context, rawURL string) (Page, error) {
	start := time.Now()
	fail := func(err error) (Page, error) {
		return Page{}, &FetchError{URL: rawURL, Err: err}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fail(err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fail(errors.New("invalid url"))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fail(err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fail(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(fmt.Errorf("http status %d", resp.StatusCode))
	}

	var body io.Reader = resp.Body
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return fail(err)
		}
		defer gz.Close()
		body = gz
	}
	if h.sizeCap > 0 {
		body = io.LimitReader(body, h.sizeCap)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return fail(fmt.Errorf("read body: %w", err))
	}

	contentType := resp.Header.Get("Content-Type")
	text, err := Decode(data, contentType, h.charset)
	if err != nil {
		return fail(err)
	}

	return Page{
		URL:         resp.Request.URL.String(),
		ContentType: contentType,
		Text:        text,
		Elapsed:     time.Since(start),
	}, nil
}
