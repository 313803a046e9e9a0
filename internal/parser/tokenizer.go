
package parser

import (
	"strings"

	"golang.org/x/net/html"

	"gov-tables/internal/models"
)

type scanState int

const (
	outsideTable scanState = iota
	inTableBeforeRow
	inRowBeforeCell
	inCell
)

// scanner reconstructs tables from start/end/text events. It tracks a single
// open table rather than a stack: a <table> seen while one is already open is
// ignored, and the first </table> closes the tracked table. Pages with
// genuinely nested tables need the DOM strategy.
type scanner struct {
	open       bool
	header     []string
	haveHeader bool
	rows       [][]string
	row        []string
	cell       *strings.Builder

	tables models.Collection
}

func (s *scanner) state() scanState {
	switch {
	case !s.open:
		return outsideTable
	case s.cell != nil:
		return inCell
	case s.row != nil:
		return inRowBeforeCell
	}
	return inTableBeforeRow
}

func (s *scanner) startTag(name string) {
	if name == "table" {
		if s.state() == outsideTable {
			s.open = true
			s.header, s.haveHeader = nil, false
			s.rows = [][]string{}
		}
		return
	}
	if !s.open {
		return
	}
	switch name {
	case "tr":
		s.row = []string{}
	case "td", "th":
		if s.row != nil {
			s.cell = &strings.Builder{}
		}
	case "br":
		if s.cell != nil {
			s.cell.WriteByte('\n')
		}
	}
}

func (s *scanner) endTag(name string) {
	if !s.open {
		return
	}
	switch name {
	case "td", "th":
		if s.cell == nil {
			return
		}
		if s.row != nil {
			s.row = append(s.row, strings.TrimSpace(s.cell.String()))
		}
		s.cell = nil
	case "tr":
		if s.row == nil {
			return
		}
		if !s.haveHeader {
			s.header, s.haveHeader = s.row, true
		} else {
			s.rows = append(s.rows, s.row)
		}
		s.row = nil
	case "table":
		header := s.header
		if header == nil {
			header = []string{}
		}
		s.tables = append(s.tables, models.Table{Header: header, Rows: s.rows})
		s.open = false
		s.header, s.haveHeader, s.rows, s.row, s.cell = nil, false, nil, nil, nil
	}
}

func (s *scanner) text(data string) {
	if s.open && s.cell != nil {
		s.cell.WriteString(data)
	}
}

// scanTables runs one forward pass over markup. Tokenizer errors end the scan;
// a table still open at that point is not emitted.
func scanTables(markup string) models.Collection {
	s := &scanner{}
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return s.tables
		case html.TextToken:
			s.text(string(z.Text()))
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			s.startTag(string(name))
		case html.EndTagToken:
			name, _ := z.TagName()
			s.endTag(string(name))
		}
	}
}
