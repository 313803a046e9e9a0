
package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"gov-tables/internal/models"
)

// walkTables parses markup into a tree and reads each outermost table. Rows
// belonging to nested tables are skipped; their text still shows up inside
// the enclosing cell.
func walkTables(markup string) (models.Collection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}

	var tables models.Collection
	doc.Find("table").Each(func(i int, tbl *goquery.Selection) {
		if tbl.ParentsFiltered("table").Length() > 0 {
			return
		}
		t := models.Table{Header: []string{}, Rows: [][]string{}}
		haveHeader := false
		tbl.Find("tr").Each(func(j int, tr *goquery.Selection) {
			if !tr.Closest("table").IsSelection(tbl) {
				return
			}
			row := []string{}
			tr.ChildrenFiltered("td,th").Each(func(k int, cell *goquery.Selection) {
				row = append(row, strings.TrimSpace(cellText(cell)))
			})
			if !haveHeader {
				t.Header, haveHeader = row, true
				return
			}
			t.Rows = append(t.Rows, row)
		})
		tables = append(tables, t)
	})
	return tables, nil
}

// cellText concatenates descendant text, turning <br> into newlines.
func cellText(cell *goquery.Selection) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
		case html.ElementNode:
			if n.Data == "br" {
				b.WriteByte('\n')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range cell.Nodes {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	return b.String()
}
