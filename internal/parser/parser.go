
package parser

import (
	"errors"
	"fmt"
	"strings"

	"gov-tables/internal/models"
)

// Strategy selects how markup is turned into tables. There is no automatic
// fallback between strategies; callers pick one.
type Strategy string

const (
	// Tokenizer walks the token stream with a single open-table flag.
	Tokenizer Strategy = "tokenizer"
	// DOM builds a document tree and walks the outermost tables.
	DOM Strategy = "dom"
)

var (
	ErrNoTables      = errors.New("no tables found")
	ErrTableIndex    = errors.New("table index out of range")
	ErrUnknownParser = errors.New("unknown parsing strategy")
)

// ParseStrategy maps a configuration string to a Strategy. Empty means Tokenizer.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(name))) {
	case "", Tokenizer:
		return Tokenizer, nil
	case DOM:
		return DOM, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownParser, name)
}

type Parser struct {
	strategy Strategy
}

func New(strategy Strategy) *Parser {
	if strategy == "" {
		strategy = Tokenizer
	}
	return &Parser{strategy: strategy}
}

func (p *Parser) Strategy() Strategy { return p.strategy }

// Extract returns every table in markup, in document order. Malformed markup
// never fails; a document without any table yields ErrNoTables.
func (p *Parser) Extract(markup string) (models.Collection, error) {
	var (
		tables models.Collection
		err    error
	)
	switch p.strategy {
	case Tokenizer:
		tables = scanTables(markup)
	case DOM:
		tables, err = walkTables(markup)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, p.strategy)
	}
	if len(tables) == 0 {
		return nil, ErrNoTables
	}
	return tables, nil
}

// IndexError reports a table position beyond what was extracted.
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("table index %d out of range (%d tables)", e.Index, e.Count)
}

func (e *IndexError) Unwrap() error { return ErrTableIndex }

// Select returns the table at index.
func Select(tables models.Collection, index int) (models.Table, error) {
	if index < 0 || index >= len(tables) {
		return models.Table{}, &IndexError{Index: index, Count: len(tables)}
	}
	return tables[index], nil
}
