
package models

import (
	"strconv"
	"time"
)

// Table is one <table> element: its first row as header plus the data rows.
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// Width is the number of header columns.
func (t Table) Width() int { return len(t.Header) }

// Collection holds every table found in one document, in document order.
type Collection []Table

type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindBool
	KindDate
)

// Value is a nullable typed cell produced by a dataset mapper.
type Value struct {
	Kind Kind
	Str  string
	Int  int64
	Bool bool
	Date time.Time
}

func Null() Value            { return Value{} }
func String(s string) Value  { return Value{Kind: KindString, Str: s} }
func Int(n int64) Value      { return Value{Kind: KindInt, Int: n} }
func Bool(b bool) Value      { return Value{Kind: KindBool, Bool: b} }
func Date(t time.Time) Value { return Value{Kind: KindDate, Date: t} }
func (v Value) IsNull() bool { return v.Kind == KindNull }

// Text renders the value the way it is persisted: empty for null, decimal
// integers, true/false and ISO dates.
func (v Value) Text() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindDate:
		return v.Date.Format("2006-01-02")
	}
	return ""
}

// IntPtr converts an optional int into an Int or Null value.
func IntPtr(n *int) Value {
	if n == nil {
		return Null()
	}
	return Int(int64(*n))
}

// Record maps canonical column names to typed values.
type Record map[string]Value

// RecordSet is an ordered set of records sharing one column layout.
type RecordSet struct {
	Columns []string `json:"columns"`
	Records []Record `json:"records"`
}

// Len returns the number of records.
func (rs RecordSet) Len() int { return len(rs.Records) }
