// Package viewmodel turns normalized wedding rows (guests or items plus their
// per-event relations) into flat, filterable, sortable table rows.
//
// The pipeline is pivot, then filter, then sort. Every stage is a pure
// function over immutable snapshots; Pipeline adds identity-keyed
// memoization on top for callers that re-render often.
package viewmodel

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// CellType is the tagged type of a table cell.
type CellType int

// Cell types.
const (
	CellNull CellType = iota
	CellString
	CellNumber
	CellBool
	CellDate
)

// String returns the cell type name.
func (c CellType) String() string {
	switch c {
	case CellNull:
		return "null"
	case CellString:
		return "string"
	case CellNumber:
		return "number"
	case CellBool:
		return "bool"
	case CellDate:
		return "date"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Value is a single typed table cell. The zero Value is null.
type Value struct {
	t    time.Time
	s    string
	n    float64
	kind CellType
	b    bool
}

// NullValue returns an empty cell.
func NullValue() Value {
	return Value{}
}

// StringValue returns a string cell.
func StringValue(s string) Value {
	return Value{kind: CellString, s: s}
}

// NumberValue returns a numeric cell. NaN is stored as null.
func NumberValue(n float64) Value {
	if math.IsNaN(n) {
		return Value{}
	}
	return Value{kind: CellNumber, n: n}
}

// IntValue returns a numeric cell from an int.
func IntValue(n int) Value {
	return Value{kind: CellNumber, n: float64(n)}
}

// OptionalInt returns a numeric cell, or null when n is nil.
func OptionalInt(n *int) Value {
	if n == nil {
		return Value{}
	}
	return IntValue(*n)
}

// BoolValue returns a boolean cell.
func BoolValue(b bool) Value {
	return Value{kind: CellBool, b: b}
}

// DateValue returns a date cell. The zero time is stored as null.
func DateValue(t time.Time) Value {
	if t.IsZero() {
		return Value{}
	}
	return Value{kind: CellDate, t: t}
}

// Type returns the cell type.
func (v Value) Type() CellType {
	return v.kind
}

// IsNull returns true for null cells.
func (v Value) IsNull() bool {
	return v.kind == CellNull
}

// IsEmpty returns true for null cells and empty strings. Zero and false are
// not empty.
func (v Value) IsEmpty() bool {
	return v.kind == CellNull || (v.kind == CellString && v.s == "")
}

// Str returns the string payload.
func (v Value) Str() string { return v.s }

// Num returns the numeric payload.
func (v Value) Num() float64 { return v.n }

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.b }

// Time returns the date payload.
func (v Value) Time() time.Time { return v.t }

// Text renders the cell as plain text. Null renders as the empty string.
func (v Value) Text() string {
	switch v.kind {
	case CellString:
		return v.s
	case CellNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case CellBool:
		return strconv.FormatBool(v.b)
	case CellDate:
		return v.t.Format("2006-01-02")
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (v Value) String() string {
	if v.kind == CellNull {
		return "<null>"
	}
	return v.Text()
}

// Equal reports strict equality of two cells. Strings compare
// case-insensitively; cells of different types are never equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case CellString:
		return strings.EqualFold(v.s, o.s)
	case CellNumber:
		return v.n == o.n
	case CellBool:
		return v.b == o.b
	case CellDate:
		return v.t.Equal(o.t)
	default:
		return true
	}
}

// compareOrdered compares two numeric or date cells of the same type.
// ok is false when the cells are not comparable.
func compareOrdered(a, b Value) (cmp int, ok bool) {
	if a.kind != b.kind {
		return 0, false
	}
	switch a.kind {
	case CellNumber:
		switch {
		case a.n < b.n:
			return -1, true
		case a.n > b.n:
			return 1, true
		default:
			return 0, true
		}
	case CellDate:
		return a.t.Compare(b.t), true
	default:
		return 0, false
	}
}
