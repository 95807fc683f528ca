package viewmodel

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is the sort direction.
type Direction int

// Sort directions.
const (
	Ascending Direction = iota
	Descending
)

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// SortConfig selects the sort column and direction. An empty Column keeps
// the input order.
type SortConfig struct {
	Column    string
	Direction Direction
}

// IsSorted returns true if a sort column is selected.
func (c SortConfig) IsSorted() bool {
	return c.Column != ""
}

// Toggle returns the configuration after clicking on column: a new column
// sorts ascending, the same column flips direction.
func (c SortConfig) Toggle(column string) SortConfig {
	if c.Column != column {
		return SortConfig{Column: column, Direction: Ascending}
	}
	if c.Direction == Ascending {
		return SortConfig{Column: column, Direction: Descending}
	}
	return SortConfig{Column: column, Direction: Ascending}
}

// Sort returns a new slice ordered by cfg. Strings are collated for lang and
// ignore case. Null numbers and missing dates always go last, whatever the
// direction. Equal keys keep their input order. The input is not modified.
func Sort(rows []Row, cfg SortConfig, lang language.Tag) []Row {
	out := slices.Clone(rows)
	if !cfg.IsSorted() || len(out) < 2 {
		return out
	}

	col, ok := out[0].schema.Lookup(cfg.Column)
	if !ok {
		return out
	}

	collator := collate.New(lang, collate.IgnoreCase)

	slices.SortStableFunc(out, func(a, b Row) int {
		av, _ := a.Value(col.Key)
		bv, _ := b.Value(col.Key)
		return compareCells(collator, col.Type, av, bv, cfg.Direction)
	})

	return out
}

// compareCells orders two cells of a column. Nulls are placed last before
// the direction is applied so that descending sorts keep them at the bottom.
func compareCells(collator *collate.Collator, t CellType, a, b Value, dir Direction) int {
	aNull, bNull := a.IsNull(), b.IsNull()
	switch {
	case aNull && bNull:
		return 0
	case aNull:
		return 1
	case bNull:
		return -1
	}

	var cmp int
	switch t {
	case CellString:
		cmp = collator.CompareString(a.Text(), b.Text())
	case CellBool:
		cmp = boolRank(a) - boolRank(b)
	default:
		var ok bool
		cmp, ok = compareOrdered(a, b)
		if !ok {
			// Mixed types inside one column: keep cells with the column's
			// type ahead of strays.
			cmp = typeRank(t, a) - typeRank(t, b)
		}
	}

	if dir == Descending {
		return -cmp
	}
	return cmp
}

func boolRank(v Value) int {
	if v.Type() == CellBool && v.Bool() {
		return 1
	}
	return 0
}

func typeRank(t CellType, v Value) int {
	if v.Type() == t {
		return 0
	}
	return 1
}
