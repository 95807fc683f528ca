package viewmodel

import (
	"fmt"
	"log/slog"
	"strings"
)

// Operator is a column filter predicate.
type Operator string

// Filter operators.
const (
	OpEquals     Operator = "equals"
	OpContains   Operator = "contains"
	OpIn         Operator = "in"
	OpGTE        Operator = "gte"
	OpLTE        Operator = "lte"
	OpIsEmpty    Operator = "isEmpty"
	OpIsNotEmpty Operator = "isNotEmpty"
)

// operandTypes lists the operand types each operator accepts. A nil entry
// means the operator takes no operand.
var operandTypes = map[Operator][]CellType{
	OpEquals:     {CellString, CellNumber, CellBool, CellDate},
	OpContains:   {CellString},
	OpIn:         {CellString, CellNumber, CellBool, CellDate},
	OpGTE:        {CellNumber, CellDate},
	OpLTE:        {CellNumber, CellDate},
	OpIsEmpty:    nil,
	OpIsNotEmpty: nil,
}

// ParseOperator returns the operator with the given name, ignoring case.
func ParseOperator(name string) (Operator, bool) {
	for op := range operandTypes {
		if strings.EqualFold(string(op), name) {
			return op, true
		}
	}
	return "", false
}

// ColumnFilter is a declarative predicate on one column. OpIn reads Values;
// every other operator with an operand reads Value.
type ColumnFilter struct {
	Column   string
	Operator Operator
	Value    Value
	Values   []Value
}

// String renders the filter in column:operator:value form.
func (f ColumnFilter) String() string {
	switch f.Operator {
	case OpIsEmpty, OpIsNotEmpty:
		return fmt.Sprintf("%s:%s", f.Column, f.Operator)
	case OpIn:
		parts := make([]string, len(f.Values))
		for i, v := range f.Values {
			parts[i] = v.Text()
		}
		return fmt.Sprintf("%s:%s:%s", f.Column, f.Operator, strings.Join(parts, ","))
	default:
		return fmt.Sprintf("%s:%s:%s", f.Column, f.Operator, f.Value.Text())
	}
}

// Validate reports why the filter cannot be applied to rows of the schema.
// A nil error means the filter is usable.
func (f ColumnFilter) Validate(schema *Schema) error {
	accepted, known := operandTypes[f.Operator]
	if !known {
		return fmt.Errorf("unknown operator %q", f.Operator)
	}
	if _, ok := schema.Lookup(f.Column); !ok {
		return fmt.Errorf("unknown column %q", f.Column)
	}
	if accepted == nil {
		return nil
	}

	operands := []Value{f.Value}
	if f.Operator == OpIn {
		if len(f.Values) == 0 {
			return fmt.Errorf("operator %s needs at least one value", f.Operator)
		}
		operands = f.Values
	}
	for _, v := range operands {
		if !acceptsType(accepted, v.Type()) {
			return fmt.Errorf("operator %s does not accept %s operands", f.Operator, v.Type())
		}
	}
	return nil
}

func acceptsType(accepted []CellType, t CellType) bool {
	for _, a := range accepted {
		if a == t {
			return true
		}
	}
	return false
}

// matches evaluates a validated filter against one cell.
func (f ColumnFilter) matches(cell Value) bool {
	switch f.Operator {
	case OpIsEmpty:
		return cell.IsEmpty()
	case OpIsNotEmpty:
		return !cell.IsEmpty()
	case OpEquals:
		return cell.Equal(f.Value)
	case OpIn:
		for _, v := range f.Values {
			if cell.Equal(v) {
				return true
			}
		}
		return false
	case OpContains:
		if cell.IsNull() {
			return false
		}
		return strings.Contains(strings.ToLower(cell.Text()), strings.ToLower(f.Value.Str()))
	case OpGTE:
		cmp, ok := compareOrdered(cell, f.Value)
		return ok && cmp >= 0
	case OpLTE:
		cmp, ok := compareOrdered(cell, f.Value)
		return ok && cmp <= 0
	default:
		return true
	}
}

// ApplyFilters keeps the rows matching every filter. Filters that cannot be
// applied (unknown operator, unknown column, incompatible operand) are
// skipped. With no filters the input slice itself is returned.
func ApplyFilters(rows []Row, filters []ColumnFilter) []Row {
	if len(filters) == 0 || len(rows) == 0 {
		return rows
	}

	active := usableFilters(rows[0].schema, filters)
	if len(active) == 0 {
		return rows
	}

	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if rowMatches(row, active) {
			out = append(out, row)
		}
	}
	return out
}

func usableFilters(schema *Schema, filters []ColumnFilter) []ColumnFilter {
	active := make([]ColumnFilter, 0, len(filters))
	for _, f := range filters {
		if err := f.Validate(schema); err != nil {
			slog.Debug("Ignoring table filter", "filter", f.String(), "reason", err)
			continue
		}
		active = append(active, f)
	}
	return active
}

func rowMatches(row Row, filters []ColumnFilter) bool {
	for _, f := range filters {
		cell, ok := row.Value(f.Column)
		if !ok {
			continue
		}
		if !f.matches(cell) {
			return false
		}
	}
	return true
}

// Search keeps the rows whose display name contains the trimmed query,
// ignoring case. An empty query returns the input slice itself.
func Search(rows []Row, query string) []Row {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rows
	}

	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Name), query) {
			out = append(out, row)
		}
	}
	return out
}
