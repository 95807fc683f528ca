package viewmodel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidFilter is returned when a filter expression cannot be parsed.
var ErrInvalidFilter = errors.New("invalid filter")

// ParseColumnFilter parses "column:operator[:value]" against a schema. The
// operand is typed from the column (numbers, true/false, YYYY-MM-DD dates);
// "in" takes a comma separated list and "contains" always takes text.
// Event columns may be given as "event:<id>:<field>".
func ParseColumnFilter(schema *Schema, expr string) (ColumnFilter, error) {
	parts := strings.Split(strings.TrimSpace(expr), ":")

	for i := 1; i < len(parts); i++ {
		op, ok := ParseOperator(parts[i])
		if !ok {
			continue
		}
		column := strings.Join(parts[:i], ":")
		col, known := schema.Lookup(column)
		if !known {
			continue
		}
		raw := strings.Join(parts[i+1:], ":")
		return buildFilter(col, op, raw, i+1 < len(parts))
	}

	return ColumnFilter{}, fmt.Errorf("%w: %q is not column:operator[:value]", ErrInvalidFilter, expr)
}

func buildFilter(col Column, op Operator, raw string, hasValue bool) (ColumnFilter, error) {
	f := ColumnFilter{Column: col.Key, Operator: op}

	switch op {
	case OpIsEmpty, OpIsNotEmpty:
		return f, nil
	case OpContains:
		f.Value = StringValue(raw)
		return f, nil
	case OpIn:
		if !hasValue || raw == "" {
			return ColumnFilter{}, fmt.Errorf("%w: %s needs a comma separated list", ErrInvalidFilter, op)
		}
		for _, item := range strings.Split(raw, ",") {
			v, err := parseOperand(col, strings.TrimSpace(item))
			if err != nil {
				return ColumnFilter{}, err
			}
			f.Values = append(f.Values, v)
		}
		return f, nil
	default:
		if !hasValue {
			return ColumnFilter{}, fmt.Errorf("%w: %s needs a value", ErrInvalidFilter, op)
		}
		v, err := parseOperand(col, raw)
		if err != nil {
			return ColumnFilter{}, err
		}
		f.Value = v
		return f, nil
	}
}

func parseOperand(col Column, raw string) (Value, error) {
	switch col.Type {
	case CellNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: column %s expects a number, got %q", ErrInvalidFilter, col.Key, raw)
		}
		return NumberValue(n), nil
	case CellBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Value{}, fmt.Errorf("%w: column %s expects true or false, got %q", ErrInvalidFilter, col.Key, raw)
		}
		return BoolValue(b), nil
	case CellDate:
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return Value{}, fmt.Errorf("%w: column %s expects YYYY-MM-DD, got %q", ErrInvalidFilter, col.Key, raw)
		}
		return DateValue(t), nil
	default:
		return StringValue(raw), nil
	}
}

// ParseSortConfig parses "column" or "column:asc|desc". An empty string
// yields the unsorted configuration.
func ParseSortConfig(schema *Schema, expr string) (SortConfig, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return SortConfig{}, nil
	}

	column, dir := expr, Ascending
	if i := strings.LastIndex(expr, ":"); i > 0 {
		switch strings.ToLower(expr[i+1:]) {
		case "asc":
			column = expr[:i]
		case "desc":
			column, dir = expr[:i], Descending
		}
	}

	if _, ok := schema.Lookup(column); !ok {
		return SortConfig{}, fmt.Errorf("unknown sort column %q", column)
	}
	return SortConfig{Column: column, Direction: dir}, nil
}
