package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFilters(t *testing.T) {
	rows := guestRows()

	tests := []struct {
		name    string
		filters []ColumnFilter
		want    []string
	}{
		{
			name:    "equals ignores case",
			filters: []ColumnFilter{{Column: GuestRSVP, Operator: OpEquals, Value: StringValue("ACCEPTED")}},
			want:    []string{"g1"},
		},
		{
			name:    "contains",
			filters: []ColumnFilter{{Column: GuestName, Operator: OpContains, Value: StringValue("AR")}},
			want:    []string{"g3"},
		},
		{
			name:    "in",
			filters: []ColumnFilter{{Column: GuestSide, Operator: OpIn, Values: []Value{StringValue("groom"), StringValue("friends")}}},
			want:    []string{"g2"},
		},
		{
			name:    "gte skips nulls",
			filters: []ColumnFilter{{Column: GuestTable, Operator: OpGTE, Value: NumberValue(2)}},
			want:    []string{"g3"},
		},
		{
			name:    "lte",
			filters: []ColumnFilter{{Column: GuestTable, Operator: OpLTE, Value: NumberValue(2)}},
			want:    []string{"g1"},
		},
		{
			name:    "isEmpty on null",
			filters: []ColumnFilter{{Column: GuestTable, Operator: OpIsEmpty}},
			want:    []string{"g2"},
		},
		{
			name:    "isEmpty on empty string",
			filters: []ColumnFilter{{Column: GuestDietary, Operator: OpIsEmpty}},
			want:    []string{"g1", "g2"},
		},
		{
			name:    "isNotEmpty",
			filters: []ColumnFilter{{Column: GuestTable, Operator: OpIsNotEmpty}},
			want:    []string{"g1", "g3"},
		},
		{
			name:    "event column",
			filters: []ColumnFilter{{Column: EventColumn("ceremony", GuestEventAttending), Operator: OpEquals, Value: BoolValue(true)}},
			want:    []string{"g1"},
		},
		{
			name: "filters are combined with and",
			filters: []ColumnFilter{
				{Column: GuestSide, Operator: OpEquals, Value: StringValue("bride")},
				{Column: GuestPlusOne, Operator: OpEquals, Value: BoolValue(false)},
			},
			want: []string{"g3"},
		},
		{
			name:    "mismatched operand type matches nothing",
			filters: []ColumnFilter{{Column: GuestTable, Operator: OpEquals, Value: StringValue("1")}},
			want:    []string{},
		},
		{
			name:    "incompatible operator is ignored",
			filters: []ColumnFilter{{Column: GuestName, Operator: OpGTE, Value: StringValue("b")}},
			want:    []string{"g1", "g2", "g3"},
		},
		{
			name:    "unknown column is ignored",
			filters: []ColumnFilter{{Column: "shoe_size", Operator: OpEquals, Value: NumberValue(9)}},
			want:    []string{"g1", "g2", "g3"},
		},
		{
			name:    "unknown operator is ignored",
			filters: []ColumnFilter{{Column: GuestName, Operator: "startsWith", Value: StringValue("a")}},
			want:    []string{"g1", "g2", "g3"},
		},
		{
			name:    "in without values is ignored",
			filters: []ColumnFilter{{Column: GuestSide, Operator: OpIn}},
			want:    []string{"g1", "g2", "g3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilters(rows, tt.filters)
			assert.Equal(t, tt.want, rowIDs(got))
		})
	}
}

func TestApplyFiltersIdentity(t *testing.T) {
	rows := guestRows()

	got := ApplyFilters(rows, nil)
	require.Len(t, got, len(rows))
	assert.Same(t, &rows[0], &got[0])

	got = ApplyFilters(rows, []ColumnFilter{{Column: "nope", Operator: OpIsEmpty}})
	assert.Same(t, &rows[0], &got[0])
}

func TestApplyFiltersMonotonic(t *testing.T) {
	rows := guestRows()
	candidates := []ColumnFilter{
		{Column: GuestSide, Operator: OpEquals, Value: StringValue("bride")},
		{Column: GuestTable, Operator: OpIsNotEmpty},
		{Column: GuestName, Operator: OpContains, Value: StringValue("a")},
		{Column: GuestPlusOne, Operator: OpEquals, Value: BoolValue(true)},
		{Column: "nope", Operator: OpEquals, Value: StringValue("x")},
	}

	var active []ColumnFilter
	previous := rowIDs(ApplyFilters(rows, active))
	for _, f := range candidates {
		active = append(active, f)
		current := rowIDs(ApplyFilters(rows, active))
		assert.LessOrEqual(t, len(current), len(previous), f.String())
		assert.Subset(t, previous, current, f.String())
		previous = current
	}
}

func TestColumnFilterValidate(t *testing.T) {
	tests := []struct {
		name    string
		filter  ColumnFilter
		wantErr bool
	}{
		{"valid equals", ColumnFilter{Column: GuestSide, Operator: OpEquals, Value: StringValue("bride")}, false},
		{"valid event column", ColumnFilter{Column: EventColumn("e1", GuestEventShuttleTo), Operator: OpIsEmpty}, false},
		{"unknown operator", ColumnFilter{Column: GuestSide, Operator: "like"}, true},
		{"unknown column", ColumnFilter{Column: "shoe_size", Operator: OpIsEmpty}, true},
		{"unknown event field", ColumnFilter{Column: EventColumn("e1", "meal"), Operator: OpIsEmpty}, true},
		{"contains needs text", ColumnFilter{Column: GuestTable, Operator: OpContains, Value: NumberValue(1)}, true},
		{"gte rejects bool", ColumnFilter{Column: GuestPlusOne, Operator: OpGTE, Value: BoolValue(true)}, true},
		{"gte rejects null", ColumnFilter{Column: GuestTable, Operator: OpGTE}, true},
		{"in rejects mixed null", ColumnFilter{Column: GuestSide, Operator: OpIn, Values: []Value{StringValue("a"), NullValue()}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate(GuestSchema)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestColumnFilterString(t *testing.T) {
	assert.Equal(t, "side:equals:bride", ColumnFilter{Column: GuestSide, Operator: OpEquals, Value: StringValue("bride")}.String())
	assert.Equal(t, "table_number:isEmpty", ColumnFilter{Column: GuestTable, Operator: OpIsEmpty}.String())
	assert.Equal(t, "table_number:in:1,2", ColumnFilter{Column: GuestTable, Operator: OpIn, Values: []Value{IntValue(1), IntValue(2)}}.String())
}

func TestSearch(t *testing.T) {
	rows := guestRows()

	assert.Equal(t, []string{"g1"}, rowIDs(Search(rows, "  ALICE ")))
	assert.Equal(t, []string{"g2", "g3"}, rowIDs(Search(rows, "o")))
	assert.Empty(t, Search(rows, "zelda"))

	got := Search(rows, "   ")
	assert.Same(t, &rows[0], &got[0])
}
