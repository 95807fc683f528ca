package viewmodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestSort(t *testing.T) {
	rows := guestRows()

	tests := []struct {
		name string
		cfg  SortConfig
		want []string
	}{
		{"unsorted keeps input order", SortConfig{}, []string{"g1", "g2", "g3"}},
		{"strings ignore case", SortConfig{Column: GuestName}, []string{"g1", "g2", "g3"}},
		{"strings descending", SortConfig{Column: GuestName, Direction: Descending}, []string{"g3", "g2", "g1"}},
		{"numbers with null last", SortConfig{Column: GuestTable}, []string{"g1", "g3", "g2"}},
		{"null stays last descending", SortConfig{Column: GuestTable, Direction: Descending}, []string{"g3", "g1", "g2"}},
		{"ties keep input order", SortConfig{Column: GuestSide}, []string{"g1", "g3", "g2"}},
		{"ties keep input order descending", SortConfig{Column: GuestSide, Direction: Descending}, []string{"g2", "g1", "g3"}},
		{"false before true", SortConfig{Column: GuestPlusOne}, []string{"g2", "g3", "g1"}},
		{"event column", SortConfig{Column: EventColumn("ceremony", GuestEventAttending), Direction: Descending}, []string{"g1", "g2", "g3"}},
		{"unknown column keeps input order", SortConfig{Column: "shoe_size"}, []string{"g1", "g2", "g3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sort(rows, tt.cfg, language.English)
			assert.Equal(t, tt.want, rowIDs(got))
		})
	}
}

func TestSortIsIdempotent(t *testing.T) {
	rows := guestRows()

	for _, cfg := range []SortConfig{
		{Column: GuestSide},
		{Column: GuestSide, Direction: Descending},
		{Column: GuestTable, Direction: Descending},
		{Column: GuestRSVP},
	} {
		once := Sort(rows, cfg, language.English)
		twice := Sort(once, cfg, language.English)
		assert.Equal(t, rowIDs(once), rowIDs(twice), cfg.Column)
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	rows := guestRows()

	got := Sort(rows, SortConfig{Column: GuestName, Direction: Descending}, language.English)

	assert.Equal(t, []string{"g1", "g2", "g3"}, rowIDs(rows))
	assert.NotSame(t, &rows[0], &got[0])
}

type milestone struct {
	id  string
	due time.Time
}

func TestSortDates(t *testing.T) {
	src := Source[milestone, struct{}]{
		Schema:   NewSchema([]Column{{Key: "due", Label: "Due", Type: CellDate}}, nil),
		EntityID: func(m milestone) string { return m.id },
		Name:     func(m milestone) string { return m.id },
		Fields: func(m milestone) map[string]Value {
			return map[string]Value{"due": DateValue(m.due)}
		},
		RelationEntityID: func(struct{}) string { return "" },
		RelationEventID:  func(struct{}) string { return "" },
		RelationFields:   func(struct{}) map[string]Value { return nil },
	}
	rows := Pivot(src, []milestone{
		{id: "dress", due: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)},
		{id: "cake"},
		{id: "venue", due: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)

	asc := Sort(rows, SortConfig{Column: "due"}, language.English)
	desc := Sort(rows, SortConfig{Column: "due", Direction: Descending}, language.English)

	assert.Equal(t, []string{"venue", "dress", "cake"}, rowIDs(asc))
	assert.Equal(t, []string{"dress", "venue", "cake"}, rowIDs(desc))
}

func TestSortConfigToggle(t *testing.T) {
	cfg := SortConfig{}

	cfg = cfg.Toggle(GuestName)
	assert.Equal(t, SortConfig{Column: GuestName, Direction: Ascending}, cfg)

	cfg = cfg.Toggle(GuestName)
	assert.Equal(t, SortConfig{Column: GuestName, Direction: Descending}, cfg)

	cfg = cfg.Toggle(GuestName)
	assert.Equal(t, Ascending, cfg.Direction)

	cfg = cfg.Toggle(GuestSide)
	assert.Equal(t, SortConfig{Column: GuestSide, Direction: Ascending}, cfg)
	assert.True(t, cfg.IsSorted())
	assert.Equal(t, "asc", cfg.Direction.String())
}
