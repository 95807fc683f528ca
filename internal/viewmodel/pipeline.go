package viewmodel

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Query is what the user has selected on top of the raw data.
type Query struct {
	Search  string
	Filters []ColumnFilter
	Sort    SortConfig
}

// HasActiveFilters returns true if search text is set or any column filter
// is usable against schema. Filters that ApplyFilters would skip do not count.
func (q Query) HasActiveFilters(schema *Schema) bool {
	if strings.TrimSpace(q.Search) != "" {
		return true
	}
	for _, f := range q.Filters {
		if f.Validate(schema) == nil {
			return true
		}
	}
	return false
}

// Result is the rendered table and its aggregates.
type Result struct {
	Facets           map[string][]string
	Rows             []Row
	TotalCount       int
	FilteredCount    int
	HasActiveFilters bool
}

// sliceKey identifies a slice snapshot by its backing array and length.
// Inputs are treated as immutable, so an unchanged key means unchanged data.
type sliceKey struct {
	first any
	n     int
}

func keyOf[T any](s []T) sliceKey {
	if len(s) == 0 {
		return sliceKey{}
	}
	return sliceKey{first: &s[0], n: len(s)}
}

type pivotKey struct {
	entities  sliceKey
	relations sliceKey
}

type filterKey struct {
	rows    sliceKey
	filters sliceKey
	search  string
}

type sortKey struct {
	rows sliceKey
	sort SortConfig
}

// Pipeline composes Pivot, ApplyFilters/Search and Sort, and recomputes a
// stage only when the identity of its inputs changes. A Pipeline is meant to
// back a single view and is not safe for concurrent use.
type Pipeline[E, R any] struct {
	src  Source[E, R]
	lang language.Tag

	pivotKey pivotKey
	pivoted  []Row
	facets   map[string][]string

	filterKey filterKey
	filtered  []Row

	sortKey sortKey
	sorted  []Row

	pivotRuns  int
	filterRuns int
	sortRuns   int
	primed     bool
}

// NewPipeline creates a pipeline for one source. lang drives string
// collation for sorting and facets.
func NewPipeline[E, R any](src Source[E, R], lang language.Tag) *Pipeline[E, R] {
	return &Pipeline[E, R]{src: src, lang: lang}
}

// Run produces the table for the given snapshot and query.
func (p *Pipeline[E, R]) Run(entities []E, relations []R, q Query) Result {
	pk := pivotKey{entities: keyOf(entities), relations: keyOf(relations)}
	if !p.primed || pk != p.pivotKey {
		p.pivoted = Pivot(p.src, entities, relations)
		p.facets = Facets(p.pivoted, p.src.FacetColumns, p.lang)
		p.pivotKey = pk
		p.pivotRuns++
	}

	fk := filterKey{rows: keyOf(p.pivoted), filters: keyOf(q.Filters), search: q.Search}
	if !p.primed || fk != p.filterKey {
		p.filtered = Search(ApplyFilters(p.pivoted, q.Filters), q.Search)
		p.filterKey = fk
		p.filterRuns++
	}

	sk := sortKey{rows: keyOf(p.filtered), sort: q.Sort}
	if !p.primed || sk != p.sortKey {
		p.sorted = Sort(p.filtered, q.Sort, p.lang)
		p.sortKey = sk
		p.sortRuns++
	}

	p.primed = true

	return Result{
		Rows:             p.sorted,
		TotalCount:       len(p.pivoted),
		FilteredCount:    len(p.filtered),
		HasActiveFilters: q.HasActiveFilters(p.src.Schema),
		Facets:           p.facets,
	}
}

// Facets collects the distinct non-empty values of each column, collated
// for lang.
func Facets(rows []Row, columns []string, lang language.Tag) map[string][]string {
	facets := make(map[string][]string, len(columns))
	if len(columns) == 0 {
		return facets
	}

	collator := collate.New(lang)
	for _, column := range columns {
		seen := make(map[string]bool)
		values := []string{}
		for _, row := range rows {
			v, ok := row.Value(column)
			if !ok || v.IsEmpty() {
				continue
			}
			text := v.Text()
			if seen[text] {
				continue
			}
			seen[text] = true
			values = append(values, text)
		}
		slices.SortFunc(values, collator.CompareString)
		facets[column] = values
	}
	return facets
}
