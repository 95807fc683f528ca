package viewmodel

// Source tells Pivot how to read one kind of entity and its event relations.
type Source[E, R any] struct {
	Schema *Schema

	EntityID func(E) string
	Name     func(E) string
	Fields   func(E) map[string]Value

	RelationEntityID func(R) string
	RelationEventID  func(R) string
	RelationFields   func(R) map[string]Value

	// Derive, when set, fills computed base columns once all relations of
	// the row are known.
	Derive func(*Row)

	// FacetColumns lists the base columns whose distinct values populate
	// filter dropdowns.
	FacetColumns []string
}

// Pivot builds one row per entity, in entity order, and attaches each
// relation's fields under its event id.
//
// Relations pointing at an unknown entity are dropped. When the same
// (entity, event) pair appears more than once the later relation wins.
func Pivot[E, R any](src Source[E, R], entities []E, relations []R) []Row {
	rows := make([]Row, len(entities))
	index := make(map[string]int, len(entities))

	for i, e := range entities {
		id := src.EntityID(e)
		rows[i] = Row{
			ID:     id,
			Name:   src.Name(e),
			Fields: src.Fields(e),
			Events: make(map[string]map[string]Value),
			schema: src.Schema,
		}
		if rows[i].Fields == nil {
			rows[i].Fields = make(map[string]Value)
		}
		index[id] = i
	}

	for _, rel := range relations {
		i, ok := index[src.RelationEntityID(rel)]
		if !ok {
			continue
		}
		rows[i].Events[src.RelationEventID(rel)] = src.RelationFields(rel)
	}

	if src.Derive != nil {
		for i := range rows {
			src.Derive(&rows[i])
		}
	}

	return rows
}
