package viewmodel

// Row is the flattened view of one entity and all of its event relations.
// Rows are produced by Pivot and must be treated as read-only.
type Row struct {
	Fields map[string]Value
	Events map[string]map[string]Value
	schema *Schema
	ID     string
	Name   string
}

// Schema returns the schema the row was pivoted with.
func (r Row) Schema() *Schema {
	return r.schema
}

// Value returns the cell for a base or event column. Columns that exist in
// the schema but have no data (for example an event the entity is not linked
// to) return a null cell. ok is false for columns unknown to the schema.
func (r Row) Value(key string) (Value, bool) {
	if r.schema == nil {
		return Value{}, false
	}
	if _, base := r.schema.byKey[key]; base {
		return r.Fields[key], true
	}
	eventID, field, isEvent := SplitEventColumn(key)
	if !isEvent {
		return Value{}, false
	}
	if _, known := r.schema.byEvent[field]; !known {
		return Value{}, false
	}
	return r.Events[eventID][field], true
}

// Event returns the relation fields recorded for an event.
func (r Row) Event(eventID string) (map[string]Value, bool) {
	fields, ok := r.Events[eventID]
	return fields, ok
}

// HasEvent returns true if the entity is linked to the event.
func (r Row) HasEvent(eventID string) bool {
	_, ok := r.Events[eventID]
	return ok
}
