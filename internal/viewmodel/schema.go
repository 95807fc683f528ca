package viewmodel

import "strings"

// Column describes one typed column of a table.
type Column struct {
	Key   string
	Label string
	Type  CellType
}

// Schema lists the base columns of a table and the per-event relation fields.
// Event columns are addressed with EventColumn(eventID, field).
type Schema struct {
	byKey       map[string]Column
	byEvent     map[string]Column
	Columns     []Column
	EventFields []Column
}

// NewSchema builds a schema from base columns and per-event fields.
func NewSchema(columns []Column, eventFields []Column) *Schema {
	s := &Schema{
		Columns:     columns,
		EventFields: eventFields,
		byKey:       make(map[string]Column, len(columns)),
		byEvent:     make(map[string]Column, len(eventFields)),
	}
	for _, c := range columns {
		s.byKey[c.Key] = c
	}
	for _, c := range eventFields {
		s.byEvent[c.Key] = c
	}
	return s
}

const eventColumnPrefix = "event:"

// EventColumn returns the column key addressing field of the given event.
func EventColumn(eventID, field string) string {
	return eventColumnPrefix + eventID + ":" + field
}

// SplitEventColumn splits an event column key into event id and field.
// ok is false for base column keys.
func SplitEventColumn(key string) (eventID, field string, ok bool) {
	rest, found := strings.CutPrefix(key, eventColumnPrefix)
	if !found {
		return "", "", false
	}
	i := strings.LastIndex(rest, ":")
	if i <= 0 || i == len(rest)-1 {
		return "", "", false
	}
	return rest[:i], rest[i+1:], true
}

// Lookup returns the column definition for a base or event column key.
func (s *Schema) Lookup(key string) (Column, bool) {
	if s == nil {
		return Column{}, false
	}
	if c, ok := s.byKey[key]; ok {
		return c, true
	}
	if eventID, field, ok := SplitEventColumn(key); ok {
		c, found := s.byEvent[field]
		if !found {
			return Column{}, false
		}
		c.Key = EventColumn(eventID, field)
		return c, true
	}
	return Column{}, false
}
