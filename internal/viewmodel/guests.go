package viewmodel

import "github.com/Veraticus/vowsync/internal/model"

// Guest table columns.
const (
	GuestName             = "name"
	GuestEmail            = "email"
	GuestPhone            = "phone"
	GuestType             = "guest_type"
	GuestSide             = "side"
	GuestRSVP             = "rsvp_status"
	GuestDietary          = "dietary"
	GuestPlusOne          = "plus_one"
	GuestTable            = "table_number"
	GuestEventsAttending  = "events_attending"
	GuestEventAttending   = "attending"
	GuestEventShuttleTo   = "shuttle_to"
	GuestEventShuttleFrom = "shuttle_from"
)

// GuestSchema is the schema of the guest table.
var GuestSchema = NewSchema(
	[]Column{
		{Key: GuestName, Label: "Name", Type: CellString},
		{Key: GuestEmail, Label: "Email", Type: CellString},
		{Key: GuestPhone, Label: "Phone", Type: CellString},
		{Key: GuestType, Label: "Type", Type: CellString},
		{Key: GuestSide, Label: "Side", Type: CellString},
		{Key: GuestRSVP, Label: "RSVP", Type: CellString},
		{Key: GuestDietary, Label: "Dietary", Type: CellString},
		{Key: GuestPlusOne, Label: "+1", Type: CellBool},
		{Key: GuestTable, Label: "Table", Type: CellNumber},
		{Key: GuestEventsAttending, Label: "Events", Type: CellNumber},
	},
	[]Column{
		{Key: GuestEventAttending, Label: "Attending", Type: CellBool},
		{Key: GuestEventShuttleTo, Label: "Shuttle to", Type: CellBool},
		{Key: GuestEventShuttleFrom, Label: "Shuttle from", Type: CellBool},
	},
)

// GuestSource pivots guests with their per-event attendance.
var GuestSource = Source[model.Guest, model.GuestEvent]{
	Schema:   GuestSchema,
	EntityID: func(g model.Guest) string { return g.ID },
	Name:     func(g model.Guest) string { return g.FullName() },
	Fields: func(g model.Guest) map[string]Value {
		return map[string]Value{
			GuestName:    StringValue(g.FullName()),
			GuestEmail:   StringValue(g.Email),
			GuestPhone:   StringValue(g.Phone),
			GuestType:    StringValue(string(g.Type)),
			GuestSide:    StringValue(g.Side),
			GuestRSVP:    StringValue(string(g.RSVPStatus)),
			GuestDietary: StringValue(g.Dietary),
			GuestPlusOne: BoolValue(g.PlusOne),
			GuestTable:   OptionalInt(g.TableNumber),
		}
	},
	RelationEntityID: func(ge model.GuestEvent) string { return ge.GuestID },
	RelationEventID:  func(ge model.GuestEvent) string { return ge.EventID },
	RelationFields: func(ge model.GuestEvent) map[string]Value {
		return map[string]Value{
			GuestEventAttending:   BoolValue(ge.Attending),
			GuestEventShuttleTo:   BoolValue(ge.ShuttleTo),
			GuestEventShuttleFrom: BoolValue(ge.ShuttleFrom),
		}
	},
	Derive: func(r *Row) {
		attending := 0
		for _, fields := range r.Events {
			if v := fields[GuestEventAttending]; v.Type() == CellBool && v.Bool() {
				attending++
			}
		}
		r.Fields[GuestEventsAttending] = IntValue(attending)
	},
	FacetColumns: []string{GuestType, GuestSide, GuestRSVP},
}
