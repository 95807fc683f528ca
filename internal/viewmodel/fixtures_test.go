package viewmodel

import "github.com/Veraticus/vowsync/internal/model"

func intPtr(n int) *int {
	return &n
}

func testGuests() []model.Guest {
	return []model.Guest{
		{
			ID: "g1", FirstName: "Alice", LastName: "Smith", Email: "alice@example.com",
			Type: model.GuestTypeAdult, Side: "bride", RSVPStatus: model.RSVPAccepted,
			TableNumber: intPtr(1), PlusOne: true,
		},
		{
			ID: "g2", FirstName: "bob", LastName: "jones",
			Type: model.GuestTypeAdult, Side: "groom", RSVPStatus: model.RSVPPending,
		},
		{
			ID: "g3", FirstName: "Carol", LastName: "Adams", Dietary: "vegan",
			Type: model.GuestTypeChild, Side: "bride", RSVPStatus: model.RSVPDeclined,
			TableNumber: intPtr(3),
		},
	}
}

func testGuestEvents() []model.GuestEvent {
	return []model.GuestEvent{
		{GuestID: "g1", EventID: "ceremony", Attending: true, ShuttleTo: true},
		{GuestID: "g1", EventID: "brunch", Attending: true},
		{GuestID: "g2", EventID: "ceremony", Attending: false},
		{GuestID: "ghost", EventID: "ceremony", Attending: true},
		{GuestID: "g1", EventID: "brunch", Attending: false},
	}
}

func guestRows() []Row {
	return Pivot(GuestSource, testGuests(), testGuestEvents())
}

func rowIDs(rows []Row) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}
