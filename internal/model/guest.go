package model

import "strings"

// RSVPStatus represents the attendance confirmation status.
type RSVPStatus string

const (
	RSVPPending    RSVPStatus = "pending"
	RSVPAccepted   RSVPStatus = "accepted"
	RSVPDeclined   RSVPStatus = "declined"
	RSVPNotInvited RSVPStatus = "not_invited"
)

// GuestType distinguishes primary invitees from plus-ones and children.
type GuestType string

const (
	GuestTypeAdult   GuestType = "adult"
	GuestTypeChild   GuestType = "child"
	GuestTypePlusOne GuestType = "plus_one"
	GuestTypeVendor  GuestType = "vendor"
)

// Guest represents a wedding guest.
type Guest struct {
	TableNumber *int
	ID          string
	WeddingID   string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Type        GuestType
	Side        string
	RSVPStatus  RSVPStatus
	Dietary     string
	PlusOne     bool
}

// FullName joins first and last name, skipping empty parts.
func (g Guest) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(g.FirstName) + " " + strings.TrimSpace(g.LastName))
}

// GuestEvent records a guest's attendance at one event.
type GuestEvent struct {
	GuestID     string
	EventID     string
	Attending   bool
	ShuttleTo   bool
	ShuttleFrom bool
}
