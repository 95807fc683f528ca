// Package model defines the wedding-planning records shared by storage, the
// status classifiers and the table view-models.
package model

import "time"

// Wedding is the aggregate that owns every guest, item, vendor and budget row.
type Wedding struct {
	CreatedAt time.Time
	ID        string
	Name      string
	Date      string // YYYY-MM-DD
	Currency  string
	Budget    float64
}

// Event is one part of the celebration (ceremony, reception, brunch...).
type Event struct {
	ID        string
	WeddingID string
	Name      string
	Date      string
	Venue     string
	SortOrder int
}
