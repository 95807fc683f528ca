package model

// WeddingItem is something that has to be sourced for one or more events
// (chairs, centrepieces, linens).
type WeddingItem struct {
	ID        string
	WeddingID string
	Name      string
	Category  string
	Supplier  string
	Notes     string
	UnitCost  float64
}

// ItemEvent is the quantity of an item needed at a single event.
type ItemEvent struct {
	ItemID         string
	EventID        string
	QuantityNeeded int
}
