package model

// BarOrder describes the drinks plan for one event.
type BarOrder struct {
	ID                    string
	WeddingID             string
	EventID               string
	Name                  string
	GuestCount            int
	EventHours            float64
	DrinksPerGuestPerHour float64
}

// BarOrderItem is one drink line of a bar order. Percentage is the share of
// all servings expected to be this drink.
type BarOrderItem struct {
	ID              string
	BarOrderID      string
	Name            string
	Percentage      float64
	ServingsPerUnit float64
	UnitCost        float64
}
