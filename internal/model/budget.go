package model

// BudgetCategory is a line of the wedding budget. Actual is derived from the
// paid payments assigned to the category.
type BudgetCategory struct {
	ID        string
	WeddingID string
	Name      string
	Projected float64
	Actual    float64
}
