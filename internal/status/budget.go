package status

import "math"

// BudgetLevel is the usage band of a budget.
type BudgetLevel string

// Budget levels.
const (
	BudgetNormal  BudgetLevel = "normal"
	BudgetWarning BudgetLevel = "warning"
	BudgetDanger  BudgetLevel = "danger"
)

// BudgetStatus is the classified usage of a budget or budget category.
type BudgetStatus struct {
	Level     BudgetLevel
	Spent     float64
	Total     float64
	Remaining float64
	Percent   float64
	Tier      Tier
}

// IsOverBudget returns true if spending has reached the total.
func (b BudgetStatus) IsOverBudget() bool {
	return b.Level == BudgetDanger
}

// ClassifyBudget bands spent/total into normal, warning and danger.
// A zero total yields 0 percent.
func ClassifyBudget(cfg Config, spent, total float64) BudgetStatus {
	percent := percentOf(spent, total)

	st := BudgetStatus{
		Spent:     spent,
		Total:     total,
		Remaining: total - spent,
		Percent:   percent,
	}

	switch {
	case percent >= DangerPercent:
		st.Level, st.Tier = BudgetDanger, TierDanger
	case percent >= cfg.warningPercent():
		st.Level, st.Tier = BudgetWarning, TierWarning
	default:
		st.Level, st.Tier = BudgetNormal, TierSuccess
	}

	return st
}

// percentOf returns part/whole*100, or 0 when the result would not be a
// finite number.
func percentOf(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	p := part / whole * 100
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return p
}
