package status

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Veraticus/vowsync/internal/model"
)

const (
	barTargetPercent  = 100.0
	barWarningLowest  = 90.0
	barWarningHighest = 110.0
)

// PercentageCheck is the validation result of a bar order's drink split.
type PercentageCheck struct {
	Message   string
	Total     float64
	IsValid   bool
	IsWarning bool
	IsError   bool
}

// ValidatePercentages sums the item percentages of a bar order. Exactly 100
// is valid, 90 to 110 inclusive is a warning and anything else is an error.
func ValidatePercentages(items []model.BarOrderItem) PercentageCheck {
	var total float64
	for _, item := range items {
		total += item.Percentage
	}
	total = round2(total)

	check := PercentageCheck{Total: total}

	switch {
	case total == barTargetPercent:
		check.IsValid = true
		check.Message = fmt.Sprintf("Percentages total %s%%", formatPercent(total))
		return check
	case total >= barWarningLowest && total <= barWarningHighest:
		check.IsWarning = true
	default:
		check.IsError = true
	}

	direction := "below"
	if total > barTargetPercent {
		direction = "above"
	}
	check.Message = fmt.Sprintf("Percentages total %s%% (%s%% %s %s%%)",
		formatPercent(total),
		formatPercent(round2(math.Abs(total-barTargetPercent))),
		direction,
		formatPercent(barTargetPercent))

	return check
}

// BarOrderLine is the computed purchase for one drink.
type BarOrderLine struct {
	Item     model.BarOrderItem
	Servings float64
	Units    int
	Cost     float64
}

// BarOrderPlan is the computed purchase list for a bar order.
type BarOrderPlan struct {
	Lines       []BarOrderLine
	Check       PercentageCheck
	TotalDrinks float64
	TotalCost   float64
	TotalUnits  int
}

// CalculateBarOrder works out how many units of each drink to buy.
// Items whose servings per unit is not positive get zero units.
func CalculateBarOrder(order model.BarOrder, items []model.BarOrderItem) BarOrderPlan {
	plan := BarOrderPlan{
		TotalDrinks: float64(order.GuestCount) * order.EventHours * order.DrinksPerGuestPerHour,
		Check:       ValidatePercentages(items),
		Lines:       make([]BarOrderLine, 0, len(items)),
	}

	for _, item := range items {
		line := BarOrderLine{
			Item:     item,
			Servings: plan.TotalDrinks * item.Percentage / 100,
		}
		if item.ServingsPerUnit > 0 && line.Servings > 0 {
			// Tolerate float noise such as 12.000000001 bottles.
			line.Units = int(math.Ceil(line.Servings/item.ServingsPerUnit - 1e-9))
		}
		line.Cost = float64(line.Units) * item.UnitCost

		plan.TotalUnits += line.Units
		plan.TotalCost += line.Cost
		plan.Lines = append(plan.Lines, line)
	}

	return plan
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
