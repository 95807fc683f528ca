package status

// Impact previews what recording a payment against a budget category would do.
type Impact struct {
	CurrentActual      float64
	Payment            float64
	Projected          float64
	NewActual          float64
	NewPercentage      float64
	WillExceedBudget   bool
	WillTriggerWarning bool
}

// PreviewImpact computes the category usage after adding payment to
// currentActual. The warning flag is independent of the exceed flag: it is
// set only while the new percentage sits in the warning band.
func PreviewImpact(cfg Config, currentActual, payment, projected float64) Impact {
	newActual := currentActual + payment
	newPercentage := percentOf(newActual, projected)

	return Impact{
		CurrentActual:      currentActual,
		Payment:            payment,
		Projected:          projected,
		NewActual:          newActual,
		NewPercentage:      newPercentage,
		WillExceedBudget:   newActual > projected,
		WillTriggerWarning: newPercentage >= cfg.warningPercent() && newPercentage < DangerPercent,
	}
}
