package cli

import (
	"github.com/Veraticus/vowsync/internal/status"
	"github.com/charmbracelet/lipgloss"
)

// TierColor maps a severity tier to the palette.
func TierColor(tier status.Tier) lipgloss.Color {
	switch tier {
	case status.TierSuccess:
		return SuccessColor
	case status.TierInfo:
		return InfoColor
	case status.TierWarning:
		return WarningColor
	case status.TierDanger:
		return DangerColor
	case status.TierMuted:
		return SubtleColor
	default:
		return lipgloss.Color("")
	}
}

// TierStyle returns the text style for a severity tier.
func TierStyle(tier status.Tier) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c := TierColor(tier); c != "" {
		style = style.Foreground(c)
	}
	switch tier {
	case status.TierDanger:
		style = style.Bold(true)
	case status.TierMuted:
		style = style.Strikethrough(true)
	}
	return style
}

// Badge renders a display status label in its tier's style.
func Badge(ds status.DisplayStatus) string {
	return TierStyle(ds.Tier).Render(ds.Label)
}

// BudgetBadge renders a budget band as "45.0%" in its tier's style.
func BudgetBadge(bs status.BudgetStatus) string {
	return TierStyle(bs.Tier).Render(status.FormatPercent(bs.Percent))
}
