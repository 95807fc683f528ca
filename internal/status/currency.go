package status

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "CA$",
	"AUD": "A$",
	"CHF": "CHF ",
}

// FormatCurrency renders an amount in the configured currency, using the
// configured language for digit grouping. Unknown currency codes fall back
// to US dollars.
func FormatCurrency(cfg Config, amount float64) string {
	unit, err := currency.ParseISO(cfg.Currency)
	if err != nil {
		unit = currency.USD
	}

	scale, _ := currency.Standard.Rounding(unit)

	tag := cfg.Language
	if tag == language.Und {
		tag = language.AmericanEnglish
	}
	p := message.NewPrinter(tag)

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	symbol, ok := currencySymbols[unit.String()]
	if !ok {
		symbol = unit.String() + " "
	}

	return sign + symbol + p.Sprintf(fmt.Sprintf("%%.%df", scale), amount)
}

// FormatPercent renders a percentage with one decimal place.
func FormatPercent(percent float64) string {
	return fmt.Sprintf("%.1f%%", percent)
}
