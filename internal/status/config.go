// Package status derives display statuses (payment and invoice waterfalls,
// budget bands, bar-order percentage checks, budget-impact previews) from
// snapshots of wedding records. Every function is pure: the same snapshot,
// configuration and "today" always produce the same result.
package status

import (
	"fmt"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

const (
	// DefaultDueSoonDays is the window, in days, in which an unpaid item is "due soon".
	DefaultDueSoonDays = 7
	// DueSoonDisabled turns the due-soon rung off; zero means DefaultDueSoonDays.
	DueSoonDisabled = -1
	// DefaultWarningPercent is where budget usage turns from normal to warning.
	DefaultWarningPercent = 90.0
	// DangerPercent is where budget usage turns to danger. It is not configurable.
	DangerPercent = 100.0
)

// Config carries the locale and threshold settings used by the classifiers
// and formatters.
type Config struct {
	Location       *time.Location
	Currency       string
	Language       language.Tag
	DueSoonDays    int
	WarningPercent float64
}

// DefaultConfig returns US-dollar, UTC, seven-day due-soon settings.
func DefaultConfig() Config {
	return Config{
		Location:       time.UTC,
		Currency:       "USD",
		Language:       language.AmericanEnglish,
		DueSoonDays:    DefaultDueSoonDays,
		WarningPercent: DefaultWarningPercent,
	}
}

// Validate checks that the configuration can be used for classification.
func (c Config) Validate() error {
	if _, err := currency.ParseISO(c.Currency); err != nil {
		return fmt.Errorf("invalid currency %q: %w", c.Currency, err)
	}
	if c.DueSoonDays < DueSoonDisabled {
		return fmt.Errorf("due soon window must be %d (disabled) or more, got %d", DueSoonDisabled, c.DueSoonDays)
	}
	if c.WarningPercent <= 0 || c.WarningPercent >= DangerPercent {
		return fmt.Errorf("warning percent must be between 0 and %.0f, got %.2f", DangerPercent, c.WarningPercent)
	}
	return nil
}

func (c Config) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// dueSoonDays returns the due-soon window, or a negative value when the
// rung is disabled.
func (c Config) dueSoonDays() int {
	if c.DueSoonDays == 0 {
		return DefaultDueSoonDays
	}
	return c.DueSoonDays
}

func (c Config) warningPercent() float64 {
	if c.WarningPercent <= 0 {
		return DefaultWarningPercent
	}
	return c.WarningPercent
}
