package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "date only", input: "2026-06-15", want: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)},
		{name: "padded date", input: "  2026-06-15 ", want: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339", input: "2026-06-15T18:00:00Z", want: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339 with offset crossing midnight", input: "2026-06-15T23:00:00-05:00", want: time.Date(2026, 6, 16, 0, 0, 0, 0, time.UTC)},
		{name: "sql timestamp", input: "2026-06-15 08:00:00", want: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)},
		{name: "empty", input: "", wantErr: true},
		{name: "wrong order", input: "15-06-2026", wantErr: true},
		{name: "impossible day", input: "2026-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input, time.UTC)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDateFormat)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v want %v", got, tt.want)
		})
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, daysBetween(a, b))
	assert.Equal(t, -3, daysBetween(b, a))
	assert.Equal(t, 0, daysBetween(a, a))

	// Gaps beyond the range of time.Duration still count whole days.
	past := time.Date(1700, 1, 1, 0, 0, 0, 0, time.UTC)
	future := time.Date(2600, 1, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, -119234, daysBetween(today, past))
	assert.Equal(t, 209484, daysBetween(today, future))
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	bad := DefaultConfig()
	bad.Currency = "XYZW"
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.WarningPercent = 120
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.DueSoonDays = -2
	assert.Error(t, bad.Validate())

	disabled := DefaultConfig()
	disabled.DueSoonDays = DueSoonDisabled
	assert.NoError(t, disabled.Validate())
}

func TestFormatCurrency(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "$12.50", FormatCurrency(cfg, 12.5))
	assert.Equal(t, "-$3.00", FormatCurrency(cfg, -3))

	cfg.Currency = "EUR"
	assert.Equal(t, "€0.99", FormatCurrency(cfg, 0.99))

	cfg.Currency = "not-a-code"
	assert.Equal(t, "$1.00", FormatCurrency(cfg, 1))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "95.0%", FormatPercent(95))
	assert.Equal(t, "33.3%", FormatPercent(33.333))
}
