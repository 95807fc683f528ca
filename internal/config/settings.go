package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/vowsync/internal/common"
	"github.com/Veraticus/vowsync/internal/status"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Configuration keys.
const (
	KeyDatabasePath   = "database.path"
	KeyWeddingID      = "wedding.id"
	KeyCurrency       = "display.currency"
	KeyLanguage       = "display.language"
	KeyTimezone       = "display.timezone"
	KeyDueSoonDays    = "status.due_soon_days"
	KeyWarningPercent = "budget.warning_percent"
	KeyLogLevel       = "logging.level"
	KeyLogFormat      = "logging.format"
)

// DefaultDatabasePath is where the database lives unless configured.
const DefaultDatabasePath = "~/.local/share/vowsync/vowsync.db"

// SetDefaults registers the default value of every key. The currency has no
// default so the wedding's own currency applies unless one is configured.
func SetDefaults(v *viper.Viper) {
	defaults := status.DefaultConfig()

	v.SetDefault(KeyDatabasePath, DefaultDatabasePath)
	v.SetDefault(KeyLanguage, defaults.Language.String())
	v.SetDefault(KeyTimezone, "Local")
	v.SetDefault(KeyDueSoonDays, defaults.DueSoonDays)
	v.SetDefault(KeyWarningPercent, defaults.WarningPercent)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
}

// DatabasePath returns the configured database path with ~ and $VARS expanded.
func DatabasePath(v *viper.Viper) string {
	path := v.GetString(KeyDatabasePath)
	if path == "" {
		path = DefaultDatabasePath
	}
	return ExpandPath(path)
}

// LoadStatusConfig builds the classifier configuration from viper.
func LoadStatusConfig(v *viper.Viper) (status.Config, error) {
	cfg := status.DefaultConfig()

	if c := strings.TrimSpace(v.GetString(KeyCurrency)); c != "" {
		cfg.Currency = strings.ToUpper(c)
	}

	if l := strings.TrimSpace(v.GetString(KeyLanguage)); l != "" {
		tag, err := language.Parse(l)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s %q: %w", common.ErrInvalidConfig, KeyLanguage, l, err)
		}
		cfg.Language = tag
	}

	if tz := strings.TrimSpace(v.GetString(KeyTimezone)); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s %q: %w", common.ErrInvalidConfig, KeyTimezone, tz, err)
		}
		cfg.Location = loc
	}

	if v.IsSet(KeyDueSoonDays) {
		cfg.DueSoonDays = v.GetInt(KeyDueSoonDays)
	}
	if v.IsSet(KeyWarningPercent) {
		cfg.WarningPercent = v.GetFloat64(KeyWarningPercent)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	return cfg, nil
}
