package tui

import (
	"github.com/Veraticus/vowsync/internal/service"
	"github.com/Veraticus/vowsync/internal/status"
	"github.com/Veraticus/vowsync/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Storage   service.Storage
	Theme     themes.Theme
	WeddingID string
	Status    status.Config
	Table     Table
	Width     int
	Height    int
	ShowHelp  bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Theme:  themes.Default,
		Status: status.DefaultConfig(),
		Table:  TableGuests,
		Width:  100,
		Height: 30,
	}
}

// WithStorage sets the storage service.
func WithStorage(storage service.Storage) Option {
	return func(c *Config) {
		c.Storage = storage
	}
}

// WithWedding selects the wedding to browse.
func WithWedding(id string) Option {
	return func(c *Config) {
		c.WeddingID = id
	}
}

// WithStatusConfig sets the locale used for sorting and money columns.
func WithStatusConfig(cfg status.Config) Option {
	return func(c *Config) {
		c.Status = cfg
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithTable selects the table shown first.
func WithTable(t Table) Option {
	return func(c *Config) {
		c.Table = t
	}
}
