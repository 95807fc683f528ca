package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/vowsync/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

const loadTimeout = 30 * time.Second

// loadData reads the wedding's events, guests and items with their event
// relations.
func loadData(store service.Storage, weddingID string) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return dataLoadedMsg{err: fmt.Errorf("storage not configured")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		var msg dataLoadedMsg
		var err error

		if msg.events, err = store.ListEvents(ctx, weddingID); err != nil {
			return dataLoadedMsg{err: fmt.Errorf("failed to load events: %w", err)}
		}
		if msg.guests, err = store.ListGuests(ctx, weddingID); err != nil {
			return dataLoadedMsg{err: fmt.Errorf("failed to load guests: %w", err)}
		}
		if msg.guestEvents, err = store.ListGuestEvents(ctx, weddingID); err != nil {
			return dataLoadedMsg{err: fmt.Errorf("failed to load guest attendance: %w", err)}
		}
		if msg.items, err = store.ListItems(ctx, weddingID); err != nil {
			return dataLoadedMsg{err: fmt.Errorf("failed to load items: %w", err)}
		}
		if msg.itemEvents, err = store.ListItemEvents(ctx, weddingID); err != nil {
			return dataLoadedMsg{err: fmt.Errorf("failed to load item quantities: %w", err)}
		}

		slog.Debug("Loaded browser data",
			"wedding_id", weddingID,
			"events", len(msg.events),
			"guests", len(msg.guests),
			"items", len(msg.items))

		return msg
	}
}
