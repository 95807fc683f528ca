package tui

import "github.com/Veraticus/vowsync/internal/model"

// dataLoadedMsg carries everything the browser shows for one wedding.
type dataLoadedMsg struct {
	err         error
	events      []model.Event
	guests      []model.Guest
	guestEvents []model.GuestEvent
	items       []model.WeddingItem
	itemEvents  []model.ItemEvent
}

type errorMsg struct {
	err error
}

func (e errorMsg) Error() string {
	return e.err.Error()
}
