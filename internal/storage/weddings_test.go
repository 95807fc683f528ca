package storage

import (
	"context"
	"testing"

	"github.com/Veraticus/vowsync/internal/common"
	"github.com/Veraticus/vowsync/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStorage_Weddings(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	later := &model.Wedding{Name: "Later", Date: "2027-05-01", Currency: "eur"}
	sooner := &model.Wedding{Name: "Sooner", Date: "2026-09-12"}
	undated := &model.Wedding{Name: "Someday"}
	for _, w := range []*model.Wedding{later, sooner, undated} {
		require.NoError(t, store.CreateWedding(ctx, w))
		assert.NotEmpty(t, w.ID)
		assert.False(t, w.CreatedAt.IsZero())
	}

	got, err := store.GetWedding(ctx, later.ID)
	require.NoError(t, err)
	assert.Equal(t, "Later", got.Name)
	assert.Equal(t, "EUR", got.Currency)
	assert.Equal(t, "2027-05-01", got.Date)

	weddings, err := store.ListWeddings(ctx)
	require.NoError(t, err)
	require.Len(t, weddings, 3)
	assert.Equal(t, []string{"Sooner", "Later", "Someday"}, []string{weddings[0].Name, weddings[1].Name, weddings[2].Name})
	assert.Equal(t, "USD", weddings[0].Currency)

	_, err = store.GetWedding(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSQLiteStorage_Events(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	wedding, events, _ := createTestWedding(t, store)

	got, err := store.ListEvents(ctx, wedding.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Ceremony", got[0].Name)

	// Reorder by updating the existing event
	events[0].SortOrder = 3
	events[0].Venue = "Old Mill"
	require.NoError(t, store.SaveEvent(ctx, &events[0]))

	got, err = store.ListEvents(ctx, wedding.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Brunch", got[0].Name)
	assert.Equal(t, "Old Mill", got[1].Venue)

	err = store.SaveEvent(ctx, &model.Event{WeddingID: wedding.ID, Name: "Party", Date: "next week"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
