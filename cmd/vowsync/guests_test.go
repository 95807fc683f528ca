package main

import (
	"context"
	"strings"
	"testing"

	"github.com/Veraticus/vowsync/internal/common"
	"github.com/Veraticus/vowsync/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedGuests(t *testing.T) *testCLI {
	t.Helper()

	c := newTestCLI(t)
	c.mustRun("wedding", "create", "Sam & Alex")
	c.mustRun("events", "add", "Ceremony")
	c.mustRun("events", "add", "Reception")

	c.mustRun("guests", "add", "Alice", "Smith", "--side", "bride", "--rsvp", "accepted", "--table", "3")
	c.mustRun("guests", "add", "Bob", "Jones", "--side", "groom", "--plus-one")
	c.mustRun("guests", "add", "Carol", "Brown", "--side", "bride", "--type", "child", "--dietary", "vegetarian")

	c.mustRun("guests", "attend", "Alice Smith", "Ceremony", "--shuttle-to")
	c.mustRun("guests", "attend", "alice smith", "Reception")
	c.mustRun("guests", "attend", "Carol Brown", "Reception")
	c.mustRun("guests", "attend", "Bob Jones", "Reception", "--no")

	return c
}

func TestGuestsAdd(t *testing.T) {
	c := seedGuests(t)
	ctx := context.Background()

	guests, err := c.store().ListGuests(ctx, c.wedding().ID)
	require.NoError(t, err)
	require.Len(t, guests, 3)

	byName := make(map[string]model.Guest)
	for _, g := range guests {
		byName[g.FullName()] = g
	}

	alice := byName["Alice Smith"]
	assert.Equal(t, model.RSVPAccepted, alice.RSVPStatus)
	require.NotNil(t, alice.TableNumber)
	assert.Equal(t, 3, *alice.TableNumber)

	bob := byName["Bob Jones"]
	assert.Equal(t, model.RSVPPending, bob.RSVPStatus)
	assert.True(t, bob.PlusOne)
	assert.Nil(t, bob.TableNumber)

	carol := byName["Carol Brown"]
	assert.Equal(t, model.GuestTypeChild, carol.Type)
	assert.Equal(t, "vegetarian", carol.Dietary)

	_, err = c.run("guests", "add", "Dan", "--rsvp", "maybe")
	assert.Error(t, err)
}

func TestGuestsAttend(t *testing.T) {
	c := seedGuests(t)

	relations, err := c.store().ListGuestEvents(context.Background(), c.wedding().ID)
	require.NoError(t, err)
	assert.Len(t, relations, 4)

	attending := 0
	for _, r := range relations {
		if r.Attending {
			attending++
		}
	}
	assert.Equal(t, 3, attending)

	_, err = c.run("guests", "attend", "Nobody", "Ceremony")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = c.run("guests", "attend", "Alice Smith", "Afterparty")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGuestsList(t *testing.T) {
	c := seedGuests(t)

	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
		inOrder  []string
	}{
		{
			name:     "everyone",
			args:     nil,
			contains: []string{"Alice Smith", "Bob Jones", "Carol Brown", "Ceremony", "Reception", "3 rows"},
		},
		{
			name:     "filter by side",
			args:     []string{"--filter", "side:equals:bride"},
			contains: []string{"Alice Smith", "Carol Brown", "Showing 2 of 3 rows"},
			excludes: []string{"Bob Jones"},
		},
		{
			name:     "filter by rsvp list",
			args:     []string{"--filter", "rsvp_status:in:accepted,declined"},
			contains: []string{"Alice Smith", "Showing 1 of 3 rows"},
			excludes: []string{"Bob Jones", "Carol Brown"},
		},
		{
			name:     "filter by event attendance",
			args:     []string{"--filter", "event:Reception:attending:equals:true"},
			contains: []string{"Alice Smith", "Carol Brown"},
			excludes: []string{"Bob Jones"},
		},
		{
			name:     "combined filters",
			args:     []string{"--filter", "side:equals:bride", "--filter", "event:Ceremony:attending:equals:true"},
			contains: []string{"Alice Smith", "Showing 1 of 3 rows"},
			excludes: []string{"Carol Brown"},
		},
		{
			name:     "search",
			args:     []string{"--search", "  BRO "},
			contains: []string{"Carol Brown"},
			excludes: []string{"Alice Smith"},
		},
		{
			name:    "sort descending",
			args:    []string{"--sort", "name:desc"},
			inOrder: []string{"Carol Brown", "Bob Jones", "Alice Smith"},
		},
		{
			name:    "sort by table puts blanks last",
			args:    []string{"--sort", "table_number:desc"},
			inOrder: []string{"Alice Smith", "Bob Jones"},
		},
		{
			name:     "shuttle column",
			args:     []string{"--show", "shuttle_to", "--filter", "event:Ceremony:shuttle_to:equals:true"},
			contains: []string{"Alice Smith", "✓"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := c.mustRun(append([]string{"guests", "list"}, tt.args...)...)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
			if len(tt.inOrder) > 0 {
				assert.True(t, containsInOrder(out, tt.inOrder...), out)
			}
		})
	}
}

func TestGuestsListRejectsBadQueries(t *testing.T) {
	c := seedGuests(t)

	for _, args := range [][]string{
		{"--filter", "height:equals:2"},
		{"--filter", "table_number:gte:three"},
		{"--filter", "event:Afterparty:attending:equals:true"},
		{"--sort", "shoe_size"},
		{"--show", "dessert"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := c.run(append([]string{"guests", "list"}, args...)...)
			assert.Error(t, err)
		})
	}
}

func TestGuestsRemove(t *testing.T) {
	c := seedGuests(t)

	out := c.mustRun("guests", "remove", "Bob Jones")
	assert.Contains(t, out, "Removed Bob Jones")

	out = c.mustRun("guests", "list")
	assert.NotContains(t, out, "Bob Jones")
	assert.Contains(t, out, "2 rows")

	_, err := c.run("guests", "remove", "Bob Jones")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestResolveEventRef(t *testing.T) {
	events := []model.Event{
		{ID: "e1", Name: "Ceremony"},
		{ID: "e2", Name: "Reception"},
	}

	tests := []struct {
		expr    string
		want    string
		wantErr bool
	}{
		{expr: "side:equals:bride", want: "side:equals:bride"},
		{expr: "event:reception:attending:equals:true", want: "event:e2:attending:equals:true"},
		{expr: "event:e1:attending", want: "event:e1:attending"},
		{expr: "event:Brunch:attending", wantErr: true},
		{expr: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := resolveEventRef(tt.expr, events)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
