package storage

import (
	"context"
	"math"
	"testing"

	"github.com/Veraticus/vowsync/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestValidateContext(t *testing.T) {
	tests := []struct {
		ctx     context.Context
		name    string
		wantErr bool
	}{
		{
			name:    "valid context",
			ctx:     context.Background(),
			wantErr: false,
		},
		{
			name:    "nil context",
			ctx:     nil,
			wantErr: true,
		},
		{
			name: "canceled context still valid",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			}(),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateContext(tt.ctx)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateContext() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, validateDate("2026-06-15", "date"))
	assert.ErrorIs(t, validateDate("06/15/2026", "date"), ErrInvalidDate)
	assert.ErrorIs(t, validateDate("", "date"), ErrInvalidDate)
	assert.NoError(t, validateOptionalDate("", "date"))
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, validateAmount(0, "amount"))
	assert.NoError(t, validateAmount(12.5, "amount"))
	assert.ErrorIs(t, validateAmount(-0.01, "amount"), ErrInvalidAmount)
	assert.ErrorIs(t, validateAmount(math.NaN(), "amount"), ErrInvalidAmount)
	assert.ErrorIs(t, validateAmount(math.Inf(1), "amount"), ErrInvalidAmount)
}

func TestValidateGuest(t *testing.T) {
	valid := model.Guest{WeddingID: "w", FirstName: "Ann", RSVPStatus: model.RSVPPending, Type: model.GuestTypeAdult}
	negative := -1

	tests := []struct {
		name    string
		mutate  func(*model.Guest)
		wantErr error
	}{
		{"valid", func(*model.Guest) {}, nil},
		{"missing wedding", func(g *model.Guest) { g.WeddingID = "" }, ErrEmptyString},
		{"missing name", func(g *model.Guest) { g.FirstName = " " }, ErrInvalidGuest},
		{"unknown rsvp", func(g *model.Guest) { g.RSVPStatus = "maybe" }, ErrInvalidStatus},
		{"unknown type", func(g *model.Guest) { g.Type = "robot" }, ErrInvalidGuest},
		{"negative table", func(g *model.Guest) { g.TableNumber = &negative }, ErrInvalidGuest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := valid
			tt.mutate(&g)
			err := validateGuest(&g)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	assert.ErrorIs(t, validateGuest(nil), ErrNilParameter)
}

func TestValidateBarOrder(t *testing.T) {
	assert.NoError(t, validateBarOrder(&model.BarOrder{WeddingID: "w", Name: "Bar"}))
	assert.ErrorIs(t, validateBarOrder(&model.BarOrder{WeddingID: "w", Name: "Bar", GuestCount: -1}), ErrInvalidBarOrder)
	assert.ErrorIs(t, validateBarOrder(nil), ErrNilParameter)
}
