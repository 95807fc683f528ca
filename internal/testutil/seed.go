package testutil

import (
	"context"
	"fmt"

	"github.com/Veraticus/vowsync/internal/model"
	"github.com/Veraticus/vowsync/internal/service"
)

// WeddingSeed describes a wedding to create in a test database.
type WeddingSeed struct {
	wedding  model.Wedding
	events   []string
	guests   []model.Guest
	vendors  []string
	payments []PaymentSeed
}

// PaymentSeed is a payment owed to a seeded vendor, referenced by name.
type PaymentSeed struct {
	Vendor      string
	Description string
	DueDate     string
	Amount      float64
}

// Fixture holds the records created by a WeddingSeed, with ids assigned.
type Fixture struct {
	Wedding  model.Wedding
	Events   []model.Event
	Guests   []model.Guest
	Vendors  map[string]model.Vendor
	Payments []model.Payment
}

// NewWeddingSeed starts a seed for a wedding with the given name.
func NewWeddingSeed(name string) *WeddingSeed {
	return &WeddingSeed{wedding: model.Wedding{Name: name, Currency: "USD"}}
}

// WithDate sets the wedding date (YYYY-MM-DD).
func (s *WeddingSeed) WithDate(date string) *WeddingSeed {
	s.wedding.Date = date
	return s
}

// WithBudget sets the overall budget.
func (s *WeddingSeed) WithBudget(budget float64) *WeddingSeed {
	s.wedding.Budget = budget
	return s
}

// WithEvents adds events in running order.
func (s *WeddingSeed) WithEvents(names ...string) *WeddingSeed {
	s.events = append(s.events, names...)
	return s
}

// WithGuest adds a guest. WeddingID is filled in by Build.
func (s *WeddingSeed) WithGuest(g model.Guest) *WeddingSeed {
	s.guests = append(s.guests, g)
	return s
}

// WithVendors adds vendors by name.
func (s *WeddingSeed) WithVendors(names ...string) *WeddingSeed {
	s.vendors = append(s.vendors, names...)
	return s
}

// WithPayment adds a pending payment to a vendor added with WithVendors.
func (s *WeddingSeed) WithPayment(p PaymentSeed) *WeddingSeed {
	s.payments = append(s.payments, p)
	return s
}

// Build creates the wedding and everything attached to it.
func (s *WeddingSeed) Build(ctx context.Context, store service.Storage) (*Fixture, error) {
	fx := &Fixture{Wedding: s.wedding, Vendors: make(map[string]model.Vendor)}

	if err := store.CreateWedding(ctx, &fx.Wedding); err != nil {
		return nil, err
	}

	for i, name := range s.events {
		e := model.Event{WeddingID: fx.Wedding.ID, Name: name, SortOrder: i + 1}
		if err := store.SaveEvent(ctx, &e); err != nil {
			return nil, fmt.Errorf("event %q: %w", name, err)
		}
		fx.Events = append(fx.Events, e)
	}

	for _, g := range s.guests {
		g.WeddingID = fx.Wedding.ID
		if err := store.SaveGuest(ctx, &g); err != nil {
			return nil, fmt.Errorf("guest %q: %w", g.FullName(), err)
		}
		fx.Guests = append(fx.Guests, g)
	}

	for _, name := range s.vendors {
		v := model.Vendor{WeddingID: fx.Wedding.ID, Name: name}
		if err := store.SaveVendor(ctx, &v); err != nil {
			return nil, fmt.Errorf("vendor %q: %w", name, err)
		}
		fx.Vendors[name] = v
	}

	for _, ps := range s.payments {
		v, ok := fx.Vendors[ps.Vendor]
		if !ok {
			return nil, fmt.Errorf("payment %q: unknown vendor %q", ps.Description, ps.Vendor)
		}
		p := model.Payment{
			WeddingID:   fx.Wedding.ID,
			VendorID:    v.ID,
			Description: ps.Description,
			DueDate:     ps.DueDate,
			Amount:      ps.Amount,
			Status:      model.PaymentPending,
		}
		if err := store.SavePayment(ctx, &p); err != nil {
			return nil, fmt.Errorf("payment %q: %w", ps.Description, err)
		}
		fx.Payments = append(fx.Payments, p)
	}

	return fx, nil
}
