package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/vowsync/internal/common"
	"github.com/Veraticus/vowsync/internal/config"
	"github.com/Veraticus/vowsync/internal/model"
	"github.com/Veraticus/vowsync/internal/status"
	"github.com/Veraticus/vowsync/internal/storage"
)

const dateLayout = "2006-01-02"

// openStore opens the configured database and brings its schema up to date.
func (a *app) openStore(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := config.DatabasePath(a.v)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError("could not open database "+dbPath, err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// currentWedding returns the wedding selected with --wedding, or the only
// wedding in the database.
func (a *app) currentWedding(ctx context.Context, store *storage.SQLiteStorage) (*model.Wedding, error) {
	if id := a.v.GetString(config.KeyWeddingID); id != "" {
		w, err := store.GetWedding(ctx, id)
		if err != nil {
			return nil, common.NewUserError("wedding "+id+" not found", err)
		}
		return w, nil
	}

	weddings, err := store.ListWeddings(ctx)
	if err != nil {
		return nil, err
	}
	switch len(weddings) {
	case 0:
		return nil, common.NewUserError("no wedding yet, create one with 'vowsync wedding create'", common.ErrNoWedding)
	case 1:
		return &weddings[0], nil
	default:
		return nil, common.NewUserError("several weddings found, pick one with --wedding", common.ErrAmbiguousWedding)
	}
}

// session is an open database with the selected wedding and its display
// settings.
type session struct {
	store   *storage.SQLiteStorage
	wedding *model.Wedding
	cfg     status.Config
}

func (a *app) openSession(ctx context.Context) (*session, error) {
	store, err := a.openStore(ctx)
	if err != nil {
		return nil, err
	}

	w, err := a.currentWedding(ctx, store)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	cfg, err := a.statusConfig(w)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &session{store: store, wedding: w, cfg: cfg}, nil
}

func (s *session) Close() error {
	return s.store.Close()
}

func (s *session) money(amount float64) string {
	return status.FormatCurrency(s.cfg, amount)
}

// statusConfig loads the display settings, using the wedding's currency when
// none is configured explicitly.
func (a *app) statusConfig(w *model.Wedding) (status.Config, error) {
	cfg, err := config.LoadStatusConfig(a.v)
	if err != nil {
		return cfg, err
	}
	if w != nil && w.Currency != "" && !a.v.IsSet(config.KeyCurrency) {
		cfg.Currency = w.Currency
	}
	return cfg, nil
}

// today is midnight of the current day in the configured timezone.
func today(cfg status.Config) time.Time {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	y, m, d := time.Now().In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func findEvent(events []model.Event, ref string) (model.Event, error) {
	for _, e := range events {
		if e.ID == ref || strings.EqualFold(e.Name, ref) {
			return e, nil
		}
	}
	return model.Event{}, common.NewUserError("no event named "+strconv.Quote(ref), common.ErrNotFound)
}

func findVendor(vendors []model.Vendor, ref string) (model.Vendor, error) {
	for _, v := range vendors {
		if v.ID == ref || strings.EqualFold(v.Name, ref) {
			return v, nil
		}
	}
	return model.Vendor{}, common.NewUserError("no vendor named "+strconv.Quote(ref), common.ErrNotFound)
}

func findBudgetCategory(categories []model.BudgetCategory, ref string) (model.BudgetCategory, bool) {
	for _, c := range categories {
		if c.ID == ref || strings.EqualFold(c.Name, ref) {
			return c, true
		}
	}
	return model.BudgetCategory{}, false
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// shortID keeps the first block of a uuid for table output.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// matchID resolves a full id from a prefix as printed by shortID.
func matchID[T any](records []T, id func(T) string, ref string) (T, error) {
	var zero T
	var found []T
	for _, r := range records {
		if id(r) == ref {
			return r, nil
		}
		if strings.HasPrefix(id(r), ref) {
			found = append(found, r)
		}
	}
	switch len(found) {
	case 0:
		return zero, common.NewUserError("nothing matches id "+strconv.Quote(ref), common.ErrNotFound)
	case 1:
		return found[0], nil
	default:
		return zero, common.NewUserError("id "+strconv.Quote(ref)+" is ambiguous", common.ErrDuplicateEntry)
	}
}
