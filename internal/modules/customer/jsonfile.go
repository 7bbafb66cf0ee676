package customer

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pizzeria-pos/backend/internal/jsondb"
)

const fileName = "customers.json"

type jsonRepo struct {
	store *jsondb.Store[Customer]
	log   *zap.Logger
}

// NewJSONRepository opens the customer file under dataDir. There is no
// seed: the ledger starts empty on first run.
func NewJSONRepository(dataDir string, log *zap.Logger) Repository {
	sink := jsondb.NewFileSink[Customer](filepath.Join(dataDir, fileName))
	store := jsondb.New(sink, func(c Customer) string { return c.ID }, log)
	store.Load(nil)
	return &jsonRepo{store: store, log: log}
}

func (r *jsonRepo) FindAll(ctx context.Context) []Customer {
	return r.store.All()
}

func (r *jsonRepo) FindByID(ctx context.Context, id string) (Customer, bool) {
	return r.store.Get(id)
}

func (r *jsonRepo) FindByPhone(ctx context.Context, phone string) (Customer, bool) {
	for _, c := range r.store.All() {
		if c.Phone == phone {
			return c, true
		}
	}
	return Customer{}, false
}

func (r *jsonRepo) Save(ctx context.Context, c Customer) Customer {
	return r.store.Put(c)
}

func (r *jsonRepo) Delete(ctx context.Context, id string) bool {
	return r.store.Delete(id)
}

func (r *jsonRepo) AdjustPoints(ctx context.Context, id string, delta int) (Customer, error) {
	var (
		updated Customer
		adjErr  error = ErrNotFound
	)
	r.store.Mutate(func(items []Customer) ([]Customer, bool) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			next := items[i].LoyaltyPoints + delta
			if next < 0 {
				adjErr = &InsufficientPointsError{
					Available: items[i].LoyaltyPoints,
					Requested: -delta,
				}
				return items, false
			}
			items[i].LoyaltyPoints = next
			updated = items[i]
			adjErr = nil
			return items, true
		}
		return items, false
	})
	return updated, adjErr
}
