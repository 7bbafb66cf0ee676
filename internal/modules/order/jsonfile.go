package order

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pizzeria-pos/backend/internal/jsondb"
)

const fileName = "orders.json"

type jsonRepo struct {
	store *jsondb.Store[Order]
}

// NewJSONRepository opens the order log under dataDir. The log starts
// empty; there is nothing to seed.
func NewJSONRepository(dataDir string, log *zap.Logger) Repository {
	sink := jsondb.NewFileSink[Order](filepath.Join(dataDir, fileName))
	store := jsondb.New(sink, func(o Order) string { return o.ID }, log)
	store.Load(nil)
	return &jsonRepo{store: store}
}

func (r *jsonRepo) FindAll(ctx context.Context) []Order {
	return r.store.All()
}

func (r *jsonRepo) FindByID(ctx context.Context, id string) (Order, bool) {
	return r.store.Get(id)
}

func (r *jsonRepo) Save(ctx context.Context, o Order) Order {
	return r.store.Put(o)
}
