package catalog

import (
	"context"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/pizzeria-pos/backend/internal/jsondb"
)

const fileName = "pizzeria-data.json"

type jsonRepo struct {
	store *jsondb.Store[Product]
	log   *zap.Logger
}

// NewJSONRepository opens the catalog file under dataDir, seeding the
// default menu on first run and migrating older records that predate
// the stock and category fields.
func NewJSONRepository(dataDir string, log *zap.Logger) Repository {
	sink := jsondb.NewFileSink[Product](filepath.Join(dataDir, fileName))
	store := jsondb.New(sink, func(p Product) string { return p.ID }, log)
	store.Load(seedProducts)

	r := &jsonRepo{store: store, log: log}
	r.migrate()
	return r
}

func (r *jsonRepo) FindAll(ctx context.Context) []Product {
	return r.store.All()
}

func (r *jsonRepo) FindByID(ctx context.Context, id string) (Product, bool) {
	return r.store.Get(id)
}

func (r *jsonRepo) Save(ctx context.Context, p Product) Product {
	return r.store.Put(p)
}

func (r *jsonRepo) Reserve(ctx context.Context, lines []Reservation) error {
	// Quantities are summed per product first so that several lines of
	// the same item cannot each pass the check individually while
	// overdrawing together.
	need := make(map[string]int, len(lines))
	for _, l := range lines {
		need[l.ProductID] += l.Quantity
	}

	var resErr error
	r.store.Mutate(func(items []Product) ([]Product, bool) {
		index := make(map[string]int, len(items))
		for i, p := range items {
			index[p.ID] = i
		}

		// Dry run: every line must be coverable before anything moves.
		for id, qty := range need {
			i, ok := index[id]
			if !ok {
				continue
			}
			p := items[i]
			if p.Unlimited() {
				continue
			}
			if *p.Stock < qty {
				resErr = &InsufficientStockError{
					Name:      p.Name,
					Available: *p.Stock,
					Requested: qty,
				}
				return items, false
			}
		}

		changed := false
		for id, qty := range need {
			i, ok := index[id]
			if !ok {
				continue
			}
			p := &items[i]
			if p.Unlimited() {
				continue
			}
			left := *p.Stock - qty
			p.Stock = &left
			changed = true
			r.log.Info("stock reserved",
				zap.String("product", p.Name),
				zap.Int("quantity", qty),
				zap.Int("remaining", left))
		}
		return items, changed
	})
	return resErr
}

// migrate backfills stock and category on records written before those
// fields existed. Runs once per startup inside the store's write lock.
func (r *jsonRepo) migrate() {
	migrated := false
	r.store.Mutate(func(items []Product) ([]Product, bool) {
		for i := range items {
			p := &items[i]
			if p.Stock == nil {
				n := defaultStock(p.Type)
				p.Stock = &n
				migrated = true
			}
			if p.Category == "" {
				p.Category = inferCategory(*p)
				migrated = true
			}
		}
		return items, migrated
	})
	if migrated {
		r.log.Info("catalog migrated to stock/category defaults")
	}
}

func defaultStock(kind ProductKind) int {
	switch kind {
	case KindDrink:
		return 50
	default:
		return 20
	}
}

// inferCategory guesses the POS display category of a legacy record
// from its id prefix and name. Only used by the startup migration.
func inferCategory(p Product) string {
	id := strings.ToUpper(p.ID)
	name := strings.ToUpper(p.Name)

	switch {
	case strings.HasPrefix(id, "PIZ"):
		return "PIZZA"
	case strings.HasPrefix(id, "PASTA"):
		return "PASTA"
	case strings.HasPrefix(id, "DESSERT"):
		return "DESSERT"
	case strings.HasPrefix(id, "SOFT"):
		return "SOFT"
	case strings.HasPrefix(id, "BEER"):
		return "BEER"
	case strings.HasPrefix(id, "WINE"):
		switch {
		case strings.Contains(name, "ROSÉ"), strings.Contains(name, "ROSE"), strings.Contains(name, "PROVENCE"):
			return "WINE_ROSE"
		case strings.Contains(name, "BLANC"), strings.Contains(name, "PINOT"), strings.Contains(name, "CHABLIS"),
			strings.Contains(name, "SANCERRE"), strings.Contains(name, "PÉTILLANT"):
			return "WINE_WHITE"
		default:
			return "WINE_RED"
		}
	case strings.HasPrefix(id, "APERITIF"), strings.HasPrefix(id, "APERO"):
		return "APERITIF"
	case p.Type == KindDish:
		return "DISH"
	default:
		return "DRINK"
	}
}
