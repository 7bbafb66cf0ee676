package ingredient

import (
	"context"
	"path/filepath"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pizzeria-pos/backend/internal/jsondb"
)

const fileName = "ingredients.json"

type jsonRepo struct {
	store *jsondb.Store[Ingredient]
}

// NewJSONRepository opens the ingredient file under dataDir, seeding a
// starter pantry on first run.
func NewJSONRepository(dataDir string, log *zap.Logger) Repository {
	sink := jsondb.NewFileSink[Ingredient](filepath.Join(dataDir, fileName))
	store := jsondb.New(sink, func(i Ingredient) string { return i.ID }, log)
	store.Load(seedIngredients)
	return &jsonRepo{store: store}
}

func (r *jsonRepo) FindAll(ctx context.Context) []Ingredient {
	return r.store.All()
}

func (r *jsonRepo) FindByID(ctx context.Context, id string) (Ingredient, bool) {
	return r.store.Get(id)
}

func (r *jsonRepo) Save(ctx context.Context, ing Ingredient) Ingredient {
	return r.store.Put(ing)
}

func (r *jsonRepo) Delete(ctx context.Context, id string) bool {
	return r.store.Delete(id)
}

func seedIngredients() []Ingredient {
	price := decimal.RequireFromString
	return []Ingredient{
		{ID: "ING-001", Name: "Tomate", Stock: 12.0, UnitPrice: price("2.20"), Unit: "kg", Category: "LEGUME"},
		{ID: "ING-002", Name: "Mozzarella", Stock: 8.5, UnitPrice: price("7.90"), Unit: "kg", Category: "FROMAGE"},
		{ID: "ING-003", Name: "Farine 00", Stock: 25.0, UnitPrice: price("1.40"), Unit: "kg", Category: "BASE"},
		{ID: "ING-004", Name: "Basilic", Stock: 0.6, UnitPrice: price("18.00"), Unit: "kg", Category: "HERBE"},
		{ID: "ING-005", Name: "Jambon", Stock: 4.0, UnitPrice: price("11.50"), Unit: "kg", Category: "CHARCUTERIE"},
		{ID: "ING-006", Name: "Champignons", Stock: 3.2, UnitPrice: price("5.60"), Unit: "kg", Category: "LEGUME"},
		{ID: "ING-007", Name: "Huile d'olive", Stock: 6.0, UnitPrice: price("9.80"), Unit: "l", Category: "BASE"},
	}
}
