package ingredient

import "context"

// Repository defines data access for ingredients.
type Repository interface {
	FindAll(ctx context.Context) []Ingredient
	FindByID(ctx context.Context, id string) (Ingredient, bool)
	Save(ctx context.Context, ing Ingredient) Ingredient
	Delete(ctx context.Context, id string) bool
}
