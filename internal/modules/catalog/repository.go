package catalog

import "context"

// Repository defines data access for the product catalog.
type Repository interface {
	// FindAll returns a snapshot of the whole catalog.
	FindAll(ctx context.Context) []Product

	// FindByID returns one product by id.
	FindByID(ctx context.Context, id string) (Product, bool)

	// Save upserts a product and writes through to the backing file.
	// Persistence failures are absorbed by the store's failure policy.
	Save(ctx context.Context, p Product) Product

	// Reserve checks and decrements stock for every line inside one
	// critical section. Either all lines are applied or none is, in
	// which case the error names the first failing line.
	Reserve(ctx context.Context, lines []Reservation) error
}
