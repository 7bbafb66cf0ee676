package customer

import "context"

// Repository defines data access for customer accounts.
type Repository interface {
	FindAll(ctx context.Context) []Customer
	FindByID(ctx context.Context, id string) (Customer, bool)
	FindByPhone(ctx context.Context, phone string) (Customer, bool)
	Save(ctx context.Context, c Customer) Customer
	Delete(ctx context.Context, id string) bool

	// AdjustPoints applies a point delta to one account inside the
	// store's single-writer section, so concurrent accruals cannot
	// lose updates. A delta that would drive the balance negative is
	// rejected with *InsufficientPointsError and nothing changes.
	AdjustPoints(ctx context.Context, id string, delta int) (Customer, error)
}
