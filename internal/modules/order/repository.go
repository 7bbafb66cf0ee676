package order

import "context"

// Repository defines data access for the order log. Orders are
// immutable once created; Save exists for the initial write and for
// idempotent retries that replace the same id with identical content.
type Repository interface {
	FindAll(ctx context.Context) []Order
	FindByID(ctx context.Context, id string) (Order, bool)
	Save(ctx context.Context, o Order) Order
}
