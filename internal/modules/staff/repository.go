package staff

import "context"

// Repository defines data access for staff accounts.
type Repository interface {
	FindAll(ctx context.Context) []Salesperson
	FindByID(ctx context.Context, id string) (Salesperson, bool)
	Save(ctx context.Context, s Salesperson) Salesperson
	Delete(ctx context.Context, id string) bool
}
