package customer

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Loyalty programme constants, the single source of truth for every
// accrual and redemption rule:
// 1 point per euro of final order total (truncated), redeemable in
// slices of 100 points worth 5.00 each.
const (
	PointsPerEuro       = 1
	PointsPerRedemption = 100
)

// DiscountPerRedemption is the discount granted for each full
// redemption slice.
var DiscountPerRedemption = decimal.RequireFromString("5.00")

// Customer is a loyalty account holder.
type Customer struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	LoyaltyPoints int    `json:"loyaltyPoints"`
}

// ErrNotFound is returned when a customer id resolves to no account.
var ErrNotFound = errors.New("customer not found")

// ErrInvalidRedemption rejects redemption requests that are not a
// positive multiple of PointsPerRedemption. Raised before any mutation.
var ErrInvalidRedemption = fmt.Errorf("points must be a positive multiple of %d", PointsPerRedemption)

// InsufficientPointsError rejects a redemption the balance cannot
// cover. The balance is unchanged.
type InsufficientPointsError struct {
	Available int
	Requested int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("insufficient loyalty points (available: %d, requested: %d)",
		e.Available, e.Requested)
}
