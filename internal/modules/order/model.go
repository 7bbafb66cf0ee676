package order

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pizzeria-pos/backend/internal/modules/catalog"
)

// ErrEmptyCart rejects a draft with no lines before anything mutates.
var ErrEmptyCart = errors.New("an order must contain at least one item")

// Line is one position of an order. Name and price are snapshots taken
// from the catalog at fulfillment time and are never re-derived later,
// even if the product changes or is archived.
type Line struct {
	ProductID string              `json:"id"`
	Name      string              `json:"name"`
	Price     decimal.Decimal     `json:"price"`
	Quantity  int                 `json:"quantity"`
	Type      catalog.ProductKind `json:"type"`
}

// Order is a finalized sale. Subtotal, DiscountAmount, TotalAmount and
// Date are facts set exclusively by fulfillment; values supplied by
// the caller for those fields are ignored (the caller's discount is
// the one exception, taken as an explicit override).
type Order struct {
	ID             string          `json:"id"`
	Items          []Line          `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	DiscountReason string          `json:"discountReason,omitempty"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Date           time.Time       `json:"date"`
	CustomerID     string          `json:"customerId,omitempty"`
	SalespersonID  string          `json:"salespersonId,omitempty"`
	TableNumber    int             `json:"tableNumber,omitempty"`
	PaymentMethod  string          `json:"paymentMethod,omitempty"`
}

// Clone deep-copies the line slice so store reads never alias the
// order log.
func (o Order) Clone() Order {
	if o.Items != nil {
		o.Items = append([]Line(nil), o.Items...)
	}
	return o
}
