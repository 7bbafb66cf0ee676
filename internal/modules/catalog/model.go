package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductKind discriminates the two sellable item shapes. It doubles
// as the JSON "type" tag so catalog files stay self-describing.
type ProductKind string

const (
	KindDish  ProductKind = "DISH"
	KindDrink ProductKind = "DRINK"
)

// ProductStatus is the lifecycle state of a catalog entry.
type ProductStatus string

const (
	StatusDraft     ProductStatus = "DRAFT"
	StatusValidated ProductStatus = "VALIDATED"
	StatusArchived  ProductStatus = "ARCHIVED"
)

// Product is a sellable catalog item. The common fields apply to both
// kinds; the trailing groups only carry meaning for their own kind and
// stay empty otherwise.
type Product struct {
	ID       string           `json:"id"`
	Type     ProductKind      `json:"type"`
	Name     string           `json:"name"`
	Price    decimal.Decimal  `json:"price"`
	Status   ProductStatus    `json:"status,omitempty"`
	VAT      *decimal.Decimal `json:"vat,omitempty"`
	Category string           `json:"category,omitempty"`

	// Stock is nil for untracked (unlimited) items and the remaining
	// quantity otherwise; zero means sold out, not untracked. Records
	// persisted without a stock value get a kind default backfilled at
	// load time.
	Stock *int `json:"stock"`

	// Dish only.
	Ingredients []string `json:"ingredients,omitempty"`
	Vegetarian  bool     `json:"isVegetarian,omitempty"`

	// Drink only.
	VolumeCl  int  `json:"volumeCl,omitempty"`
	Alcoholic bool `json:"isAlcoholic,omitempty"`
}

// Unlimited reports whether stock is not tracked for this product.
// A tracked item drained to zero is sold out, not unlimited.
func (p Product) Unlimited() bool {
	return p.Stock == nil
}

// Clone deep-copies the reference fields so store reads never alias
// catalog state.
func (p Product) Clone() Product {
	if p.Stock != nil {
		n := *p.Stock
		p.Stock = &n
	}
	if p.VAT != nil {
		v := *p.VAT
		p.VAT = &v
	}
	if p.Ingredients != nil {
		p.Ingredients = append([]string(nil), p.Ingredients...)
	}
	return p
}

// Reservation asks for quantity units of one product.
type Reservation struct {
	ProductID string
	Quantity  int
}

// InsufficientStockError reports the first line a reservation could
// not cover. The reservation as a whole made no change.
type InsufficientStockError struct {
	Name      string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q (available: %d, requested: %d)",
		e.Name, e.Available, e.Requested)
}
