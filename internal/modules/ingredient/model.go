package ingredient

import "github.com/shopspring/decimal"

// Ingredient is an elementary kitchen supply (tomato, mozzarella...).
// Stock stays a float because supplies are weighed (1.5 kg); prices
// are exact decimals like everywhere else.
type Ingredient struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Stock     float64         `json:"stock"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Unit      string          `json:"unit,omitempty"`
	Category  string          `json:"category,omitempty"`
}
