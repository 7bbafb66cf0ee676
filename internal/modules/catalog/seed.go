package catalog

import "github.com/shopspring/decimal"

// seedProducts is the default menu installed on first run, when no
// catalog file exists yet.
func seedProducts() []Product {
	price := decimal.RequireFromString
	stock := func(n int) *int { return &n }

	return []Product{
		{
			ID: "PIZ-001", Type: KindDish, Name: "Margherita",
			Price: price("9.50"), Status: StatusValidated, Category: "PIZZA",
			Stock:       stock(20),
			Ingredients: []string{"tomate", "mozzarella", "basilic"},
			Vegetarian:  true,
		},
		{
			ID: "PIZ-002", Type: KindDish, Name: "Regina",
			Price: price("11.00"), Status: StatusValidated, Category: "PIZZA",
			Stock:       stock(20),
			Ingredients: []string{"tomate", "mozzarella", "jambon", "champignons"},
		},
		{
			ID: "PIZ-003", Type: KindDish, Name: "Quattro Formaggi",
			Price: price("12.50"), Status: StatusValidated, Category: "PIZZA",
			Stock:       stock(20),
			Ingredients: []string{"mozzarella", "gorgonzola", "chèvre", "parmesan"},
			Vegetarian:  true,
		},
		{
			ID: "PASTA-001", Type: KindDish, Name: "Spaghetti Carbonara",
			Price: price("10.50"), Status: StatusValidated, Category: "PASTA",
			Stock:       stock(20),
			Ingredients: []string{"spaghetti", "guanciale", "oeuf", "pecorino"},
		},
		{
			ID: "DESSERT-001", Type: KindDish, Name: "Tiramisu",
			Price: price("6.00"), Status: StatusValidated, Category: "DESSERT",
			Stock:       stock(20),
			Ingredients: []string{"mascarpone", "café", "cacao"},
			Vegetarian:  true,
		},
		{
			ID: "SOFT-001", Type: KindDrink, Name: "Limonata",
			Price: price("3.50"), Status: StatusValidated, Category: "SOFT",
			Stock: stock(50), VolumeCl: 33,
		},
		{
			ID: "SOFT-002", Type: KindDrink, Name: "Eau pétillante",
			Price: price("2.50"), Status: StatusValidated, Category: "SOFT",
			Stock: stock(50), VolumeCl: 50,
		},
		{
			ID: "BEER-001", Type: KindDrink, Name: "Birra Moretti",
			Price: price("5.00"), Status: StatusValidated, Category: "BEER",
			Stock: stock(50), VolumeCl: 33, Alcoholic: true,
		},
		{
			ID: "WINE-001", Type: KindDrink, Name: "Chianti Classico",
			Price: price("19.00"), Status: StatusValidated, Category: "WINE_RED",
			Stock: stock(50), VolumeCl: 75, Alcoholic: true,
		},
	}
}
