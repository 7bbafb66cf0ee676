package order

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pizzeria-pos/backend/internal/modules/catalog"
	"github.com/pizzeria-pos/backend/internal/modules/customer"
)

var testTime = time.Date(2025, 6, 15, 19, 30, 0, 0, time.UTC)

type fixture struct {
	orders    Service
	catalog   catalog.Service
	customers customer.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	log := zap.NewNop()

	catalogService := catalog.NewService(catalog.NewJSONRepository(dir, log), log)
	customerService := customer.NewService(customer.NewJSONRepository(dir, log), log)
	orderRepo := NewJSONRepository(dir, log)
	clock := func() time.Time { return testTime }

	return fixture{
		orders:    NewService(orderRepo, catalogService, customerService, clock, log),
		catalog:   catalogService,
		customers: customerService,
	}
}

func (f fixture) addProduct(t *testing.T, id, name, price string, stock *int) catalog.Product {
	t.Helper()
	p, err := f.catalog.SaveProduct(context.Background(), catalog.Product{
		ID:     id,
		Type:   catalog.KindDish,
		Name:   name,
		Price:  decimal.RequireFromString(price),
		Status: catalog.StatusValidated,
		Stock:  stock,
	})
	require.NoError(t, err)
	return p
}

func (f fixture) addCustomer(t *testing.T, name string, points int) customer.Customer {
	t.Helper()
	c, err := f.customers.SaveCustomer(context.Background(), customer.Customer{Name: name, LoyaltyPoints: points})
	require.NoError(t, err)
	return c
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCreateOrderEmptyCart(t *testing.T) {
	f := newFixture(t)

	_, err := f.orders.CreateOrder(context.Background(), Order{})
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, f.orders.ListOrders(context.Background()), "no partial order may become visible")
}

func TestCreateOrderIgnoresClientPrices(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "DISH-1", "Margherita", "8.00", nil)

	o, err := f.orders.CreateOrder(context.Background(), Order{
		Items: []Line{{ProductID: p.ID, Price: money("1.00"), Quantity: 2}},
	})
	require.NoError(t, err)

	assert.True(t, o.Subtotal.Equal(money("16.00")), "subtotal is 16.00, not 2.00: got %s", o.Subtotal)
	assert.True(t, o.Items[0].Price.Equal(money("8.00")), "line snapshots the catalog price")
	assert.Equal(t, "Margherita", o.Items[0].Name)
	assert.Equal(t, testTime, o.Date, "timestamp comes from the injected clock")
	assert.NotEmpty(t, o.ID)
}

func TestCreateOrderDropsUnknownProducts(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "DISH-1", "Margherita", "8.00", nil)

	o, err := f.orders.CreateOrder(context.Background(), Order{
		Items: []Line{
			{ProductID: "no-such-id", Quantity: 3},
			{ProductID: p.ID, Quantity: 1},
		},
	})
	require.NoError(t, err, "a stale till must not fail the whole order")
	require.Len(t, o.Items, 1)
	assert.True(t, o.Subtotal.Equal(money("8.00")))
}

func TestCreateOrderSkipsArchivedProducts(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "DISH-1", "Margherita", "8.00", nil)
	require.NoError(t, f.catalog.ArchiveProduct(context.Background(), p.ID))

	o, err := f.orders.CreateOrder(context.Background(), Order{
		Items: []Line{{ProductID: p.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Empty(t, o.Items, "archived products no longer price")
	assert.True(t, o.TotalAmount.IsZero())
}

func TestAutomaticDiscount(t *testing.T) {
	tests := []struct {
		name         string
		price        string
		quantity     int
		wantDiscount string
		wantTotal    string
		wantReason   bool
	}{
		{"above threshold", "12.50", 2, "1.25", "23.75", true},
		{"exactly at threshold", "20.00", 1, "0", "20.00", false},
		{"below threshold", "9.50", 1, "0", "9.50", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			p := f.addProduct(t, "DISH-1", "Dish", tt.price, nil)

			o, err := f.orders.CreateOrder(context.Background(), Order{
				Items: []Line{{ProductID: p.ID, Quantity: tt.quantity}},
			})
			require.NoError(t, err)

			assert.True(t, o.DiscountAmount.Equal(money(tt.wantDiscount)),
				"discount: want %s got %s", tt.wantDiscount, o.DiscountAmount)
			assert.True(t, o.TotalAmount.Equal(money(tt.wantTotal)),
				"total: want %s got %s", tt.wantTotal, o.TotalAmount)
			if tt.wantReason {
				assert.NotEmpty(t, o.DiscountReason)
			} else {
				assert.Empty(t, o.DiscountReason)
			}
		})
	}
}

func TestCallerDiscountWinsAndIsClamped(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "DISH-1", "Dish", "10.00", nil)

	o, err := f.orders.CreateOrder(context.Background(), Order{
		Items:          []Line{{ProductID: p.ID, Quantity: 1}},
		DiscountAmount: money("50.00"),
		DiscountReason: "Manager gesture",
	})
	require.NoError(t, err)

	assert.True(t, o.DiscountAmount.Equal(money("10.00")), "discount clamps to the subtotal")
	assert.True(t, o.TotalAmount.IsZero(), "the total is never negative")
	assert.Equal(t, "Manager gesture", o.DiscountReason)
}

func TestCallerDiscountSuppressesAutomatic(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "DISH-1", "Dish", "25.00", nil)

	o, err := f.orders.CreateOrder(context.Background(), Order{
		Items:          []Line{{ProductID: p.ID, Quantity: 1}},
		DiscountAmount: money("2.00"),
		DiscountReason: "Loyalty: 100 pts",
	})
	require.NoError(t, err)

	assert.True(t, o.DiscountAmount.Equal(money("2.00")))
	assert.Equal(t, "Loyalty: 100 pts", o.DiscountReason)
}

func TestInsufficientStockFailsWholeOrder(t *testing.T) {
	f := newFixture(t)
	stock := 1
	p := f.addProduct(t, "DISH-1", "Scarce", "8.00", &stock)

	_, err := f.orders.CreateOrder(context.Background(), Order{
		Items: []Line{{ProductID: p.ID, Quantity: 2}},
	})

	var insufficient *catalog.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "Scarce", insufficient.Name)
	assert.Empty(t, f.orders.ListOrders(context.Background()), "nothing is persisted on stock failure")

	got, _ := f.catalog.FindProduct(context.Background(), p.ID)
	assert.Equal(t, 1, *got.Stock)
}

func TestFulfillmentDecrementsStock(t *testing.T) {
	f := newFixture(t)
	stock := 5
	p := f.addProduct(t, "DISH-1", "Tracked", "8.00", &stock)

	_, err := f.orders.CreateOrder(context.Background(), Order{
		Items: []Line{{ProductID: p.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	got, _ := f.catalog.FindProduct(context.Background(), p.ID)
	assert.Equal(t, 3, *got.Stock)
}

func TestLoyaltyAccrualFloorsTotal(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "DISH-1", "Dish", "12.50", nil)
	c := f.addCustomer(t, "Alice", 0)

	o, err := f.orders.CreateOrder(context.Background(), Order{
		Items:      []Line{{ProductID: p.ID, Quantity: 2}},
		CustomerID: c.ID,
	})
	require.NoError(t, err)
	require.True(t, o.TotalAmount.Equal(money("23.75")))

	got, ok := f.customers.FindCustomer(context.Background(), c.ID)
	require.True(t, ok)
	assert.Equal(t, 23, got.LoyaltyPoints, "floor(23.75) = 23 points")
}

func TestLoyaltyFailureDoesNotRollBackOrder(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "DISH-1", "Dish", "8.00", nil)

	o, err := f.orders.CreateOrder(context.Background(), Order{
		Items:      []Line{{ProductID: p.ID, Quantity: 1}},
		CustomerID: "no-such-customer",
	})
	require.NoError(t, err, "the sale is the primary fact; accrual is best-effort")
	assert.Len(t, f.orders.ListOrders(context.Background()), 1)
	assert.True(t, o.TotalAmount.Equal(money("8.00")))
}

func TestRetriedOrderDoesNotDoubleCredit(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "DISH-1", "Dish", "8.00", nil)
	c := f.addCustomer(t, "Bob", 0)

	draft := Order{
		ID:         "retry-1",
		Items:      []Line{{ProductID: p.ID, Quantity: 1}},
		CustomerID: c.ID,
	}
	_, err := f.orders.CreateOrder(context.Background(), draft)
	require.NoError(t, err)
	_, err = f.orders.CreateOrder(context.Background(), draft)
	require.NoError(t, err)

	assert.Len(t, f.orders.ListOrders(context.Background()), 1, "same id upserts, not duplicates")
	got, _ := f.customers.FindCustomer(context.Background(), c.ID)
	assert.Equal(t, 8, got.LoyaltyPoints, "accrual is idempotent per order id")
}

func TestCreateOrderRejectsNonPositiveQuantity(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "DISH-1", "Dish", "8.00", nil)

	_, err := f.orders.CreateOrder(context.Background(), Order{
		Items: []Line{{ProductID: p.ID, Quantity: 0}},
	})
	assert.Error(t, err)
	assert.Empty(t, f.orders.ListOrders(context.Background()))
}
