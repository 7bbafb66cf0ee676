package customer

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	return NewService(NewJSONRepository(t.TempDir(), zap.NewNop()), zap.NewNop())
}

func addCustomer(t *testing.T, svc Service, name string, points int) Customer {
	t.Helper()
	c, err := svc.SaveCustomer(context.Background(), Customer{Name: name, Phone: "0600000001", LoyaltyPoints: points})
	require.NoError(t, err)
	return c
}

func TestSaveCustomerAssignsID(t *testing.T) {
	svc := newTestService(t)

	c := addCustomer(t, svc, "Alice", 0)
	assert.NotEmpty(t, c.ID)

	_, err := svc.SaveCustomer(context.Background(), Customer{})
	assert.Error(t, err, "name is required")
}

func TestFindByPhone(t *testing.T) {
	svc := newTestService(t)
	c := addCustomer(t, svc, "Alice", 0)

	got, ok := svc.FindByPhone(context.Background(), "0600000001")
	require.True(t, ok)
	assert.Equal(t, c.ID, got.ID)

	_, ok = svc.FindByPhone(context.Background(), "0699999999")
	assert.False(t, ok)
}

func TestAccruePointsFloorsTotal(t *testing.T) {
	svc := newTestService(t)
	c := addCustomer(t, svc, "Alice", 10)

	require.NoError(t, svc.AccruePoints(context.Background(), c.ID, "order-1", decimal.RequireFromString("23.75")))

	got, _ := svc.FindCustomer(context.Background(), c.ID)
	assert.Equal(t, 33, got.LoyaltyPoints)
}

func TestAccruePointsUnknownCustomer(t *testing.T) {
	svc := newTestService(t)
	err := svc.AccruePoints(context.Background(), "missing", "order-1", decimal.RequireFromString("10.00"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccruePointsIdempotentPerOrder(t *testing.T) {
	svc := newTestService(t)
	c := addCustomer(t, svc, "Alice", 0)
	total := decimal.RequireFromString("10.00")

	require.NoError(t, svc.AccruePoints(context.Background(), c.ID, "order-1", total))
	require.NoError(t, svc.AccruePoints(context.Background(), c.ID, "order-1", total))

	got, _ := svc.FindCustomer(context.Background(), c.ID)
	assert.Equal(t, 10, got.LoyaltyPoints, "the same order credits once")
}

func TestAccruePointsConcurrentRetriesCreditOnce(t *testing.T) {
	svc := newTestService(t)
	c := addCustomer(t, svc, "Alice", 0)
	total := decimal.RequireFromString("10.00")

	const retries = 8
	var wg sync.WaitGroup
	wg.Add(retries)
	for i := 0; i < retries; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.AccruePoints(context.Background(), c.ID, "order-1", total))
		}()
	}
	wg.Wait()

	got, _ := svc.FindCustomer(context.Background(), c.ID)
	assert.Equal(t, 10, got.LoyaltyPoints, "simultaneous retries of one order credit once")
}

func TestAccrueFailureReleasesOrderClaim(t *testing.T) {
	svc := newTestService(t)
	total := decimal.RequireFromString("10.00")

	err := svc.AccruePoints(context.Background(), "missing", "order-1", total)
	require.ErrorIs(t, err, ErrNotFound)

	// The failed attempt must not burn the order id for a later retry
	// against the account once it exists.
	c := addCustomer(t, svc, "Alice", 0)
	require.NoError(t, svc.AccruePoints(context.Background(), c.ID, "order-1", total))

	got, _ := svc.FindCustomer(context.Background(), c.ID)
	assert.Equal(t, 10, got.LoyaltyPoints)
}

func TestRedeemPoints(t *testing.T) {
	ctx := context.Background()

	t.Run("valid redemption", func(t *testing.T) {
		svc := newTestService(t)
		c := addCustomer(t, svc, "Alice", 250)

		discount, err := svc.RedeemPoints(ctx, c.ID, 100)
		require.NoError(t, err)
		assert.True(t, discount.Equal(decimal.RequireFromString("5.00")), "got %s", discount)

		got, _ := svc.FindCustomer(ctx, c.ID)
		assert.Equal(t, 150, got.LoyaltyPoints)
	})

	t.Run("not a multiple of the redemption unit", func(t *testing.T) {
		svc := newTestService(t)
		c := addCustomer(t, svc, "Alice", 250)

		_, err := svc.RedeemPoints(ctx, c.ID, 150)
		assert.ErrorIs(t, err, ErrInvalidRedemption)

		got, _ := svc.FindCustomer(ctx, c.ID)
		assert.Equal(t, 250, got.LoyaltyPoints, "balance unchanged on rejection")
	})

	t.Run("zero and negative points", func(t *testing.T) {
		svc := newTestService(t)
		c := addCustomer(t, svc, "Alice", 250)

		_, err := svc.RedeemPoints(ctx, c.ID, 0)
		assert.ErrorIs(t, err, ErrInvalidRedemption)
		_, err = svc.RedeemPoints(ctx, c.ID, -100)
		assert.ErrorIs(t, err, ErrInvalidRedemption)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		svc := newTestService(t)
		c := addCustomer(t, svc, "Alice", 250)

		_, err := svc.RedeemPoints(ctx, c.ID, 300)
		var insufficient *InsufficientPointsError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, 250, insufficient.Available)
		assert.Equal(t, 300, insufficient.Requested)

		got, _ := svc.FindCustomer(ctx, c.ID)
		assert.Equal(t, 250, got.LoyaltyPoints)
	})

	t.Run("unknown customer", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.RedeemPoints(ctx, "missing", 100)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("multiple slices", func(t *testing.T) {
		svc := newTestService(t)
		c := addCustomer(t, svc, "Alice", 250)

		discount, err := svc.RedeemPoints(ctx, c.ID, 200)
		require.NoError(t, err)
		assert.True(t, discount.Equal(decimal.RequireFromString("10.00")))
	})
}
