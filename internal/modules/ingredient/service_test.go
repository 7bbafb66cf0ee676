package ingredient

import (
	"context"
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

func TestSaveIngredientValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SaveIngredient(ctx, Ingredient{Stock: 1})
	assert.Error(t, err, "name is required")

	_, err = svc.SaveIngredient(ctx, Ingredient{Name: "Tomate", Stock: -1})
	assert.Error(t, err, "stock must not be negative")

	saved, err := svc.SaveIngredient(ctx, Ingredient{
		Name: "Burrata", Stock: 2.5, UnitPrice: decimal.RequireFromString("9.40"), Unit: "kg",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID, "new ingredients get an id")
}

func TestDeleteIngredient(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	saved, err := svc.SaveIngredient(ctx, Ingredient{Name: "Burrata", Stock: 1})
	require.NoError(t, err)

	assert.True(t, svc.DeleteIngredient(ctx, saved.ID))
	assert.False(t, svc.DeleteIngredient(ctx, saved.ID))
}
