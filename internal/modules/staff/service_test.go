package staff

import (
	"context"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testJWTKey = []byte("test-signing-key")

func newTestService(t *testing.T) Service {
	t.Helper()
	repo := NewJSONRepository(t.TempDir(), NewBcryptHasher(), zap.NewNop())
	return NewService(repo, NewBcryptHasher(), testJWTKey, zap.NewNop())
}

func TestSaveStaffHashesPin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	sp, err := svc.SaveStaff(ctx, SaveRequest{
		FirstName: "Luigi",
		LastName:  "Verdi",
		Role:      RoleServer,
		PinCode:   "4321",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sp.ID)
	assert.NotEqual(t, "4321", sp.PinHash, "the clear PIN is never stored")
	assert.True(t, NewBcryptHasher().Verify(sp.PinHash, "4321"))
	assert.True(t, sp.Active)
	assert.False(t, sp.Permissions["manage_users"], "servers get non-admin defaults")
}

func TestSaveStaffKeepsDigestWhenPinOmitted(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	sp, err := svc.SaveStaff(ctx, SaveRequest{FirstName: "Luigi", Role: RoleServer, PinCode: "4321"})
	require.NoError(t, err)

	updated, err := svc.SaveStaff(ctx, SaveRequest{ID: sp.ID, FirstName: "Luigi", LastName: "Bianchi", Role: RoleServer})
	require.NoError(t, err)
	assert.Equal(t, sp.PinHash, updated.PinHash, "an update without a PIN keeps the old digest")
	assert.Equal(t, "Bianchi", updated.LastName)
}

func TestSaveStaffValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SaveStaff(ctx, SaveRequest{Role: RoleServer, PinCode: "1111"})
	assert.Error(t, err, "first name is required")

	_, err = svc.SaveStaff(ctx, SaveRequest{FirstName: "X", Role: "COOK", PinCode: "1111"})
	assert.Error(t, err, "unknown role")

	_, err = svc.SaveStaff(ctx, SaveRequest{FirstName: "X", Role: RoleServer})
	assert.Error(t, err, "new accounts need a PIN")

	_, err = svc.SaveStaff(ctx, SaveRequest{ID: "no-such-id", FirstName: "X", Role: RoleServer})
	assert.Error(t, err, "an unknown caller-supplied id is still a new account and needs a PIN")
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// The seeded admin account uses PIN 1234.
	token, err := svc.Login(ctx, "admin-01", "1234")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.ParseWithClaims(token, &jwt.StandardClaims{}, func(*jwt.Token) (interface{}, error) {
		return testJWTKey, nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(*jwt.StandardClaims)
	require.True(t, ok)
	assert.Equal(t, "admin-01", claims.Subject)

	_, err = svc.Login(ctx, "admin-01", "9999")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = svc.Login(ctx, "nobody", "1234")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestLoginRejectsInactiveAccount(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	inactive := false
	sp, err := svc.SaveStaff(ctx, SaveRequest{
		FirstName: "Luigi",
		Role:      RoleServer,
		PinCode:   "4321",
		Active:    &inactive,
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, sp.ID, "4321")
	assert.ErrorIs(t, err, ErrBadCredentials)
}
