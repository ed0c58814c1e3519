package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/appointment-system/internal/httperr"
	"github.com/BruksfildServices01/appointment-system/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	companyID := uint(5)
	user := &models.User{
		ID:        42,
		Username:  "co1",
		Role:      models.RoleCompany,
		CompanyID: &companyID,
	}

	token, err := tm.Generate(user)
	require.NoError(t, err)

	claims, err := tm.Decode(token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "co1", claims.Username)
	assert.Equal(t, models.RoleCompany, claims.Role)
	require.NotNil(t, claims.CompanyID)
	assert.Equal(t, uint(5), *claims.CompanyID)
}

func TestTokenAdminHasNoCompany(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.Generate(&models.User{
		ID:       1,
		Username: "admin",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)

	claims, err := tm.Decode(token)
	require.NoError(t, err)

	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Nil(t, claims.CompanyID)
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Generate(&models.User{ID: 1, Username: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = tm.Decode(token)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindAuthentication))
}

func TestTokenWrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)

	token, err := tm.Generate(&models.User{ID: 1, Username: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = other.Decode(token)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindAuthentication))
}

func TestTokenGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	_, err := tm.Decode("not-a-token")
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindAuthentication))
}
