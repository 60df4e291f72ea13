package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "campuspool"}
	user := &models.User{
		ID:       uuid.New(),
		Name:     "Ada",
		Role:     models.RoleMember,
		Verified: true,
	}

	tokenString, expiresAt, err := GenerateToken(user, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := ValidateToken(tokenString, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "Ada", claims.Name)
	assert.True(t, claims.Verified)

	actor := claims.Actor()
	assert.Equal(t, user.ID, actor.ID)
	assert.True(t, actor.Authenticated())
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "campuspool"}
	user := &models.User{ID: uuid.New(), Name: "Ada", Role: models.RoleMember}

	tokenString, _, err := GenerateToken(user, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "other-secret")
	assert.Error(t, err)
}
