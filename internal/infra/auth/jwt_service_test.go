package auth

import (
	"testing"
	"time"

	"foodlink/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testJWTConfig() *config.Config {
	return &config.Config{
		SecretKey: struct {
			Access  string `json:"access" yaml:"access"`
			Refresh string `json:"refresh" yaml:"refresh"`
		}{
			Access:  "test_access_secret_key_very_long_for_testing",
			Refresh: "test_refresh_secret_key_very_long_for_testing",
		},
	}
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	orgID := uuid.New()
	roles := []string{"organization"}

	accessToken, refreshToken, err := jwtService.GenerateTokens(orgID, roles)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token
	claims, err := jwtService.ValidateToken(accessToken)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, orgID, claims.OrganizationID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, "access", claims.Type)

	// Refresh tokens are signed with a different secret, so the access-token
	// validator must reject them.
	refreshClaims, err := jwtService.ValidateToken(refreshToken)
	assert.Error(t, err)
	assert.Nil(t, refreshClaims)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	duration := jwtService.GetRefreshTokenDuration()
	expectedDuration := time.Hour * 24 * 7 // 7 days
	assert.Equal(t, expectedDuration, duration)
}
