package testutils

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/roster-api/internal/config"
	"github.com/phrazzld/roster-api/internal/service/auth"
)

// TestAuthConfig returns an auth configuration that passes config validation.
func TestAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:                   "test-jwt-secret-that-is-32-chars-long",
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 1440,
		BCryptCost:                  4,
	}
}

// CreateTestJWTService creates a real JWT service signed with the test secret.
func CreateTestJWTService() (auth.JWTService, error) {
	return auth.NewJWTService(TestAuthConfig())
}

// GenerateAuthHeader creates an Authorization header value carrying a valid
// access token for userID.
func GenerateAuthHeader(userID uuid.UUID) (string, error) {
	jwtService, err := CreateTestJWTService()
	if err != nil {
		return "", fmt.Errorf("failed to create test JWT service: %w", err)
	}

	token, err := jwtService.GenerateToken(context.Background(), userID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return "Bearer " + token, nil
}
