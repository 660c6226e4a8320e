package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/backend/internal/app/models"
)

func testJWTService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
}

func testUser(role *models.RoleType) *models.User {
	return &models.User{
		ID:       42,
		Email:    "user@tutorhub.io",
		FullName: "Test User",
		Role:     role,
	}
}

func TestGenerateTokenPair(t *testing.T) {
	svc := testJWTService(time.Hour)
	role := models.RoleTutor

	access, refresh, expiresIn, err := svc.GenerateTokenPair(testUser(&role))
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "TUTOR", claims.Role)
	assert.Equal(t, "test", claims.Issuer)
}

func TestGenerateTokenPairPendingUser(t *testing.T) {
	svc := testJWTService(time.Hour)

	// A pending account has no role yet; the claim is empty.
	access, _, _, err := svc.GenerateTokenPair(testUser(nil))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Empty(t, claims.Role)
}

func TestValidateTokenErrors(t *testing.T) {
	svc := testJWTService(time.Hour)
	role := models.RoleStudent

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService(JWTConfig{
			SecretKey:      "other-secret",
			AccessTokenExp: time.Hour,
		})
		access, _, _, err := other.GenerateTokenPair(testUser(&role))
		require.NoError(t, err)

		_, err = svc.ValidateToken(access)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := testJWTService(-time.Minute)
		access, _, _, err := expired.GenerateTokenPair(testUser(&role))
		require.NoError(t, err)

		_, err = svc.ValidateToken(access)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc123", want: "abc123"},
		{name: "empty header", header: "", wantErr: true},
		{name: "missing prefix", header: "abc123", wantErr: true},
		{name: "wrong scheme", header: "Basic abc123", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetRefreshTokenExpiry(t *testing.T) {
	svc := testJWTService(time.Hour)
	expiry := svc.GetRefreshTokenExpiry()
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiry, time.Minute)
}
