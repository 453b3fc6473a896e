package jwt

import (
	"testing"
	"time"

	"appointment-data-proxy/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *JWTService {
	return NewJWTService(config.AuthConfig{Secret: "test-secret", Issuer: "https://auth.example", Audience: "appointment-data"})
}

func TestValidateToken_RoundTrip(t *testing.T) {
	svc := newService()
	token, err := svc.GenerateToken("client-1", []string{ScopeGeneral, ScopeCustomer}, time.Minute)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)

	require.NoError(t, err)
	assert.Equal(t, "client-1", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.HasScope(ScopeGeneral))
	assert.True(t, claims.HasScope(ScopeCustomer))
	assert.False(t, claims.HasScope("api:appointment-data"))
}

func TestValidateToken_Rejects(t *testing.T) {
	svc := newService()

	expired, err := svc.GenerateToken("c", nil, -time.Minute)
	require.NoError(t, err)
	_, err = svc.ValidateToken(expired)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	foreign, err := NewJWTService(config.AuthConfig{Secret: "other", Issuer: "https://auth.example", Audience: "appointment-data"}).
		GenerateToken("c", nil, time.Minute)
	require.NoError(t, err)
	_, err = svc.ValidateToken(foreign)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	otherIssuer, err := NewJWTService(config.AuthConfig{Secret: "test-secret", Issuer: "https://evil.example", Audience: "appointment-data"}).
		GenerateToken("c", nil, time.Minute)
	require.NoError(t, err)
	_, err = svc.ValidateToken(otherIssuer)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	otherAudience, err := NewJWTService(config.AuthConfig{Secret: "test-secret", Issuer: "https://auth.example", Audience: "billing"}).
		GenerateToken("c", nil, time.Minute)
	require.NoError(t, err)
	_, err = svc.ValidateToken(otherAudience)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidAudience)

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
