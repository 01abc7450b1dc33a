// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gumruk/internal/platform/sec"
)

func newTokenService(t *testing.T, issuer string) *sec.TokenService {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privatePEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	publicDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER})

	service, err := sec.NewTokenServiceFromPEM(privatePEM, publicPEM, issuer)
	require.NoError(t, err)
	return service
}

/*
TestTokenService_RoundTrip signs a token and reads the same claims back.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newTokenService(t, "gumruk.test")

	token, err := service.GenerateAccessToken("u-1", "mergen", string(sec.RoleInspector), time.Minute)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "mergen", claims.Username)
	assert.Equal(t, sec.RoleInspector, claims.UserRole())
	assert.False(t, claims.IsAdmin())
}

/*
TestTokenService_Rejects covers expired tokens and tokens signed by another key.
*/
func TestTokenService_Rejects(t *testing.T) {
	service := newTokenService(t, "gumruk.test")
	other := newTokenService(t, "gumruk.test")

	expired, err := service.GenerateAccessToken("u-1", "mergen", "viewer", -time.Minute)
	require.NoError(t, err)
	_, err = service.VerifyToken(expired)
	assert.Error(t, err)

	foreign, err := other.GenerateAccessToken("u-1", "mergen", "viewer", time.Minute)
	require.NoError(t, err)
	_, err = service.VerifyToken(foreign)
	assert.Error(t, err)
}

/*
TestUserRole_AtLeast checks the role ladder.
*/
func TestUserRole_AtLeast(t *testing.T) {
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleSupervisor))
	assert.True(t, sec.RoleInspector.AtLeast(sec.RoleInspector))
	assert.False(t, sec.RoleViewer.AtLeast(sec.RoleInspector))
	assert.False(t, sec.UserRole("ghost").AtLeast(sec.RoleViewer))
	assert.False(t, sec.UserRole("ghost").IsValid())
}

/*
TestTokens covers password hashing and opaque token helpers.
*/
func TestTokens(t *testing.T) {
	hash, err := sec.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.True(t, sec.CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, sec.CheckPasswordHash("wrong", hash))

	first, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)
	second, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	assert.Equal(t, sec.HashToken(first), sec.HashToken(first))
	assert.Len(t, sec.HashToken(first), 64)
}
