package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviecatalog/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testUser() *domain.User {
	return &domain.User{
		ID:       42,
		Username: "alice",
		Email:    "alice@example.com",
		Roles: []domain.Role{
			{ID: 1, Name: domain.RoleUser},
			{ID: 2, Name: domain.RoleAdmin},
		},
	}
}

func TestNew_RejectsShortSecret(t *testing.T) {
	_, err := New("too-short", time.Hour)
	assert.ErrorIs(t, err, ErrSecretTooShort)

	_, err = New(testSecret[:31], time.Hour)
	assert.ErrorIs(t, err, ErrSecretTooShort)

	_, err = New(testSecret, time.Hour)
	assert.NoError(t, err)
}

func TestGenerateAndValidate_RoundTrip(t *testing.T) {
	svc, err := New(testSecret, time.Hour)
	require.NoError(t, err)

	token, err := svc.GenerateToken(testUser())
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "alice", claims.Username())
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, []string{"USER", "ADMIN"}, claims.RoleNames())
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateToken_Expired(t *testing.T) {
	svc, err := New(testSecret, time.Millisecond)
	require.NoError(t, err)

	token, err := svc.GenerateToken(testUser())
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSignature(t *testing.T) {
	issuer, err := New(testSecret, time.Hour)
	require.NoError(t, err)
	verifier, err := New("ffffffffffffffffffffffffffffffff", time.Hour)
	require.NoError(t, err)

	token, err := issuer.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Malformed(t *testing.T) {
	svc, err := New(testSecret, time.Hour)
	require.NoError(t, err)

	for _, bad := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.ValidateToken(bad)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", bad)
	}
}

func TestValidateToken_RejectsUnsignedAlg(t *testing.T) {
	svc, err := New(testSecret, time.Hour)
	require.NoError(t, err)

	unsigned := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, jwtlib.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenStr, err := unsigned.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
