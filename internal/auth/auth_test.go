package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dewinson2/MJCL/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestService(t *testing.T, now time.Time) *service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("mjcl-2025"), bcrypt.MinCost)
	require.NoError(t, err)

	svc, err := NewService(Config{
		AccessCodeHash: string(hash),
		Secret:         testSecret,
		TTL:            time.Hour,
	})
	require.NoError(t, err)

	s := svc.(*service)
	s.now = func() time.Time { return now }
	return s
}

func TestLogin_Success(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	s := newTestService(t, now)

	sess, err := s.Login(context.Background(), "mjcl-2025")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, now.Add(time.Hour), sess.ExpiresAt)

	claims, err := s.Verify(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Equal(t, Subject, claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestLogin_WrongCode(t *testing.T) {
	s := newTestService(t, time.Now())

	_, err := s.Login(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_DisabledWithoutCode(t *testing.T) {
	svc, err := NewService(Config{TTL: time.Hour})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestNewService_PlaintextCodeIsHashed(t *testing.T) {
	svc, err := NewService(Config{AccessCode: "secreto", Secret: testSecret, TTL: time.Minute})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "secreto")
	assert.NoError(t, err)
}

func TestNewService_Errors(t *testing.T) {
	_, err := NewService(Config{AccessCode: "x", Secret: testSecret})
	assert.Error(t, err, "zero TTL")

	_, err = NewService(Config{AccessCodeHash: "not-bcrypt", Secret: testSecret, TTL: time.Hour})
	assert.Error(t, err)

	_, err = NewService(Config{AccessCode: "x", TTL: time.Hour})
	assert.Error(t, err, "missing secret")
}

func TestVerify_Expired(t *testing.T) {
	issued := time.Now().Add(-2 * time.Hour)
	s := newTestService(t, issued)
	sess, err := s.Login(context.Background(), "mjcl-2025")
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.Verify(context.Background(), sess.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestVerify_RejectsForeignTokens(t *testing.T) {
	s := newTestService(t, time.Now())
	ctx := context.Background()

	sign := func(method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
		tok, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return tok
	}
	valid := jwt.RegisteredClaims{
		Subject:   Subject,
		Issuer:    DefaultIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.token"},
		{"wrong secret", sign(jwt.SigningMethodHS256, []byte("another-secret-another-secret-xx"), valid)},
		{"wrong method", sign(jwt.SigningMethodHS512, []byte(testSecret), valid)},
		{"wrong issuer", sign(jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
			Subject: Subject, Issuer: "other", ExpiresAt: valid.ExpiresAt,
		})},
		{"wrong subject", sign(jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
			Subject: "user", Issuer: DefaultIssuer, ExpiresAt: valid.ExpiresAt,
		})},
		{"no expiry", sign(jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
			Subject: Subject, Issuer: DefaultIssuer,
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Verify(ctx, tt.token)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestLogout_RevokesToken(t *testing.T) {
	s := newTestService(t, time.Now())
	ctx := context.Background()

	sess, err := s.Login(ctx, "mjcl-2025")
	require.NoError(t, err)
	require.NoError(t, s.Logout(ctx, sess.Token))

	_, err = s.Verify(ctx, sess.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// A fresh login is unaffected
	other, err := s.Login(ctx, "mjcl-2025")
	require.NoError(t, err)
	_, err = s.Verify(ctx, other.Token)
	assert.NoError(t, err)
}

func TestClaimsContext(t *testing.T) {
	_, ok := ClaimsFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithClaims(context.Background(), &Claims{ID: "abc"})
	c, ok := ClaimsFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "abc", c.ID)
}
