// Package auth gates the admin API. Operators configure a shared access code
// (stored as a bcrypt hash); a correct code is exchanged for a signed,
// short-lived session token.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/crypto/bcrypt"

	"github.com/dewinson2/MJCL/internal/domain"
	"github.com/dewinson2/MJCL/internal/logger"
)

// Token claims
const (
	Subject       = "admin"
	DefaultIssuer = "mjcl-jobs"
	signingMethod = "HS256"
)

// revokedCapacity bounds the number of logged-out tokens remembered.
const revokedCapacity = 1024

// Config configures the admin gate
type Config struct {
	// AccessCodeHash is a bcrypt hash of the access code. Preferred.
	AccessCodeHash string
	// AccessCode is a plaintext code, hashed at startup when no hash is set.
	AccessCode string
	Secret     string
	TTL        time.Duration
	Issuer     string
}

// Session is an issued admin session
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Claims are the verified contents of a session token
type Claims struct {
	ID        string
	Subject   string
	ExpiresAt time.Time
}

// Service defines the admin session operations
type Service interface {
	Login(ctx context.Context, code string) (*Session, error)
	Verify(ctx context.Context, token string) (*Claims, error)
	Logout(ctx context.Context, token string) error
}

type service struct {
	hash    []byte
	secret  []byte
	ttl     time.Duration
	issuer  string
	now     func() time.Time
	revoked *expirable.LRU[string, struct{}]
}

// NewService creates the admin gate. With no access code configured every
// login is rejected.
func NewService(cfg Config) (Service, error) {
	if cfg.TTL <= 0 {
		return nil, errors.New("session TTL must be positive")
	}
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultIssuer
	}

	s := &service{
		secret:  []byte(cfg.Secret),
		ttl:     cfg.TTL,
		issuer:  cfg.Issuer,
		now:     time.Now,
		revoked: expirable.NewLRU[string, struct{}](revokedCapacity, nil, cfg.TTL),
	}

	switch {
	case cfg.AccessCodeHash != "":
		if _, err := bcrypt.Cost([]byte(cfg.AccessCodeHash)); err != nil {
			return nil, fmt.Errorf("invalid access code hash: %w", err)
		}
		s.hash = []byte(cfg.AccessCodeHash)
	case cfg.AccessCode != "":
		hash, err := HashAccessCode(cfg.AccessCode)
		if err != nil {
			return nil, err
		}
		s.hash = hash
	}

	if s.hash != nil && len(s.secret) == 0 {
		return nil, errors.New("session secret is required when an access code is configured")
	}
	return s, nil
}

// HashAccessCode returns the bcrypt hash to store in ADMIN_ACCESS_CODE_HASH.
func HashAccessCode(code string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash access code: %w", err)
	}
	return hash, nil
}

func (s *service) Login(ctx context.Context, code string) (*Session, error) {
	log := logger.FromContext(ctx)

	if s.hash == nil {
		log.Warn("Admin login attempted but no access code is configured")
		return nil, fmt.Errorf("%w: admin access disabled", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword(s.hash, []byte(code)); err != nil {
		log.Info("Admin login rejected")
		return nil, fmt.Errorf("%w: invalid access code", domain.ErrUnauthorized)
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   Subject,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	log.Info("Admin session issued", "session_id", claims.ID, "expires_at", expiresAt)
	return &Session{Token: token, ExpiresAt: expiresAt}, nil
}

func (s *service) Verify(_ context.Context, token string) (*Claims, error) {
	if token == "" || len(s.secret) == 0 {
		return nil, fmt.Errorf("%w: missing session", domain.ErrUnauthorized)
	}

	var parsed jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{signingMethod}),
		jwt.WithIssuer(s.issuer),
		jwt.WithSubject(Subject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	if _, revoked := s.revoked.Get(parsed.ID); revoked {
		return nil, fmt.Errorf("%w: session revoked", domain.ErrUnauthorized)
	}

	return &Claims{
		ID:        parsed.ID,
		Subject:   parsed.Subject,
		ExpiresAt: parsed.ExpiresAt.Time,
	}, nil
}

// Logout revokes the token for the rest of its lifetime.
func (s *service) Logout(ctx context.Context, token string) error {
	claims, err := s.Verify(ctx, token)
	if err != nil {
		return err
	}
	s.revoked.Add(claims.ID, struct{}{})
	logger.FromContext(ctx).Info("Admin session revoked", "session_id", claims.ID)
	return nil
}

type claimsKey struct{}

// WithClaims stores verified claims in the context.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

// ClaimsFromContext returns the claims stored by WithClaims.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*Claims)
	return c, ok
}
