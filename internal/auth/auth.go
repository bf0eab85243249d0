package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/itechperu/storefront/internal/auth/session"
	"github.com/itechperu/storefront/internal/auth/token"
	"github.com/itechperu/storefront/internal/config"
)

var (
	// ErrNotConfigured means ADMIN_PASSWORD is unset, so admin login is
	// disabled entirely.
	ErrNotConfigured = errors.New("admin_auth_not_configured")
	// ErrInvalidCredentials means the supplied password does not match.
	ErrInvalidCredentials = errors.New("invalid_credentials")
	// ErrUnauthorized means the request carries no valid session.
	ErrUnauthorized = errors.New("unauthorized")
)

// Service handles admin login and per-request session checks.
type Service struct {
	cfg     config.Config
	issuer  *token.Issuer
	session *session.Manager
}

func NewService(cfg config.Config, issuer *token.Issuer, mgr *session.Manager) *Service {
	return &Service{cfg: cfg, issuer: issuer, session: mgr}
}

func (s *Service) Session() *session.Manager {
	return s.session
}

// Login checks the password and returns a fresh session token.
func (s *Service) Login(password string) (string, time.Time, error) {
	if !s.cfg.AdminPasswordConfigured() {
		return "", time.Time{}, ErrNotConfigured
	}
	expected := s.cfg.AdminPassword
	if len(password) != len(expected) ||
		subtle.ConstantTimeCompare([]byte(password), []byte(expected)) != 1 {
		return "", time.Time{}, ErrInvalidCredentials
	}

	tok, expiresAt := s.issuer.Issue()
	return tok, expiresAt, nil
}

// Authenticated reports whether the request carries a valid session cookie.
func (s *Service) Authenticated(c *gin.Context) bool {
	tok, ok := s.session.ReadToken(c)
	if !ok {
		return false
	}
	return s.issuer.Verify(tok)
}

var Module = fx.Module("auth",
	fx.Provide(
		token.NewIssuer,
		session.NewManager,
		NewService,
	),
)
