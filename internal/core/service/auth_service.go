package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/finzzup/portal-api/internal/api/metrics"
	"github.com/finzzup/portal-api/internal/core/domain"
	"github.com/finzzup/portal-api/internal/core/ports"
)

const minPasswordLen = 6

// AuthService implements the invite gate and the credential flow. Tokens are
// stateless HS256 JWTs; authorization is re-derived from the clients and
// admins tables on every restore, never trusted from the token beyond the
// role hint.
type AuthService struct {
	clients     ports.ClientRepository
	admins      ports.AdminRepository
	credentials ports.CredentialRepository
	revoker     ports.SessionRevoker
	jwtSecret   string
	tokenTTL    time.Duration
	logger      zerolog.Logger
}

func NewAuthService(
	clients ports.ClientRepository,
	admins ports.AdminRepository,
	credentials ports.CredentialRepository,
	revoker ports.SessionRevoker,
	jwtSecret string,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		clients:     clients,
		admins:      admins,
		credentials: credentials,
		revoker:     revoker,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		logger:      logger,
	}
}

// ResolveInvite normalizes the code and matches it against active clients.
// Misses and inactive accounts are indistinguishable from the caller's side.
func (s *AuthService) ResolveInvite(ctx context.Context, code string) (*domain.Client, error) {
	code = domain.NormalizeInviteCode(code)
	if code == "" {
		metrics.InviteChecksTotal.WithLabelValues("invalid").Inc()
		return nil, domain.ErrInvalidInviteCode
	}

	client, err := s.clients.FindActiveByInviteCode(ctx, code)
	if err != nil {
		metrics.InviteChecksTotal.WithLabelValues("invalid").Inc()
		if err != domain.ErrClientNotFound {
			s.logger.Error().Err(err).Str("code", code).Msg("invite lookup failed")
		}
		return nil, domain.ErrInvalidInviteCode
	}

	metrics.InviteChecksTotal.WithLabelValues("ok").Inc()
	return client, nil
}

// Register creates a credential for an invited client. Password checks run
// before any store access so a bad confirm never costs a round trip.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if len(input.Password) < minPasswordLen {
		return nil, domain.ErrPasswordTooShort
	}
	if input.Password != input.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}

	client, err := s.ResolveInvite(ctx, input.InviteCode)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	cred := &domain.Credential{
		Email:        input.Email,
		PasswordHash: string(hash),
		ClientID:     client.ID,
		InviteCode:   client.InviteCode,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.credentials.Create(ctx, cred); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	token, err := s.generateToken(input.Email, domain.RoleClient, client.ID)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("ok").Inc()
	s.logger.Info().Str("client_id", client.ID).Str("invite_code", client.InviteCode).Msg("client registered")

	return &ports.AuthResult{Token: token, Client: client}, nil
}

// LoginClient authenticates against the credential store, then maps the
// email to a client account. Every credential failure collapses to the same
// generic error; a valid credential with no client row is reported
// distinctly and gets no token.
func (s *AuthService) LoginClient(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if err := s.checkPassword(ctx, email, password); err != nil {
		metrics.SignInsTotal.WithLabelValues("client", "denied").Inc()
		return nil, err
	}

	client, err := s.clients.FindByEmail(ctx, email)
	if err != nil {
		metrics.SignInsTotal.WithLabelValues("client", "unmapped").Inc()
		if err != domain.ErrClientNotFound {
			s.logger.Error().Err(err).Msg("client lookup failed after sign-in")
		}
		return nil, domain.ErrAccountNotFound
	}

	token, err := s.generateToken(email, domain.RoleClient, client.ID)
	if err != nil {
		return nil, err
	}

	metrics.SignInsTotal.WithLabelValues("client", "ok").Inc()
	s.logger.Info().Str("client_id", client.ID).Msg("client signed in")

	return &ports.AuthResult{Token: token, Client: client}, nil
}

// LoginAdmin authenticates against the credential store, then requires an
// admins row. Valid credentials without one are rejected and no token is
// issued.
func (s *AuthService) LoginAdmin(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if err := s.checkPassword(ctx, email, password); err != nil {
		metrics.SignInsTotal.WithLabelValues("admin", "denied").Inc()
		return nil, err
	}

	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		metrics.SignInsTotal.WithLabelValues("admin", "unmapped").Inc()
		if err != domain.ErrAccountNotFound {
			s.logger.Error().Err(err).Msg("admin lookup failed after sign-in")
		}
		return nil, domain.ErrNotAuthorized
	}

	token, err := s.generateToken(email, domain.RoleAdmin, "")
	if err != nil {
		return nil, err
	}

	metrics.SignInsTotal.WithLabelValues("admin", "ok").Inc()
	s.logger.Info().Str("admin_id", admin.ID).Msg("admin signed in")

	return &ports.AuthResult{Token: token, Admin: admin}, nil
}

// RestoreSession maps a token email to an identity on the requested surface.
// An unmapped email is not an error: the caller simply stays on the login
// screen. The same token can resolve on one surface and not the other.
func (s *AuthService) RestoreSession(ctx context.Context, email, surface string) (*ports.SessionResult, error) {
	switch surface {
	case "admin":
		admin, err := s.admins.FindByEmail(ctx, email)
		if err != nil {
			if err != domain.ErrAccountNotFound {
				s.logger.Error().Err(err).Msg("admin session restore failed")
			}
			return &ports.SessionResult{Email: email}, nil
		}
		return &ports.SessionResult{Authenticated: true, Email: email, Admin: admin}, nil
	case "client":
		client, err := s.clients.FindByEmail(ctx, email)
		if err != nil {
			if err != domain.ErrClientNotFound {
				s.logger.Error().Err(err).Msg("client session restore failed")
			}
			return &ports.SessionResult{Email: email}, nil
		}
		return &ports.SessionResult{Authenticated: true, Email: email, Client: client}, nil
	default:
		return &ports.SessionResult{Email: email}, nil
	}
}

// Logout revokes the token until its natural expiry. Revocation failures are
// logged but never surfaced: the caller clears local state regardless.
func (s *AuthService) Logout(ctx context.Context, jti string, remaining time.Duration) error {
	if jti == "" {
		return nil
	}
	if remaining <= 0 {
		remaining = time.Minute
	}
	if err := s.revoker.Revoke(ctx, jti, remaining); err != nil {
		s.logger.Error().Err(err).Str("jti", jti).Msg("session revocation failed")
		return nil
	}
	metrics.SessionsRevokedTotal.Inc()
	return nil
}

func (s *AuthService) checkPassword(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return domain.ErrInvalidCredentials
	}

	cred, err := s.credentials.FindByEmail(ctx, email)
	if err != nil {
		if err != domain.ErrAccountNotFound {
			s.logger.Error().Err(err).Msg("credential lookup failed")
		}
		return domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}

func (s *AuthService) generateToken(email, role, clientID string) (string, error) {
	claims := jwt.MapClaims{
		"email":     email,
		"role":      role,
		"client_id": clientID,
		"jti":       newSessionID(),
		"exp":       time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// newSessionID returns a random token identifier used for revocation.
func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
