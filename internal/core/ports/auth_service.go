package ports

import (
	"context"
	"time"

	"github.com/finzzup/portal-api/internal/core/domain"
)

// RegisterInput carries a first-time registration. The confirm field is
// checked before any store access.
type RegisterInput struct {
	InviteCode      string
	Email           string
	Password        string
	ConfirmPassword string
}

// AuthResult is returned on successful sign-in or registration. Exactly one
// of Client or Admin is set, matching the surface the token was issued for.
type AuthResult struct {
	Token  string
	Client *domain.Client
	Admin  *domain.Admin
}

// SessionResult describes the identity behind a restored token. A valid
// token whose email maps to no row on the requested surface yields
// Authenticated false with no error.
type SessionResult struct {
	Authenticated bool
	Email         string
	Client        *domain.Client
	Admin         *domain.Admin
}

// AuthService implements the invite gate and the credential flow for both
// surfaces.
type AuthService interface {
	ResolveInvite(ctx context.Context, code string) (*domain.Client, error)
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	LoginClient(ctx context.Context, email, password string) (*AuthResult, error)
	LoginAdmin(ctx context.Context, email, password string) (*AuthResult, error)
	RestoreSession(ctx context.Context, email, surface string) (*SessionResult, error)
	Logout(ctx context.Context, jti string, remaining time.Duration) error
}
