package ports

import (
	"context"

	"github.com/finzzup/portal-api/internal/core/domain"
)

// ClientRepository persists portal client accounts.
type ClientRepository interface {
	// FindActiveByInviteCode matches active clients only; inactive codes
	// behave like unknown ones.
	FindActiveByInviteCode(ctx context.Context, code string) (*domain.Client, error)
	FindByEmail(ctx context.Context, email string) (*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
}

// AdminRepository reads back-office operator rows.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
}

// CredentialRepository persists login credentials.
type CredentialRepository interface {
	Create(ctx context.Context, cred *domain.Credential) (*domain.Credential, error)
	FindByEmail(ctx context.Context, email string) (*domain.Credential, error)
}
