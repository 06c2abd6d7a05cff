package ports

import (
	"context"

	"github.com/finzzup/portal-api/internal/core/domain"
)

// KPIRepository persists monthly KPI snapshots.
type KPIRepository interface {
	// Latest returns the most recently updated snapshot for a client, or
	// domain.ErrKPINotFound when none exists.
	Latest(ctx context.Context, clientID string) (*domain.KPISnapshot, error)
	// Upsert updates the snapshot when its ID is set, otherwise inserts a
	// new one. The returned snapshot always carries the stored ID.
	Upsert(ctx context.Context, snap *domain.KPISnapshot) (*domain.KPISnapshot, error)
}

// ActionRepository persists client action items.
type ActionRepository interface {
	// ListByClient returns items newest first.
	ListByClient(ctx context.Context, clientID string) ([]domain.ActionItem, error)
	Create(ctx context.Context, item *domain.ActionItem) (*domain.ActionItem, error)
	FindByID(ctx context.Context, id string) (*domain.ActionItem, error)
	SetDone(ctx context.Context, id string, done bool) error
	Delete(ctx context.Context, id string) error
}

// EngagementRepository persists the per-client engagement singleton.
type EngagementRepository interface {
	FindByClient(ctx context.Context, clientID string) (*domain.Engagement, error)
	Upsert(ctx context.Context, eng *domain.Engagement) (*domain.Engagement, error)
}
