package ports

import (
	"context"

	"github.com/finzzup/portal-api/internal/core/domain"
)

// CreateClientInput carries a new client account. An empty invite code asks
// the service to generate one from the company name.
type CreateClientInput struct {
	Name       string
	Company    string
	Email      string
	InviteCode string
	Plan       domain.Plan
	Service    domain.Service
}

// WorkspaceResult is everything the admin console needs after selecting a
// client: the latest KPI snapshot, all action items, and the engagement.
// Absent rows come back nil or empty, never as errors.
type WorkspaceResult struct {
	Client     *domain.Client
	KPI        *domain.KPISnapshot
	Actions    []domain.ActionItem
	Engagement *domain.Engagement
}

// SaveKPIInput carries a KPI form save. A known ID updates in place; an
// empty ID inserts and the caller adopts the returned ID.
type SaveKPIInput struct {
	ID          string
	Month       string
	Revenue     string
	GrossMargin string
	CashBalance string
	BurnRate    string
	Runway      string
	ARR         string
	Note        string
}

// AddActionInput carries a new action item.
type AddActionInput struct {
	Text     string
	Priority string
	Month    string
}

// SaveEngagementInput carries an engagement form save.
type SaveEngagementInput struct {
	Type         string
	RefNumber    string
	Status       int
	ExpectedDate string
	Note         string
}

// AdminService implements the admin console operations.
type AdminService interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	CreateClient(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	Workspace(ctx context.Context, clientID string) (*WorkspaceResult, error)
	SaveKPI(ctx context.Context, clientID string, input SaveKPIInput) (*domain.KPISnapshot, error)
	AddAction(ctx context.Context, clientID string, input AddActionInput) (*domain.ActionItem, error)
	ToggleAction(ctx context.Context, actionID string) (*domain.ActionItem, error)
	DeleteAction(ctx context.Context, actionID string) error
	SaveEngagement(ctx context.Context, clientID string, input SaveEngagementInput) (*domain.Engagement, error)
}
