package ports

import (
	"context"

	"github.com/finzzup/portal-api/internal/core/domain"
)

// DashboardResult is the client landing page: the metric cards plus the
// latest stored snapshot when the admin team has published one.
type DashboardResult struct {
	Client   *domain.Client
	Cards    []domain.KPICard
	Snapshot *domain.KPISnapshot
}

// CashflowResult is the cash flow page content.
type CashflowResult struct {
	Series   []domain.CashflowPoint
	Forecast []domain.CashflowLine
	Alert    string
}

// EngagementResult is the valuation status page content.
type EngagementResult struct {
	Engagement domain.Engagement
	Stages     []string
	Progress   float64
	Documents  []domain.ChecklistItem
}

// PortalService serves the client-facing pages. Every method takes the
// authenticated client's ID; data belonging to other clients is never
// reachable through it.
type PortalService interface {
	Navigation(ctx context.Context, clientID string) ([]domain.NavEntry, error)
	Dashboard(ctx context.Context, clientID string) (*DashboardResult, error)
	Cashflow(ctx context.Context, clientID string) (*CashflowResult, error)
	Actions(ctx context.Context, clientID string) ([]domain.ActionItem, error)
	ToggleAction(ctx context.Context, clientID, actionID string) (*domain.ActionItem, error)
	Report(ctx context.Context, clientID string) (*domain.ReportPack, error)
	Engagement(ctx context.Context, clientID string) (*EngagementResult, error)
}
