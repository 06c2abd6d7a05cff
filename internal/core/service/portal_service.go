package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/finzzup/portal-api/internal/core/domain"
	"github.com/finzzup/portal-api/internal/core/ports"
)

// PortalService serves the client-facing pages. Pages without stored rows
// fall back to the demo fixtures so freshly invited clients see a populated
// portal from the first sign-in.
type PortalService struct {
	clients     ports.ClientRepository
	kpis        ports.KPIRepository
	actions     ports.ActionRepository
	engagements ports.EngagementRepository
	logger      zerolog.Logger
}

func NewPortalService(
	clients ports.ClientRepository,
	kpis ports.KPIRepository,
	actions ports.ActionRepository,
	engagements ports.EngagementRepository,
	logger zerolog.Logger,
) *PortalService {
	return &PortalService{
		clients:     clients,
		kpis:        kpis,
		actions:     actions,
		engagements: engagements,
		logger:      logger,
	}
}

func (s *PortalService) client(ctx context.Context, clientID string) (*domain.Client, error) {
	if clientID == "" {
		return nil, domain.ErrClientNotFound
	}
	return s.clients.FindByID(ctx, clientID)
}

// Navigation returns the sidebar derived from the client's plan and services.
func (s *PortalService) Navigation(ctx context.Context, clientID string) ([]domain.NavEntry, error) {
	client, err := s.client(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return domain.Navigation(client.Plan, client.Service), nil
}

// Dashboard returns the landing page. The snapshot is nil until the admin
// team publishes one; the metric cards render either way.
func (s *PortalService) Dashboard(ctx context.Context, clientID string) (*ports.DashboardResult, error) {
	client, err := s.client(ctx, clientID)
	if err != nil {
		return nil, err
	}

	result := &ports.DashboardResult{
		Client: client,
		Cards:  domain.DemoKPICards(),
	}

	snap, err := s.kpis.Latest(ctx, clientID)
	if err != nil {
		if err != domain.ErrKPINotFound {
			s.logger.Error().Err(err).Str("client_id", clientID).Msg("latest kpi lookup failed")
		}
		return result, nil
	}
	result.Snapshot = snap
	return result, nil
}

func (s *PortalService) Cashflow(ctx context.Context, clientID string) (*ports.CashflowResult, error) {
	if _, err := s.client(ctx, clientID); err != nil {
		return nil, err
	}
	return &ports.CashflowResult{
		Series:   domain.DemoCashflow(),
		Forecast: domain.DemoCashflowForecast(),
		Alert:    domain.DemoCashflowAlert,
	}, nil
}

// Actions lists the client's items newest first, falling back to the demo
// list when none have been assigned yet.
func (s *PortalService) Actions(ctx context.Context, clientID string) ([]domain.ActionItem, error) {
	if _, err := s.client(ctx, clientID); err != nil {
		return nil, err
	}

	items, err := s.actions.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return domain.DemoActions(), nil
	}
	return items, nil
}

// ToggleAction flips the done flag on one of the client's own items. Items
// belonging to other clients are reported as missing, not forbidden.
func (s *PortalService) ToggleAction(ctx context.Context, clientID, actionID string) (*domain.ActionItem, error) {
	item, err := s.actions.FindByID(ctx, actionID)
	if err != nil {
		return nil, err
	}
	if item.ClientID != clientID {
		return nil, domain.ErrActionNotFound
	}

	if err := s.actions.SetDone(ctx, actionID, !item.Done); err != nil {
		return nil, err
	}
	item.Done = !item.Done

	s.logger.Info().Str("client_id", clientID).Str("action_id", actionID).Bool("done", item.Done).Msg("action toggled")
	return item, nil
}

// Report returns the plan-driven report pack.
func (s *PortalService) Report(ctx context.Context, clientID string) (*domain.ReportPack, error) {
	client, err := s.client(ctx, clientID)
	if err != nil {
		return nil, err
	}
	pack := domain.ReportPackFor(client.Plan)
	return &pack, nil
}

// Engagement returns the valuation status page, with the demo engagement as
// placeholder until one is recorded.
func (s *PortalService) Engagement(ctx context.Context, clientID string) (*ports.EngagementResult, error) {
	if _, err := s.client(ctx, clientID); err != nil {
		return nil, err
	}

	eng, err := s.engagements.FindByClient(ctx, clientID)
	if err != nil {
		if err != domain.ErrEngagementNotFound {
			return nil, err
		}
		demo := domain.DemoEngagement()
		demo.ClientID = clientID
		eng = &demo
	}

	return &ports.EngagementResult{
		Engagement: *eng,
		Stages:     domain.EngagementStages,
		Progress:   eng.Progress(),
		Documents:  domain.DemoEngagementDocs(),
	}, nil
}
