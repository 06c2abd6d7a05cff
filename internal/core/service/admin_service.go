package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/finzzup/portal-api/internal/api/metrics"
	"github.com/finzzup/portal-api/internal/core/domain"
	"github.com/finzzup/portal-api/internal/core/ports"
)

// AdminService implements the admin console operations.
type AdminService struct {
	clients     ports.ClientRepository
	kpis        ports.KPIRepository
	actions     ports.ActionRepository
	engagements ports.EngagementRepository
	logger      zerolog.Logger
	now         func() time.Time
}

func NewAdminService(
	clients ports.ClientRepository,
	kpis ports.KPIRepository,
	actions ports.ActionRepository,
	engagements ports.EngagementRepository,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{
		clients:     clients,
		kpis:        kpis,
		actions:     actions,
		engagements: engagements,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *AdminService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clients.List(ctx)
}

// CreateClient provisions a portal account. The invite code is uppercased,
// or generated from the company name when omitted. New accounts start
// active.
func (s *AdminService) CreateClient(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	code := domain.NormalizeInviteCode(input.InviteCode)
	if code == "" {
		code = domain.GenerateInviteCode(input.Company, s.now())
	}

	plan := input.Plan
	if !plan.Valid() {
		plan = domain.PlanStartup
	}
	svc := input.Service
	if !svc.Valid() {
		svc = domain.ServiceBoth
	}

	client := &domain.Client{
		Name:       input.Name,
		Company:    input.Company,
		Email:      input.Email,
		InviteCode: code,
		Plan:       plan,
		Service:    svc,
		Active:     true,
		CreatedAt:  s.now(),
	}

	created, err := s.clients.Create(ctx, client)
	if err != nil {
		return nil, err
	}

	metrics.AdminSavesTotal.WithLabelValues("client").Inc()
	s.logger.Info().Str("client_id", created.ID).Str("invite_code", created.InviteCode).Msg("client created")
	return created, nil
}

// Workspace loads everything for a selected client in three independent
// reads. Absent rows come back nil or empty so a fresh client renders as
// blank forms, never as an error.
func (s *AdminService) Workspace(ctx context.Context, clientID string) (*ports.WorkspaceResult, error) {
	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	result := &ports.WorkspaceResult{Client: client, Actions: []domain.ActionItem{}}

	if snap, err := s.kpis.Latest(ctx, clientID); err == nil {
		result.KPI = snap
	} else if err != domain.ErrKPINotFound {
		s.logger.Error().Err(err).Str("client_id", clientID).Msg("workspace kpi load failed")
	}

	if items, err := s.actions.ListByClient(ctx, clientID); err == nil {
		result.Actions = items
	} else {
		s.logger.Error().Err(err).Str("client_id", clientID).Msg("workspace actions load failed")
	}

	if eng, err := s.engagements.FindByClient(ctx, clientID); err == nil {
		result.Engagement = eng
	} else if err != domain.ErrEngagementNotFound {
		s.logger.Error().Err(err).Str("client_id", clientID).Msg("workspace engagement load failed")
	}

	return result, nil
}

// SaveKPI upserts the month's snapshot. A known ID updates in place; an
// empty ID inserts, and the returned snapshot carries the adopted ID so
// repeated saves keep a single row.
func (s *AdminService) SaveKPI(ctx context.Context, clientID string, input ports.SaveKPIInput) (*domain.KPISnapshot, error) {
	if _, err := s.clients.FindByID(ctx, clientID); err != nil {
		return nil, err
	}

	snap := &domain.KPISnapshot{
		ID:          input.ID,
		ClientID:    clientID,
		Month:       input.Month,
		Revenue:     input.Revenue,
		GrossMargin: input.GrossMargin,
		CashBalance: input.CashBalance,
		BurnRate:    input.BurnRate,
		Runway:      input.Runway,
		ARR:         input.ARR,
		Note:        input.Note,
		UpdatedAt:   s.now(),
	}

	saved, err := s.kpis.Upsert(ctx, snap)
	if err != nil {
		return nil, err
	}

	metrics.AdminSavesTotal.WithLabelValues("kpi").Inc()
	s.logger.Info().Str("client_id", clientID).Str("kpi_id", saved.ID).Str("month", saved.Month).Msg("kpi saved")
	return saved, nil
}

func (s *AdminService) AddAction(ctx context.Context, clientID string, input ports.AddActionInput) (*domain.ActionItem, error) {
	if _, err := s.clients.FindByID(ctx, clientID); err != nil {
		return nil, err
	}

	priority := input.Priority
	if !domain.ValidPriority(priority) {
		priority = domain.PriorityMedium
	}

	item := &domain.ActionItem{
		ClientID:  clientID,
		Text:      input.Text,
		Priority:  priority,
		Month:     input.Month,
		CreatedAt: s.now(),
	}

	created, err := s.actions.Create(ctx, item)
	if err != nil {
		return nil, err
	}

	metrics.AdminSavesTotal.WithLabelValues("action").Inc()
	s.logger.Info().Str("client_id", clientID).Str("action_id", created.ID).Msg("action added")
	return created, nil
}

func (s *AdminService) ToggleAction(ctx context.Context, actionID string) (*domain.ActionItem, error) {
	item, err := s.actions.FindByID(ctx, actionID)
	if err != nil {
		return nil, err
	}

	if err := s.actions.SetDone(ctx, actionID, !item.Done); err != nil {
		return nil, err
	}
	item.Done = !item.Done
	return item, nil
}

func (s *AdminService) DeleteAction(ctx context.Context, actionID string) error {
	if _, err := s.actions.FindByID(ctx, actionID); err != nil {
		return err
	}
	if err := s.actions.Delete(ctx, actionID); err != nil {
		return err
	}
	s.logger.Info().Str("action_id", actionID).Msg("action deleted")
	return nil
}

// SaveEngagement upserts the client's engagement singleton.
func (s *AdminService) SaveEngagement(ctx context.Context, clientID string, input ports.SaveEngagementInput) (*domain.Engagement, error) {
	if _, err := s.clients.FindByID(ctx, clientID); err != nil {
		return nil, err
	}

	status := input.Status
	if status < 0 {
		status = 0
	}
	if last := len(domain.EngagementStages) - 1; status > last {
		status = last
	}

	eng := &domain.Engagement{
		ClientID:     clientID,
		Type:         input.Type,
		RefNumber:    input.RefNumber,
		Status:       status,
		ExpectedDate: input.ExpectedDate,
		Note:         input.Note,
	}

	saved, err := s.engagements.Upsert(ctx, eng)
	if err != nil {
		return nil, err
	}

	metrics.AdminSavesTotal.WithLabelValues("engagement").Inc()
	s.logger.Info().Str("client_id", clientID).Str("engagement_id", saved.ID).Int("status", saved.Status).Msg("engagement saved")
	return saved, nil
}
