package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	handlerpkg "github.com/finzzup/portal-api/internal/api/handler"
	"github.com/finzzup/portal-api/internal/core/domain"
	"github.com/finzzup/portal-api/internal/core/ports"
)

type stubPortalService struct {
	navigationFn   func(ctx context.Context, clientID string) ([]domain.NavEntry, error)
	dashboardFn    func(ctx context.Context, clientID string) (*ports.DashboardResult, error)
	cashflowFn     func(ctx context.Context, clientID string) (*ports.CashflowResult, error)
	actionsFn      func(ctx context.Context, clientID string) ([]domain.ActionItem, error)
	toggleActionFn func(ctx context.Context, clientID, actionID string) (*domain.ActionItem, error)
	reportFn       func(ctx context.Context, clientID string) (*domain.ReportPack, error)
	engagementFn   func(ctx context.Context, clientID string) (*ports.EngagementResult, error)
}

func (s *stubPortalService) Navigation(ctx context.Context, clientID string) ([]domain.NavEntry, error) {
	return s.navigationFn(ctx, clientID)
}

func (s *stubPortalService) Dashboard(ctx context.Context, clientID string) (*ports.DashboardResult, error) {
	return s.dashboardFn(ctx, clientID)
}

func (s *stubPortalService) Cashflow(ctx context.Context, clientID string) (*ports.CashflowResult, error) {
	return s.cashflowFn(ctx, clientID)
}

func (s *stubPortalService) Actions(ctx context.Context, clientID string) ([]domain.ActionItem, error) {
	return s.actionsFn(ctx, clientID)
}

func (s *stubPortalService) ToggleAction(ctx context.Context, clientID, actionID string) (*domain.ActionItem, error) {
	return s.toggleActionFn(ctx, clientID, actionID)
}

func (s *stubPortalService) Report(ctx context.Context, clientID string) (*domain.ReportPack, error) {
	return s.reportFn(ctx, clientID)
}

func (s *stubPortalService) Engagement(ctx context.Context, clientID string) (*ports.EngagementResult, error) {
	return s.engagementFn(ctx, clientID)
}

func newPortalContext(e *echo.Echo, method, path string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("role", domain.RoleClient)
	c.Set("client_id", "client_1")
	return c, rec
}

func TestPortalHandler_Navigation(t *testing.T) {
	e := newTestEcho()
	stub := &stubPortalService{
		navigationFn: func(ctx context.Context, clientID string) ([]domain.NavEntry, error) {
			if clientID != "client_1" {
				t.Fatalf("unexpected client: %s", clientID)
			}
			return []domain.NavEntry{
				{ID: "dashboard", Icon: "📈", Label: "Dashboard"},
				{ID: "calendar", Icon: "📅", Label: "Book a Call"},
			}, nil
		},
	}
	handler := handlerpkg.NewPortalHandler(stub)

	c, rec := newPortalContext(e, http.MethodGet, "/v1/portal/navigation")
	if err := handler.Navigation(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp handlerpkg.NavigationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Entries) != 2 || resp.Entries[0].ID != "dashboard" {
		t.Fatalf("unexpected entries: %+v", resp.Entries)
	}
}

func TestPortalHandler_Navigation_MissingClientID(t *testing.T) {
	e := newTestEcho()
	handler := handlerpkg.NewPortalHandler(&stubPortalService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/portal/navigation", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("role", domain.RoleClient)

	if err := handler.Navigation(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestPortalHandler_Dashboard(t *testing.T) {
	e := newTestEcho()
	stub := &stubPortalService{
		dashboardFn: func(ctx context.Context, clientID string) (*ports.DashboardResult, error) {
			return &ports.DashboardResult{
				Client: &domain.Client{ID: clientID, Company: "Gupta Exports", Plan: domain.PlanMSME},
				Cards:  domain.DemoKPICards(),
			}, nil
		},
	}
	handler := handlerpkg.NewPortalHandler(stub)

	c, rec := newPortalContext(e, http.MethodGet, "/v1/portal/dashboard")
	if err := handler.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["title"] != "Dashboard" {
		t.Fatalf("expected title Dashboard, got %v", resp["title"])
	}
	if _, ok := resp["snapshot"]; ok {
		t.Fatalf("snapshot should be omitted when absent")
	}
}

func TestPortalHandler_ToggleAction_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubPortalService{
		toggleActionFn: func(ctx context.Context, clientID, actionID string) (*domain.ActionItem, error) {
			return nil, domain.ErrActionNotFound
		},
	}
	handler := handlerpkg.NewPortalHandler(stub)

	c, rec := newPortalContext(e, http.MethodPost, "/v1/portal/actions/x/toggle")
	c.SetParamNames("id")
	c.SetParamValues("x")

	if err := handler.ToggleAction(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPortalHandler_Engagement(t *testing.T) {
	e := newTestEcho()
	stub := &stubPortalService{
		engagementFn: func(ctx context.Context, clientID string) (*ports.EngagementResult, error) {
			eng := domain.DemoEngagement()
			eng.ClientID = clientID
			return &ports.EngagementResult{
				Engagement: eng,
				Stages:     domain.EngagementStages,
				Progress:   eng.Progress(),
				Documents:  domain.DemoEngagementDocs(),
			}, nil
		},
	}
	handler := handlerpkg.NewPortalHandler(stub)

	c, rec := newPortalContext(e, http.MethodGet, "/v1/portal/engagement")
	if err := handler.Engagement(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["progress"] != float64(40) {
		t.Fatalf("expected progress 40, got %v", resp["progress"])
	}
	if resp["stage"] != "Analysis" {
		t.Fatalf("expected stage Analysis, got %v", resp["stage"])
	}
}

func TestPortalHandler_Report(t *testing.T) {
	e := newTestEcho()
	stub := &stubPortalService{
		reportFn: func(ctx context.Context, clientID string) (*domain.ReportPack, error) {
			pack := domain.ReportPackFor(domain.PlanCorporate)
			return &pack, nil
		},
	}
	handler := handlerpkg.NewPortalHandler(stub)

	c, rec := newPortalContext(e, http.MethodGet, "/v1/portal/report")
	if err := handler.Report(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["score_name"] != "ipo_score" {
		t.Fatalf("expected ipo_score, got %v", resp["score_name"])
	}
}
