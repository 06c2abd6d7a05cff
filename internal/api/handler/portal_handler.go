package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/finzzup/portal-api/internal/core/domain"
	"github.com/finzzup/portal-api/internal/core/ports"
)

// PortalHandler serves the client-facing pages. The client identity comes
// exclusively from the token; no route accepts a client ID parameter.
type PortalHandler struct {
	service ports.PortalService
}

func NewPortalHandler(service ports.PortalService) *PortalHandler {
	return &PortalHandler{service: service}
}

// Navigation handles GET /v1/portal/navigation.
//
// @Summary      Sidebar entries for the signed-in client
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  navigationResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/portal/navigation [get]
func (h *PortalHandler) Navigation(c echo.Context) error {
	_, clientID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	entries, err := h.service.Navigation(c.Request().Context(), clientID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, navigationResponse{Entries: entries})
}

// Dashboard handles GET /v1/portal/dashboard.
//
// @Summary      Dashboard content for the signed-in client
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/portal/dashboard [get]
func (h *PortalHandler) Dashboard(c echo.Context) error {
	_, clientID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	result, err := h.service.Dashboard(c.Request().Context(), clientID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		Client:   result.Client,
		Title:    domain.PageTitle("dashboard", result.Client.Plan),
		Cards:    result.Cards,
		Snapshot: result.Snapshot,
	})
}

// Cashflow handles GET /v1/portal/cashflow.
//
// @Summary      Cash flow page content
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  cashflowResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/portal/cashflow [get]
func (h *PortalHandler) Cashflow(c echo.Context) error {
	_, clientID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	result, err := h.service.Cashflow(c.Request().Context(), clientID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cashflowResponse{
		Series:   result.Series,
		Forecast: result.Forecast,
		Alert:    result.Alert,
	})
}

// Actions handles GET /v1/portal/actions.
//
// @Summary      Action items for the signed-in client
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  actionListResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/portal/actions [get]
func (h *PortalHandler) Actions(c echo.Context) error {
	_, clientID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	items, err := h.service.Actions(c.Request().Context(), clientID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, actionListResponse{Items: items})
}

// ToggleAction handles POST /v1/portal/actions/:id/toggle.
//
// @Summary      Toggle an action item's done state
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Action item ID"
// @Success      200  {object}  domain.ActionItem
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/portal/actions/{id}/toggle [post]
func (h *PortalHandler) ToggleAction(c echo.Context) error {
	_, clientID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	item, err := h.service.ToggleAction(c.Request().Context(), clientID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, item)
}

// Report handles GET /v1/portal/report.
//
// @Summary      Report pack for the signed-in client's plan
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.ReportPack
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/portal/report [get]
func (h *PortalHandler) Report(c echo.Context) error {
	_, clientID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	pack, err := h.service.Report(c.Request().Context(), clientID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pack)
}

// Engagement handles GET /v1/portal/engagement.
//
// @Summary      Valuation engagement status
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  engagementResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/portal/engagement [get]
func (h *PortalHandler) Engagement(c echo.Context) error {
	_, clientID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	result, err := h.service.Engagement(c.Request().Context(), clientID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, engagementResponse{
		Engagement: result.Engagement,
		Stages:     result.Stages,
		Stage:      result.Engagement.StageName(),
		Progress:   result.Progress,
		Documents:  result.Documents,
	})
}
