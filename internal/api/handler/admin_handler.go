package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/finzzup/portal-api/internal/core/domain"
	"github.com/finzzup/portal-api/internal/core/ports"
)

// AdminHandler serves the operator console: client provisioning and CRUD
// over every client's published rows.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListClients handles GET /v1/admin/clients.
//
// @Summary      List all client accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  clientListResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/clients [get]
func (h *AdminHandler) ListClients(c echo.Context) error {
	clients, err := h.service.ListClients(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clientListResponse{Clients: clients})
}

// CreateClient handles POST /v1/admin/clients.
//
// @Summary      Provision a new client account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/admin/clients [post]
func (h *AdminHandler) CreateClient(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.service.CreateClient(c.Request().Context(), ports.CreateClientInput{
		Name:       req.Name,
		Company:    req.Company,
		Email:      req.Email,
		InviteCode: req.InviteCode,
		Plan:       domain.Plan(req.Plan),
		Service:    domain.Service(req.Service),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, client)
}

// Workspace handles GET /v1/admin/clients/:id/workspace.
//
// @Summary      Everything stored for one client
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  workspaceResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/clients/{id}/workspace [get]
func (h *AdminHandler) Workspace(c echo.Context) error {
	result, err := h.service.Workspace(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, workspaceResponse{
		Client:     result.Client,
		KPI:        result.KPI,
		Actions:    result.Actions,
		Engagement: result.Engagement,
	})
}

// SaveKPI handles PUT /v1/admin/clients/:id/kpis.
//
// @Summary      Insert or update a KPI snapshot
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Client ID"
// @Param        body  body      saveKPIRequest true  "Snapshot fields"
// @Success      200   {object}  domain.KPISnapshot
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/admin/clients/{id}/kpis [put]
func (h *AdminHandler) SaveKPI(c echo.Context) error {
	var req saveKPIRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	snapshot, err := h.service.SaveKPI(c.Request().Context(), c.Param("id"), ports.SaveKPIInput{
		ID:          req.ID,
		Month:       req.Month,
		Revenue:     req.Revenue,
		GrossMargin: req.GrossMargin,
		CashBalance: req.CashBalance,
		BurnRate:    req.BurnRate,
		Runway:      req.Runway,
		ARR:         req.ARR,
		Note:        req.Note,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, snapshot)
}

// AddAction handles POST /v1/admin/clients/:id/actions.
//
// @Summary      Add an action item for a client
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Client ID"
// @Param        body  body      addActionRequest  true  "Action item"
// @Success      201   {object}  domain.ActionItem
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/admin/clients/{id}/actions [post]
func (h *AdminHandler) AddAction(c echo.Context) error {
	var req addActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.AddAction(c.Request().Context(), c.Param("id"), ports.AddActionInput{
		Text:     req.Text,
		Priority: req.Priority,
		Month:    req.Month,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, item)
}

// ToggleAction handles POST /v1/admin/actions/:id/toggle.
//
// @Summary      Toggle any action item's done state
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Action item ID"
// @Success      200  {object}  domain.ActionItem
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/actions/{id}/toggle [post]
func (h *AdminHandler) ToggleAction(c echo.Context) error {
	item, err := h.service.ToggleAction(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteAction handles DELETE /v1/admin/actions/:id.
//
// @Summary      Delete an action item
// @Tags         admin
// @Security     BearerAuth
// @Param        id   path      string  true  "Action item ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/actions/{id} [delete]
func (h *AdminHandler) DeleteAction(c echo.Context) error {
	if err := h.service.DeleteAction(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SaveEngagement handles PUT /v1/admin/clients/:id/engagement.
//
// @Summary      Insert or update a client's engagement
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Client ID"
// @Param        body  body      saveEngagementRequest  true  "Engagement fields"
// @Success      200   {object}  domain.Engagement
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/admin/clients/{id}/engagement [put]
func (h *AdminHandler) SaveEngagement(c echo.Context) error {
	var req saveEngagementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	eng, err := h.service.SaveEngagement(c.Request().Context(), c.Param("id"), ports.SaveEngagementInput{
		Type:         req.Type,
		RefNumber:    req.RefNumber,
		Status:       req.Status,
		ExpectedDate: req.ExpectedDate,
		Note:         req.Note,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, eng)
}
