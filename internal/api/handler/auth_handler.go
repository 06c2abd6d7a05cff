package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/finzzup/portal-api/internal/core/domain"
	"github.com/finzzup/portal-api/internal/core/ports"
)

// AuthHandler handles the invite gate and the credential flow for both the
// client portal and the admin console.
type AuthHandler struct {
	service      ports.AuthService
	contactEmail string
}

func NewAuthHandler(service ports.AuthService, contactEmail string) *AuthHandler {
	return &AuthHandler{service: service, contactEmail: contactEmail}
}

type inviteRequest struct {
	Code string `json:"code" validate:"required"`
}

type inviteResponse struct {
	Company string         `json:"company"`
	Name    string         `json:"name"`
	Plan    domain.Plan    `json:"client_pack"`
	Service domain.Service `json:"type"`
}

type inviteErrorResponse struct {
	Error   string `json:"error"`
	Contact string `json:"contact"`
}

type registerRequest struct {
	InviteCode      string `json:"invite_code" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token  string         `json:"token"`
	Client *domain.Client `json:"client,omitempty"`
	Admin  *domain.Admin  `json:"admin,omitempty"`
}

type sessionResponse struct {
	Authenticated bool           `json:"authenticated"`
	Email         string         `json:"email,omitempty"`
	Client        *domain.Client `json:"client,omitempty"`
	Admin         *domain.Admin  `json:"admin,omitempty"`
}

// CheckInvite validates an invite code and previews the account behind it.
//
// @Summary      Validate an invite code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      inviteRequest  true  "Invite code"
// @Success      200   {object}  inviteResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  inviteErrorResponse
// @Router       /auth/invite [post]
func (h *AuthHandler) CheckInvite(c echo.Context) error {
	var req inviteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.service.ResolveInvite(c.Request().Context(), req.Code)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInviteCode) {
			// The rejection page tells the visitor who to reach out to.
			return c.JSON(http.StatusNotFound, inviteErrorResponse{
				Error:   err.Error(),
				Contact: h.contactEmail,
			})
		}
		return err
	}

	return c.JSON(http.StatusOK, inviteResponse{
		Company: client.Company,
		Name:    client.Name,
		Plan:    client.Plan,
		Service: client.Service,
	})
}

// Register creates credentials for an invited client and signs them in.
//
// @Summary      Register with an invite code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		InviteCode:      req.InviteCode,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{Token: result.Token, Client: result.Client})
}

// Login authenticates a client and returns a JWT.
//
// @Summary      Client sign-in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.LoginClient(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: result.Token, Client: result.Client})
}

// AdminLogin authenticates an operator and returns a JWT.
//
// @Summary      Admin sign-in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /auth/admin/login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.LoginAdmin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: result.Token, Admin: result.Admin})
}

// Session reports who is behind the presented token on a given surface.
//
// @Summary      Restore a session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        surface  query     string  false  "Surface to restore on"  Enums(client, admin)
// @Success      200      {object}  sessionResponse
// @Failure      401      {object}  map[string]string
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	email, _ := c.Get("email").(string)
	surface := c.QueryParam("surface")
	if surface == "" {
		role, _ := c.Get("role").(string)
		surface = role
	}

	result, err := h.service.RestoreSession(c.Request().Context(), email, surface)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: result.Authenticated,
		Email:         result.Email,
		Client:        result.Client,
		Admin:         result.Admin,
	})
}

// Logout revokes the presented token's session.
//
// @Summary      Sign out
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	jti, _ := c.Get("jti").(string)

	var remaining time.Duration
	if exp, ok := c.Get("exp").(int64); ok {
		remaining = time.Until(time.Unix(exp, 0))
	}

	if err := h.service.Logout(c.Request().Context(), jti, remaining); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
