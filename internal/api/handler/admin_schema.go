package handler

import "github.com/finzzup/portal-api/internal/core/domain"

type createClientRequest struct {
	Name       string `json:"name" validate:"required"`
	Company    string `json:"company" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	InviteCode string `json:"invite_code"`
	Plan       string `json:"client_pack"`
	Service    string `json:"type"`
}

type clientListResponse struct {
	Clients []domain.Client `json:"clients"`
}

type workspaceResponse struct {
	Client     *domain.Client      `json:"client"`
	KPI        *domain.KPISnapshot `json:"kpi,omitempty"`
	Actions    []domain.ActionItem `json:"actions"`
	Engagement *domain.Engagement  `json:"engagement,omitempty"`
}

type saveKPIRequest struct {
	ID          string `json:"id"`
	Month       string `json:"month" validate:"required"`
	Revenue     string `json:"revenue"`
	GrossMargin string `json:"gross_margin"`
	CashBalance string `json:"cash_balance"`
	BurnRate    string `json:"burn_rate"`
	Runway      string `json:"runway"`
	ARR         string `json:"arr"`
	Note        string `json:"note"`
}

type addActionRequest struct {
	Text     string `json:"text" validate:"required"`
	Priority string `json:"priority"`
	Month    string `json:"month"`
}

type saveEngagementRequest struct {
	Type         string `json:"type" validate:"required"`
	RefNumber    string `json:"ref_number" validate:"required"`
	Status       int    `json:"status"`
	ExpectedDate string `json:"expected_date"`
	Note         string `json:"note"`
}
