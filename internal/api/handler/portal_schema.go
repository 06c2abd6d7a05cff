package handler

import "github.com/finzzup/portal-api/internal/core/domain"

type navigationResponse struct {
	Entries []domain.NavEntry `json:"entries"`
}

type dashboardResponse struct {
	Client   *domain.Client      `json:"client"`
	Title    string              `json:"title"`
	Cards    []domain.KPICard    `json:"cards"`
	Snapshot *domain.KPISnapshot `json:"snapshot,omitempty"`
}

type cashflowResponse struct {
	Series   []domain.CashflowPoint `json:"series"`
	Forecast []domain.CashflowLine  `json:"forecast"`
	Alert    string                 `json:"alert,omitempty"`
}

type actionListResponse struct {
	Items []domain.ActionItem `json:"items"`
}

type engagementResponse struct {
	Engagement domain.Engagement      `json:"engagement"`
	Stages     []string               `json:"stages"`
	Stage      string                 `json:"stage"`
	Progress   float64                `json:"progress"`
	Documents  []domain.ChecklistItem `json:"documents"`
}
