package domain

// NavEntry is one sidebar item in the client portal.
type NavEntry struct {
	ID    string `json:"id"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// ReportPlan resolves the plan driving the report page. Anything other than
// msme or corporate falls back to the startup pack.
func ReportPlan(p Plan) Plan {
	switch p {
	case PlanMSME, PlanCorporate:
		return p
	default:
		return PlanStartup
	}
}

func reportLabel(p Plan) string {
	switch ReportPlan(p) {
	case PlanMSME:
		return "MSME Report"
	case PlanCorporate:
		return "Board Report"
	default:
		return "CFO Report"
	}
}

func reportIcon(p Plan) string {
	switch ReportPlan(p) {
	case PlanMSME:
		return "🏢"
	case PlanCorporate:
		return "🏦"
	default:
		return "📊"
	}
}

// Navigation derives the sidebar entries for a client's plan and service mix.
// The dashboard is always first and the booking entry always last; the
// financial pages appear only for CFO engagements and the valuation page only
// for valuation engagements. An empty service means both.
func Navigation(p Plan, s Service) []NavEntry {
	if s == "" {
		s = ServiceBoth
	}

	entries := []NavEntry{
		{ID: "dashboard", Icon: "📊", Label: "Dashboard"},
	}

	if s.HasCFO() {
		entries = append(entries,
			NavEntry{ID: "cashflow", Icon: "💰", Label: "Cash Flow"},
			NavEntry{ID: "actions", Icon: "✅", Label: "Action Items"},
		)
	}

	entries = append(entries, NavEntry{ID: "myreport", Icon: reportIcon(p), Label: reportLabel(p)})

	if s.HasValuation() {
		entries = append(entries, NavEntry{ID: "engagement", Icon: "📋", Label: "Valuation Status"})
	}

	return append(entries, NavEntry{ID: "calendar", Icon: "📅", Label: "Book a Call"})
}

// PageTitle returns the topbar title for a page. The report page title is
// re-derived from the plan; unknown pages fall back to the dashboard title.
func PageTitle(pageID string, p Plan) string {
	switch pageID {
	case "cashflow":
		return "Cash Flow"
	case "actions":
		return "Action Items"
	case "myreport":
		return reportLabel(p)
	case "engagement":
		return "Valuation Status"
	case "calendar":
		return "Book a Call"
	default:
		return "Dashboard"
	}
}
