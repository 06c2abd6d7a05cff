package domain

// Fixture content for the portal pages that are not yet operator-driven: the
// dashboard KPI cards, the cash flow series and forecast, and the plan report
// packs. These render for every client until the corresponding admin-managed
// rows exist.

// KPICard is a dashboard metric with its prior-period comparison.
type KPICard struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Prev  string `json:"prev"`
	Trend string `json:"trend"`
	Icon  string `json:"icon"`
}

// CashflowPoint is one month of the cash flow series. Value is set for
// actual months and Forecast for projected ones; the other is nil.
type CashflowPoint struct {
	Month    string   `json:"month"`
	Value    *float64 `json:"value"`
	Forecast *float64 `json:"forecast"`
}

// CashflowLine is one row of the quarterly cash forecast table.
type CashflowLine struct {
	Label string `json:"label"`
	March string `json:"march"`
	April string `json:"april"`
	May   string `json:"may"`
	Total string `json:"total"`
}

// ScoreLine is one component of a readiness score breakdown.
type ScoreLine struct {
	Label   string `json:"label"`
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// MetricLine is a named metric with an attention flag.
type MetricLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Flag  bool   `json:"flag"`
	Note  string `json:"note"`
}

// ChecklistItem is a single readiness checklist entry.
type ChecklistItem struct {
	Item string `json:"item"`
	Done bool   `json:"done"`
}

// ComplianceFlag is an accounting or governance gap with its severity.
type ComplianceFlag struct {
	Flag     string `json:"flag"`
	Severity string `json:"severity"`
	Detail   string `json:"detail"`
}

// StandardStatus is the compliance state of a single Ind AS standard.
type StandardStatus struct {
	Standard string `json:"standard"`
	Status   string `json:"status"`
	Note     string `json:"note"`
}

// BoardPack is a downloadable monthly report artifact.
type BoardPack struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Size string `json:"size"`
	New  bool   `json:"new"`
}

// ReportPack is the plan-specific report page content. The headline score
// means something different per plan (fundraise readiness, cash health, IPO
// readiness), so ScoreName carries the label.
type ReportPack struct {
	Plan            Plan             `json:"plan"`
	Label           string           `json:"label"`
	Tagline         string           `json:"tagline"`
	Score           int              `json:"score"`
	ScoreName       string           `json:"score_name"`
	Breakdown       []ScoreLine      `json:"breakdown"`
	Metrics         []MetricLine     `json:"metrics"`
	Growth          []MetricLine     `json:"growth,omitempty"`
	Checklist       []ChecklistItem  `json:"checklist,omitempty"`
	ComplianceFlags []ComplianceFlag `json:"compliance_flags,omitempty"`
	Standards       []StandardStatus `json:"standards,omitempty"`
	BoardPacks      []BoardPack      `json:"board_packs"`
	AdvisorNote     string           `json:"advisor_note"`
}

func f(v float64) *float64 { return &v }

// DemoKPICards returns the dashboard metric cards.
func DemoKPICards() []KPICard {
	return []KPICard{
		{Label: "Revenue", Value: "₹8.4 Cr", Prev: "₹7.9 Cr", Trend: "up", Icon: "📈"},
		{Label: "Gross Margin", Value: "41%", Prev: "38%", Trend: "up", Icon: "💹"},
		{Label: "Cash Balance", Value: "₹2.1 Cr", Prev: "₹2.6 Cr", Trend: "down", Icon: "🏦"},
		{Label: "Burn Rate", Value: "₹48L/mo", Prev: "₹52L/mo", Trend: "up", Icon: "🔥"},
		{Label: "Runway", Value: "4.4 mo", Prev: "5.0 mo", Trend: "down", Icon: "⏳"},
		{Label: "ARR", Value: "₹6.2 Cr", Prev: "₹5.4 Cr", Trend: "up", Icon: "🎯"},
	}
}

// DemoCashflow returns the nine-month series: six actual months followed by
// three forecast months.
func DemoCashflow() []CashflowPoint {
	return []CashflowPoint{
		{Month: "Sep", Value: f(210)},
		{Month: "Oct", Value: f(185)},
		{Month: "Nov", Value: f(240)},
		{Month: "Dec", Value: f(260)},
		{Month: "Jan", Value: f(195)},
		{Month: "Feb", Value: f(220)},
		{Month: "Mar", Forecast: f(175)},
		{Month: "Apr", Forecast: f(200)},
		{Month: "May", Forecast: f(230)},
	}
}

// DemoCashflowForecast returns the Q1 FY27 cash forecast table.
func DemoCashflowForecast() []CashflowLine {
	return []CashflowLine{
		{Label: "Opening Cash", March: "₹261L", April: "₹143L", May: "₹137L", Total: "₹261L"},
		{Label: "Operating Inflows", March: "₹818L", April: "₹880L", May: "₹920L", Total: "₹2,618L"},
		{Label: "Operating Outflows", March: "−₹821L", April: "−₹790L", May: "−₹810L", Total: "−₹2,421L"},
		{Label: "Capex", March: "—", April: "−₹45L", May: "—", Total: "−₹45L"},
		{Label: "Debt Repayment", March: "−₹83L", April: "−₹83L", May: "−₹83L", Total: "−₹249L"},
		{Label: "Tax Payment", March: "−₹32L", April: "—", May: "—", Total: "−₹32L"},
		{Label: "Closing Cash", March: "₹143L", April: "₹105L", May: "₹164L", Total: "₹122L"},
	}
}

// DemoCashflowAlert is the commentary shown under the forecast table.
const DemoCashflowAlert = "March closing cash ₹143L — lowest in 12 months. No discretionary capex in March."

// DemoActions returns the starter action item list shown to clients before
// the admin team has assigned any.
func DemoActions() []ActionItem {
	return []ActionItem{
		{ID: "demo-1", Text: "File GST returns for Q3 — deadline 15 March", Priority: PriorityHigh},
		{ID: "demo-2", Text: "Send updated projections to Series A lead investor", Priority: PriorityHigh},
		{ID: "demo-3", Text: "Review and approve revised marketing budget", Priority: PriorityMedium, Done: true},
		{ID: "demo-4", Text: "Delay equipment purchase to April — cash is tight in March", Priority: PriorityMedium},
		{ID: "demo-5", Text: "Share board pack with all directors before 28 Feb", Priority: PriorityLow, Done: true},
	}
}

// DemoEngagement returns the placeholder engagement rendered before the admin
// team records one.
func DemoEngagement() Engagement {
	return Engagement{
		Type:         "DCF Valuation — Section 56(2)(viib)",
		RefNumber:    "VAL-240216",
		Status:       2,
		ExpectedDate: "28 Feb 2026",
	}
}

// DemoEngagementDocs is the document checklist shown on the valuation page.
func DemoEngagementDocs() []ChecklistItem {
	return []ChecklistItem{
		{Item: "Audited P&L (3 years)", Done: true},
		{Item: "Balance Sheet (3 years)", Done: true},
		{Item: "5-Year Projections", Done: true},
		{Item: "Debt Schedule", Done: false},
		{Item: "Cap Table", Done: false},
	}
}

func demoBoardPacks() []BoardPack {
	return []BoardPack{
		{Name: "Board Pack — February 2026", Date: "20 Feb 2026", Size: "2.4 MB", New: true},
		{Name: "Board Pack — January 2026", Date: "22 Jan 2026", Size: "2.1 MB"},
		{Name: "Board Pack — December 2025", Date: "19 Dec 2025", Size: "1.9 MB"},
		{Name: "Board Pack — November 2025", Date: "21 Nov 2025", Size: "2.0 MB"},
	}
}

// ReportPackFor returns the report page content for a plan. Unknown plans get
// the startup pack.
func ReportPackFor(p Plan) ReportPack {
	switch ReportPlan(p) {
	case PlanMSME:
		return msmePack()
	case PlanCorporate:
		return corporatePack()
	default:
		return startupPack()
	}
}

func startupPack() ReportPack {
	return ReportPack{
		Plan:      PlanStartup,
		Label:     "Startup Pack",
		Tagline:   "Fundraise-ready financials for your next round",
		Score:     72,
		ScoreName: "fundraise_score",
		Breakdown: []ScoreLine{
			{Label: "Revenue Growth", Score: 85, Comment: "Strong 42% YoY — above Series A median"},
			{Label: "Gross Margin", Score: 78, Comment: "41% is healthy; target 45%+ before raise"},
			{Label: "Runway", Score: 55, Comment: "4.4 months — tight; raise in next 60 days"},
			{Label: "Financial Documentation", Score: 70, Comment: "3yr P&L ready; projections need refresh"},
			{Label: "Unit Economics", Score: 72, Comment: "CAC/LTV ratio needs improvement"},
		},
		Metrics: []MetricLine{
			{Label: "ARR", Value: "₹6.2 Cr", Note: "Good for Series A"},
			{Label: "MoM Growth", Value: "6%", Note: "Consistent"},
			{Label: "Burn Multiple", Value: "1.8x", Flag: true, Note: "Target <1.5x before raise"},
			{Label: "CAC Payback", Value: "18 mo", Flag: true, Note: "Investors prefer <12 mo"},
			{Label: "NRR", Value: "108%", Note: "Healthy retention"},
			{Label: "Gross Margin", Value: "41%", Note: "On track"},
		},
		Checklist: []ChecklistItem{
			{Item: "Audited financials (3 years)", Done: true},
			{Item: "5-year projections with assumptions", Done: true},
			{Item: "Cap table (fully diluted)", Done: true},
			{Item: "MIS pack — last 6 months", Done: false},
			{Item: "Unit economics — cohort analysis", Done: false},
			{Item: "Board resolutions for previous fundraises", Done: true},
			{Item: "ESOP scheme document", Done: false},
			{Item: "Shareholder agreement (all investors)", Done: true},
		},
		BoardPacks: demoBoardPacks(),
		AdvisorNote: "Your ARR growth is the strongest part of your story — lean into it. The burn multiple at 1.8x will get questions from institutional investors. " +
			"I'd recommend showing a clear path to 1.2x by month 9. Let's work on the unit economics narrative before you start investor conversations.",
	}
}

func msmePack() ReportPack {
	return ReportPack{
		Plan:      PlanMSME,
		Label:     "MSME Pack",
		Tagline:   "Cash flow health and working capital intelligence",
		Score:     68,
		ScoreName: "cash_health",
		Breakdown: []ScoreLine{
			{Label: "Cash Conversion Cycle", Score: 55, Comment: "42 days — reduce debtor days to improve"},
			{Label: "Working Capital Ratio", Score: 72, Comment: "1.6x — adequate but watch March dip"},
			{Label: "Debtor Days", Score: 58, Comment: "38 days — target <30 for your sector"},
			{Label: "Creditor Days", Score: 80, Comment: "52 days — well managed"},
			{Label: "Inventory Turnover", Score: 75, Comment: "6.2x — good for FMCG segment"},
		},
		Metrics: []MetricLine{
			{Label: "Current Ratio", Value: "1.62x", Note: "Healthy (>1.5)"},
			{Label: "Quick Ratio", Value: "1.18x", Note: "Adequate"},
			{Label: "Debtor Days", Value: "38 days", Flag: true, Note: "Target <30"},
			{Label: "Creditor Days", Value: "52 days", Note: "Well managed"},
			{Label: "Inventory Days", Value: "24 days", Note: "Lean"},
			{Label: "Cash Conversion", Value: "10 days", Note: "Good"},
		},
		Growth: []MetricLine{
			{Label: "Revenue Growth YoY", Value: "22%", Note: "Sector avg: 18%"},
			{Label: "EBITDA Margin", Value: "14.2%", Note: "Healthy"},
			{Label: "Gross Margin Trend", Value: "▲ +2pp", Note: "Improving"},
			{Label: "Debtor Concentration", Value: "High", Flag: true, Note: "Top 3 = 64% of AR"},
		},
		BoardPacks: demoBoardPacks(),
		AdvisorNote: "Working capital is healthy overall but the debtor concentration is a risk — if your top client delays, it cascades into a cash crunch. " +
			"I've flagged this as the priority item for next month. Creditor days are well managed; keep that discipline. Focus for Q1: reduce debtor days from 38 to 30.",
	}
}

func corporatePack() ReportPack {
	return ReportPack{
		Plan:      PlanCorporate,
		Label:     "Corporate Pack",
		Tagline:   "IPO readiness, compliance flags & Ind AS health check",
		Score:     58,
		ScoreName: "ipo_score",
		Breakdown: []ScoreLine{
			{Label: "Revenue Scale", Score: 75, Comment: "₹85 Cr — approaching IPO threshold"},
			{Label: "Profitability Track Record", Score: 60, Comment: "EBITDA positive 2yr; need 3yr PAT"},
			{Label: "Governance & Board", Score: 55, Comment: "Independent director appointment pending"},
			{Label: "Ind AS Compliance", Score: 65, Comment: "Ind AS 116 and 109 need attention"},
			{Label: "Audit Quality", Score: 72, Comment: "Big 4 auditor — positive signal"},
		},
		ComplianceFlags: []ComplianceFlag{
			{Flag: "Ind AS 116 — Lease Accounting", Severity: "High", Detail: "Operating leases not yet restated under IFRS 16 equivalent."},
			{Flag: "Ind AS 109 — Financial Instruments", Severity: "High", Detail: "ECL provisioning not computed for trade receivables."},
			{Flag: "Related Party Disclosures", Severity: "Medium", Detail: "2 transactions in FY24 may require enhanced disclosure."},
			{Flag: "Independent Director", Severity: "Medium", Detail: "Board needs 1 additional independent director for LODR."},
			{Flag: "CSR Compliance", Severity: "Low", Detail: "CSR spend at 1.8% vs required 2% — minor shortfall."},
		},
		Standards: []StandardStatus{
			{Standard: "Ind AS 36 — Impairment", Status: "Compliant", Note: "Tested annually"},
			{Standard: "Ind AS 116 — Leases", Status: "Action Needed", Note: "Restatement required"},
			{Standard: "Ind AS 109 — Fin Instruments", Status: "Action Needed", Note: "ECL model needed"},
			{Standard: "Ind AS 113 — Fair Value", Status: "Compliant", Note: "Mark-to-market current"},
			{Standard: "Ind AS 21 — Foreign Ops", Status: "Compliant", Note: "USD invoices hedged"},
		},
		BoardPacks: demoBoardPacks(),
		AdvisorNote: "The IPO readiness score of 58 is a starting point — the two Ind AS gaps (116 and 109) are solvable in 2–3 months with a focused project. " +
			"The governance gap is easier but takes longer (6+ months for a qualified independent director). " +
			"I'd recommend starting the Ind AS restatement work immediately so it's done before you engage investment bankers.",
	}
}
