package domain

import "time"

// KPISnapshot is one month of headline financials for a client. Values are
// operator-entered display strings ("₹8.4 Cr", "41%"); the portal never does
// arithmetic on them.
type KPISnapshot struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	Month       string    `json:"month"`
	Revenue     string    `json:"revenue"`
	GrossMargin string    `json:"gross_margin"`
	CashBalance string    `json:"cash_balance"`
	BurnRate    string    `json:"burn_rate"`
	Runway      string    `json:"runway"`
	ARR         string    `json:"arr"`
	Note        string    `json:"note"`
	UpdatedAt   time.Time `json:"updated_at"`
}
