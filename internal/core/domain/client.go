package domain

import (
	"strings"
	"time"
)

// Plan identifies the reporting pack a client subscribes to.
type Plan string

const (
	PlanStartup   Plan = "startup"
	PlanMSME      Plan = "msme"
	PlanCorporate Plan = "corporate"
)

// Service identifies which engagement kinds a client has purchased.
type Service string

const (
	ServiceCFO       Service = "cfo"
	ServiceValuation Service = "valuation"
	ServiceBoth      Service = "both"
)

// Client is a portal account provisioned by the admin team. The invite code
// is the single credential gating first-time registration.
type Client struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Company    string    `json:"company"`
	Email      string    `json:"email"`
	InviteCode string    `json:"invite_code"`
	Plan       Plan      `json:"client_pack"`
	Service    Service   `json:"type"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// HasCFO reports whether the client sees the cash flow and action item pages.
func (s Service) HasCFO() bool {
	return s == ServiceCFO || s == ServiceBoth
}

// HasValuation reports whether the client sees the valuation status page.
func (s Service) HasValuation() bool {
	return s == ServiceValuation || s == ServiceBoth
}

func (p Plan) Valid() bool {
	return p == PlanStartup || p == PlanMSME || p == PlanCorporate
}

func (s Service) Valid() bool {
	return s == ServiceCFO || s == ServiceValuation || s == ServiceBoth
}

// NormalizeInviteCode trims surrounding whitespace and uppercases the code so
// lookups are insensitive to how the client typed it.
func NormalizeInviteCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// GenerateInviteCode builds a code from the first characters of the company
// name plus the current year, e.g. "NEXP2026". Empty company names fall back
// to a generic prefix.
func GenerateInviteCode(company string, now time.Time) string {
	runes := []rune(company)
	if len(runes) > 4 {
		runes = runes[:4]
	}
	prefix := strings.ToUpper(strings.ReplaceAll(string(runes), " ", ""))
	if prefix == "" {
		prefix = "CLIE"
	}
	return prefix + now.Format("2006")
}
