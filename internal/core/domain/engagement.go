package domain

// EngagementStages is the fixed delivery pipeline every valuation engagement
// moves through. Status on an Engagement is an index into this sequence.
var EngagementStages = []string{
	"Docs Requested",
	"Docs Received",
	"Analysis",
	"Draft Ready",
	"Revision",
	"Final Signed",
}

// Engagement tracks a valuation or advisory deliverable for one client.
// There is at most one per client.
type Engagement struct {
	ID           string `json:"id"`
	ClientID     string `json:"client_id"`
	Type         string `json:"type"`
	RefNumber    string `json:"ref_number"`
	Status       int    `json:"status"`
	ExpectedDate string `json:"expected_date"`
	Note         string `json:"note"`
}

// Progress returns completion as a percentage of the stage sequence. The
// final stage maps to exactly 100.
func (e Engagement) Progress() float64 {
	last := len(EngagementStages) - 1
	if e.Status <= 0 {
		return 0
	}
	if e.Status >= last {
		return 100
	}
	return float64(e.Status) / float64(last) * 100
}

// StageName returns the label for the engagement's current stage.
func (e Engagement) StageName() string {
	if e.Status < 0 || e.Status >= len(EngagementStages) {
		return EngagementStages[0]
	}
	return EngagementStages[e.Status]
}
