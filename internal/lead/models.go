package lead

import "time"

// Source identifies the acquisition channel of a lead.
type Source string

const (
	SourceMissedCall Source = "missed_call"
	SourceWhatsApp   Source = "whatsapp"
	SourceFacebook   Source = "facebook"
	SourceIndiaMART  Source = "indiamart"
	SourceManual     Source = "manual"
)

// Status is the lead's position in the fixed pipeline. Lost is a terminal
// exit, not part of the forward funnel, but transitions remain free-form:
// manual override can move a lead to any stage at any time.
type Status string

const (
	StatusNew       Status = "New"
	StatusQualified Status = "Qualified"
	StatusContacted Status = "Contacted"
	StatusQuote     Status = "Quote"
	StatusConverted Status = "Converted"
	StatusLost      Status = "Lost"
)

// PipelineStages is the canonical stage ordering used by board views.
var PipelineStages = []Status{
	StatusNew,
	StatusQualified,
	StatusContacted,
	StatusQuote,
	StatusConverted,
	StatusLost,
}

func IsValidStatus(s Status) bool {
	for _, st := range PipelineStages {
		if s == st {
			return true
		}
	}
	return false
}

// Note is an immutable annotation owned by its parent lead. Notes are
// append-only and kept strictly newest-first.
type Note struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	Author    string    `json:"author"`
}

// Lead is a prospective customer tracked through the sales funnel.
//
// Invariants:
// - PhoneNumber is the dedup key: unique across the live collection.
// - Status and Stage always point at the same pipeline position.
// - WorkedFlag is monotone: once true it never resets.
// - AIScore stays within [1,10]; out-of-range annotation input is clamped.
type Lead struct {
	ID          string `json:"id"`
	PhoneNumber string `json:"phone_number"`
	Name        string `json:"name"`
	Source      Source `json:"source"`

	// SubSource optionally refines Source (e.g. a campaign name).
	SubSource string `json:"sub_source,omitempty"`

	Status Status `json:"status"`
	// Stage is the string form of Status, kept in lockstep by every
	// lifecycle transition.
	Stage string `json:"stage"`

	// AssignedTo is a weak reference to a User id; no cascade.
	AssignedTo string `json:"assigned_to,omitempty"`

	AIScore   int    `json:"ai_score"`
	AISummary string `json:"ai_summary"`

	Notes []Note `json:"notes"`

	WorkedFlag bool `json:"worked_flag"`

	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
}
