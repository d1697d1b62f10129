package activity

import "time"

// Event is an immutable, append-only activity trail record.
//
// Invariants:
// - Events are never updated or deleted.
// - Actor capture is best-effort; do not block business flows on trail failures.

type Event struct {
	ID string `json:"id"`

	// Type indicates the business category of the trail record.
	Type EventType `json:"type"`

	// ActorUserID is the authenticated user causing the event (if applicable).
	ActorUserID string `json:"actor_user_id,omitempty"`
	ActorRole   string `json:"actor_role,omitempty"`

	// Target identifiers (optional, depending on the event type).
	LeadID    string `json:"lead_id,omitempty"`
	InvoiceID string `json:"invoice_id,omitempty"`

	// Message is a short human-readable description for internal ops.
	Message string `json:"message,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type EventType string

const (
	EventTypeLeadCreated     EventType = "lead_created"
	EventTypeStageTransition EventType = "stage_transition"
	EventTypeNoteAdded       EventType = "note_added"
	EventTypePaymentRecorded EventType = "payment_recorded"
	EventTypeAdminAction     EventType = "admin_action"
)
