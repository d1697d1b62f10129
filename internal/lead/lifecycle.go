package lead

import (
	"errors"
	"time"

	"crm-platform/internal/rbac"
	"crm-platform/internal/team"

	"github.com/google/uuid"
)

var (
	ErrInvalidArgument = errors.New("lead: invalid argument")
	ErrDuplicatePhone  = errors.New("lead: phone number already exists")
	ErrUnknownStage    = errors.New("lead: unknown pipeline stage")
)

// Fallback annotation values used until (or instead of) AI enrichment.
// A freshly created lead must be fully usable without the collaborator.
const (
	FallbackScore   = 5
	FallbackSummary = "Manual entry. Qualification pending."
)

// Engine produces new, fully consistent Lead values from an existing one
// plus a lifecycle event. It is pure: no I/O, no AI calls, no persistence.
// Committing results is the collection store's job.
type Engine struct {
	clock func() time.Time
	newID func() string
}

func NewEngine() *Engine {
	return &Engine{clock: time.Now, newID: uuid.NewString}
}

// CreateManual builds a manually captured lead. The existing snapshot is
// scanned for the dedup key; on a duplicate phone the caller must not
// insert. The lead is assigned to its creator only when the creator is a
// sales executive (managers and admins capture into the shared pool).
func (e *Engine) CreateManual(name, phone string, creator team.User, existing []Lead) (Lead, error) {
	if name == "" || phone == "" {
		return Lead{}, ErrInvalidArgument
	}
	for _, l := range existing {
		if l.PhoneNumber == phone {
			return Lead{}, ErrDuplicatePhone
		}
	}

	now := e.clock().UTC()
	assignedTo := ""
	if rbac.IsExecutive(creator.Role) {
		assignedTo = creator.ID
	}

	return Lead{
		ID:             e.newID(),
		PhoneNumber:    phone,
		Name:           name,
		Source:         SourceManual,
		Status:         StatusNew,
		Stage:          string(StatusNew),
		AssignedTo:     assignedTo,
		AIScore:        FallbackScore,
		AISummary:      FallbackSummary,
		Notes:          []Note{},
		WorkedFlag:     false,
		CreatedAt:      now,
		LastActivityAt: now,
	}, nil
}

// TransitionStage moves a lead to any member of the fixed stage set.
// Backward moves and arbitrary jumps are allowed; this mirrors free-form
// manual override, not a strict funnel. The worked flag is set for any
// stage other than New and never regresses.
func (e *Engine) TransitionStage(l Lead, newStage Status) (Lead, error) {
	if !IsValidStatus(newStage) {
		return Lead{}, ErrUnknownStage
	}

	l.Status = newStage
	l.Stage = string(newStage)
	if newStage != StatusNew {
		l.WorkedFlag = true
	}
	l.LastActivityAt = e.clock().UTC()
	return l, nil
}

// AppendNote prepends a fresh note (newest-first) and marks the lead
// worked. The input lead's note sequence is left untouched.
func (e *Engine) AppendNote(l Lead, text, author string) (Lead, error) {
	if text == "" {
		return Lead{}, ErrInvalidArgument
	}

	now := e.clock().UTC()
	note := Note{
		ID:        e.newID(),
		Text:      text,
		CreatedAt: now,
		Author:    author,
	}

	notes := make([]Note, 0, len(l.Notes)+1)
	notes = append(notes, note)
	notes = append(notes, l.Notes...)

	l.Notes = notes
	l.WorkedFlag = true
	l.LastActivityAt = now
	return l, nil
}
