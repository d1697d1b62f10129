package activity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Repository is the persistence contract for activity events.
//
// It MUST be append-only.
// No Update/Delete methods are provided by design.

type Repository interface {
	Append(ctx context.Context, e Event) error
	Recent(ctx context.Context, limit int) ([]Event, error)
}

// Service records the internal activity trail.
//
// Callers should treat trail logging as best-effort: a failed append is
// reported but must never roll back the business operation it describes.

type Service struct {
	repo  Repository
	clock func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, clock: time.Now}
}

var ErrInvalidEvent = errors.New("activity: invalid event")

func (s *Service) Append(ctx context.Context, e Event) error {
	if s.repo == nil {
		return errors.New("activity: repository not configured")
	}
	if e.Type == "" {
		return ErrInvalidEvent
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.clock().UTC()
	}
	return s.repo.Append(ctx, e)
}

// Recent returns the latest trail entries, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]Event, error) {
	if s.repo == nil {
		return nil, errors.New("activity: repository not configured")
	}
	if limit <= 0 {
		limit = 50
	}
	return s.repo.Recent(ctx, limit)
}

// LogLeadEvent records a lifecycle event against a lead.
func (s *Service) LogLeadEvent(ctx context.Context, typ EventType, actorUserID, actorRole, leadID, message string) error {
	return s.Append(ctx, Event{
		Type:        typ,
		ActorUserID: actorUserID,
		ActorRole:   actorRole,
		LeadID:      leadID,
		Message:     message,
	})
}

// LogAdminAction records an administrative action such as a dataset reseed.
func (s *Service) LogAdminAction(ctx context.Context, actorUserID, actorRole, message string) error {
	return s.Append(ctx, Event{
		Type:        EventTypeAdminAction,
		ActorUserID: actorUserID,
		ActorRole:   actorRole,
		Message:     message,
	})
}

// LogPayment records a payment applied to an invoice.
func (s *Service) LogPayment(ctx context.Context, actorUserID, actorRole, invoiceID, message string) error {
	return s.Append(ctx, Event{
		Type:        EventTypePaymentRecorded,
		ActorUserID: actorUserID,
		ActorRole:   actorRole,
		InvoiceID:   invoiceID,
		Message:     message,
	})
}
