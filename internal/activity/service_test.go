package activity

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestAppendFillsDefaults(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	svc.clock = func() time.Time { return now }

	err := svc.LogLeadEvent(context.Background(), EventTypeStageTransition, "u2", "SALES_MANAGER", "L1", "moved to Qualified")
	if err != nil {
		t.Fatalf("LogLeadEvent: %v", err)
	}

	events, err := svc.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	e := events[0]
	if e.ID == "" {
		t.Fatal("ID not assigned")
	}
	if !e.CreatedAt.Equal(now) {
		t.Fatalf("CreatedAt = %v, want %v", e.CreatedAt, now)
	}
	if e.LeadID != "L1" || e.Type != EventTypeStageTransition {
		t.Fatalf("event = %+v", e)
	}
}

func TestAppendRejectsMissingType(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	err := svc.Append(context.Background(), Event{Message: "no type"})
	if !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("err = %v, want ErrInvalidEvent", err)
	}
}

func TestRecentReturnsNewestFirst(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	for _, id := range []string{"L1", "L2", "L3"} {
		if err := svc.LogLeadEvent(ctx, EventTypeNoteAdded, "u3", "SALES_EXECUTIVE", id, "note"); err != nil {
			t.Fatalf("LogLeadEvent(%s): %v", id, err)
		}
	}

	events, err := svc.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].LeadID != "L3" || events[1].LeadID != "L2" {
		t.Fatalf("ordering wrong: %s, %s", events[0].LeadID, events[1].LeadID)
	}
}
