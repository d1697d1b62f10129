package ai

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"crm-platform/internal/lead"
	"crm-platform/internal/stats"
)

type fakeCollaborator struct {
	qual Qualification
	err  error
}

func (f *fakeCollaborator) Qualify(context.Context, lead.Lead) (Qualification, error) {
	return f.qual, f.err
}

func (f *fakeCollaborator) SuggestNextAction(context.Context, lead.Lead) (string, error) {
	return "", f.err
}

func (f *fakeCollaborator) SummarizeDashboard(context.Context, stats.FunnelStats) (string, error) {
	return "", f.err
}

type fakeStore struct {
	leads map[string]lead.Lead
}

func (f *fakeStore) FindLead(id string) (lead.Lead, bool) {
	l, ok := f.leads[id]
	return l, ok
}

func (f *fakeStore) UpdateLead(_ context.Context, l lead.Lead) (bool, error) {
	if _, ok := f.leads[l.ID]; !ok {
		return false, nil
	}
	f.leads[l.ID] = l
	return true, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEnrichMergesAnnotation(t *testing.T) {
	l := lead.Lead{ID: "L1", Name: "Asha", AIScore: lead.FallbackScore, AISummary: lead.FallbackSummary}
	st := &fakeStore{leads: map[string]lead.Lead{"L1": l}}
	ai := &fakeCollaborator{qual: Qualification{Score: 8, Summary: "High intent caller."}}

	e := NewEnricher(ai, st, testLogger(), 0)
	e.Enrich(context.Background(), l)

	got := st.leads["L1"]
	if got.AIScore != 8 {
		t.Fatalf("AIScore = %d, want 8", got.AIScore)
	}
	if got.AISummary != "High intent caller." {
		t.Fatalf("AISummary = %q", got.AISummary)
	}
}

func TestEnrichPreservesConcurrentEdits(t *testing.T) {
	l := lead.Lead{ID: "L1", Status: lead.StatusNew, Stage: string(lead.StatusNew)}
	st := &fakeStore{leads: map[string]lead.Lead{"L1": l}}

	// Simulate a stage move that landed while the AI call was in flight.
	moved := st.leads["L1"]
	moved.Status = lead.StatusQualified
	moved.Stage = string(lead.StatusQualified)
	moved.WorkedFlag = true
	st.leads["L1"] = moved

	ai := &fakeCollaborator{qual: Qualification{Score: 6, Summary: "Warm."}}
	NewEnricher(ai, st, testLogger(), 0).Enrich(context.Background(), l)

	got := st.leads["L1"]
	if got.Status != lead.StatusQualified || !got.WorkedFlag {
		t.Fatalf("concurrent edit lost: %+v", got)
	}
	if got.AIScore != 6 {
		t.Fatalf("AIScore = %d, want 6", got.AIScore)
	}
}

func TestEnrichFailureLeavesFallback(t *testing.T) {
	l := lead.Lead{ID: "L1", AIScore: lead.FallbackScore, AISummary: lead.FallbackSummary}
	st := &fakeStore{leads: map[string]lead.Lead{"L1": l}}
	ai := &fakeCollaborator{err: ErrUnavailable}

	NewEnricher(ai, st, testLogger(), 0).Enrich(context.Background(), l)

	got := st.leads["L1"]
	if got.AIScore != lead.FallbackScore || got.AISummary != lead.FallbackSummary {
		t.Fatalf("fallback annotation overwritten: %+v", got)
	}
}

func TestEnrichDropsResultForMissingLead(t *testing.T) {
	st := &fakeStore{leads: map[string]lead.Lead{}}
	ai := &fakeCollaborator{qual: Qualification{Score: 9, Summary: "Hot."}}

	NewEnricher(ai, st, testLogger(), 0).Enrich(context.Background(), lead.Lead{ID: "gone"})

	if len(st.leads) != 0 {
		t.Fatalf("annotation created a lead: %+v", st.leads)
	}
}

func TestEnrichErrorIsNotUnavailable(t *testing.T) {
	// Sanity check that unexpected errors are distinguishable.
	if errors.Is(errors.New("boom"), ErrUnavailable) {
		t.Fatal("unrelated error matches ErrUnavailable")
	}
}
