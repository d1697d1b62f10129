package lead

import (
	"fmt"
	"testing"
	"time"

	"crm-platform/internal/rbac"
	"crm-platform/internal/team"
)

func testEngine(now time.Time) *Engine {
	n := 0
	return &Engine{
		clock: func() time.Time { return now },
		newID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
}

func TestCreateManualDefaults(t *testing.T) {
	now := time.Date(2024, 5, 12, 10, 0, 0, 0, time.UTC)
	e := testEngine(now)
	exec := team.User{ID: "u3", Role: rbac.RoleSalesExecutive}

	l, err := e.CreateManual("Amit Patel", "+91 3", exec, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if l.Source != SourceManual {
		t.Fatalf("expected manual source, got %q", l.Source)
	}
	if l.Status != StatusNew || l.Stage != "New" {
		t.Fatalf("expected New status/stage, got %q/%q", l.Status, l.Stage)
	}
	if l.AssignedTo != "u3" {
		t.Fatalf("expected assignment to creating executive, got %q", l.AssignedTo)
	}
	if l.WorkedFlag {
		t.Fatalf("new lead must not be worked")
	}
	if l.AIScore != FallbackScore || l.AISummary != FallbackSummary {
		t.Fatalf("expected fallback annotation, got %d %q", l.AIScore, l.AISummary)
	}
	if len(l.Notes) != 0 {
		t.Fatalf("expected empty notes, got %d", len(l.Notes))
	}
	if !l.CreatedAt.Equal(now) || !l.LastActivityAt.Equal(now) {
		t.Fatalf("unexpected timestamps: %v %v", l.CreatedAt, l.LastActivityAt)
	}
}

func TestCreateManualManagerUnassigned(t *testing.T) {
	e := testEngine(time.Now())
	mgr := team.User{ID: "u2", Role: rbac.RoleSalesManager}

	l, err := e.CreateManual("X", "+91 3", mgr, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if l.AssignedTo != "" {
		t.Fatalf("manager-created lead must land in the shared pool, got %q", l.AssignedTo)
	}
}

func TestCreateManualRejectsDuplicatePhone(t *testing.T) {
	e := testEngine(time.Now())
	existing := []Lead{
		{ID: "L1", PhoneNumber: "+91 1"},
		{ID: "L2", PhoneNumber: "+91 2"},
	}

	if _, err := e.CreateManual("X", "+91 1", team.User{}, existing); err != ErrDuplicatePhone {
		t.Fatalf("expected ErrDuplicatePhone, got %v", err)
	}
}

func TestCreateManualRejectsEmptyFields(t *testing.T) {
	e := testEngine(time.Now())
	if _, err := e.CreateManual("", "+91 1", team.User{}, nil); err != ErrInvalidArgument {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := e.CreateManual("X", "", team.User{}, nil); err != ErrInvalidArgument {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestTransitionStageKeepsStatusStageCoherent(t *testing.T) {
	now := time.Date(2024, 5, 12, 10, 0, 0, 0, time.UTC)
	e := testEngine(now)
	l := Lead{ID: "L1", Status: StatusNew, Stage: "New"}

	for _, stage := range PipelineStages {
		moved, err := e.TransitionStage(l, stage)
		if err != nil {
			t.Fatalf("transition to %q: %v", stage, err)
		}
		if moved.Status != stage || moved.Stage != string(stage) {
			t.Fatalf("status/stage diverged: %q vs %q", moved.Status, moved.Stage)
		}
		if !moved.LastActivityAt.Equal(now) {
			t.Fatalf("last_activity_at not bumped")
		}
	}
}

func TestTransitionStageRejectsUnknownStage(t *testing.T) {
	e := testEngine(time.Now())
	if _, err := e.TransitionStage(Lead{}, Status("Archived")); err != ErrUnknownStage {
		t.Fatalf("expected ErrUnknownStage, got %v", err)
	}
}

func TestTransitionStageBackwardMoveAllowed(t *testing.T) {
	e := testEngine(time.Now())
	l := Lead{Status: StatusQuote, Stage: "Quote", WorkedFlag: true}

	moved, err := e.TransitionStage(l, StatusQualified)
	if err != nil {
		t.Fatalf("backward transition: %v", err)
	}
	if moved.Status != StatusQualified {
		t.Fatalf("expected Qualified, got %q", moved.Status)
	}
}

func TestWorkedFlagMonotone(t *testing.T) {
	e := testEngine(time.Now())
	l := Lead{Status: StatusNew, Stage: "New"}

	l, err := e.TransitionStage(l, StatusContacted)
	if err != nil {
		t.Fatalf("transition: %v", err)
	}
	if !l.WorkedFlag {
		t.Fatalf("expected worked flag after leaving New")
	}

	// Moving back to New must not reset the flag.
	l, err = e.TransitionStage(l, StatusNew)
	if err != nil {
		t.Fatalf("transition back: %v", err)
	}
	if !l.WorkedFlag {
		t.Fatalf("worked flag regressed on move back to New")
	}

	l, err = e.AppendNote(l, "ping", "Agent A")
	if err != nil {
		t.Fatalf("note: %v", err)
	}
	if !l.WorkedFlag {
		t.Fatalf("worked flag regressed after note")
	}
}

func TestAppendNoteNewestFirst(t *testing.T) {
	e := testEngine(time.Now())
	l := Lead{ID: "L1", Notes: []Note{}}

	l, err := e.AppendNote(l, "first", "Agent A")
	if err != nil {
		t.Fatalf("note: %v", err)
	}
	l, err = e.AppendNote(l, "second", "Agent B")
	if err != nil {
		t.Fatalf("note: %v", err)
	}

	if len(l.Notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(l.Notes))
	}
	if l.Notes[0].Text != "second" || l.Notes[1].Text != "first" {
		t.Fatalf("notes not newest-first: %q, %q", l.Notes[0].Text, l.Notes[1].Text)
	}
	if !l.WorkedFlag {
		t.Fatalf("expected worked flag after note")
	}
}

func TestAppendNoteDoesNotMutateInput(t *testing.T) {
	e := testEngine(time.Now())
	orig := Lead{ID: "L1", Notes: []Note{{ID: "n1", Text: "existing"}}}

	updated, err := e.AppendNote(orig, "new note", "Agent A")
	if err != nil {
		t.Fatalf("note: %v", err)
	}
	if len(orig.Notes) != 1 || orig.Notes[0].Text != "existing" {
		t.Fatalf("input lead mutated: %+v", orig.Notes)
	}
	if len(updated.Notes) != 2 {
		t.Fatalf("expected 2 notes on result, got %d", len(updated.Notes))
	}
}

func TestAppendNoteRejectsEmptyText(t *testing.T) {
	e := testEngine(time.Now())
	if _, err := e.AppendNote(Lead{}, "", "Agent A"); err != ErrInvalidArgument {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

// Scenario from the pipeline design: seed two leads, reject a duplicate,
// create a third, move it to Quote, note it.
func TestManualCaptureScenario(t *testing.T) {
	e := testEngine(time.Date(2024, 5, 12, 9, 0, 0, 0, time.UTC))
	seed := []Lead{
		{ID: "L1", PhoneNumber: "+91 1", Status: StatusNew, Stage: "New"},
		{ID: "L2", PhoneNumber: "+91 2", Status: StatusNew, Stage: "New"},
	}

	if _, err := e.CreateManual("Dup", "+91 1", team.User{}, seed); err != ErrDuplicatePhone {
		t.Fatalf("expected duplicate rejection, got %v", err)
	}

	created, err := e.CreateManual("X", "+91 3", team.User{}, seed)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != StatusNew || created.WorkedFlag {
		t.Fatalf("unexpected fresh lead state: %+v", created)
	}

	quoted, err := e.TransitionStage(created, StatusQuote)
	if err != nil {
		t.Fatalf("transition: %v", err)
	}
	if quoted.Status != StatusQuote || quoted.Stage != "Quote" || !quoted.WorkedFlag {
		t.Fatalf("unexpected quoted state: %+v", quoted)
	}

	noted, err := e.AppendNote(quoted, "called client", "Agent A")
	if err != nil {
		t.Fatalf("note: %v", err)
	}
	if len(noted.Notes) != 1 || !noted.WorkedFlag {
		t.Fatalf("unexpected noted state: %+v", noted)
	}
}
