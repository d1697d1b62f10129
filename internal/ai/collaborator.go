package ai

import (
	"context"
	"errors"

	"crm-platform/internal/lead"
	"crm-platform/internal/stats"
)

// ErrUnavailable signals that the collaborator failed or returned
// unusable output. Callers fall back to placeholder text; this error is
// never surfaced to the user as a failure of the underlying operation.
var ErrUnavailable = errors.New("ai: annotation unavailable")

// Qualification is the structured enrichment produced for a fresh lead.
type Qualification struct {
	Score           int    `json:"ai_score"`
	Summary         string `json:"ai_summary"`
	SuggestedAction string `json:"suggested_action"`
}

// Collaborator produces best-effort narrative annotations. Results only
// ever decorate lead state; core correctness never depends on them.
type Collaborator interface {
	// Qualify scores a lead draft 1-10 and summarizes likely intent.
	Qualify(ctx context.Context, draft lead.Lead) (Qualification, error)

	// SuggestNextAction proposes the single best next step for a lead.
	// Purely advisory; has no effect on lead state.
	SuggestNextAction(ctx context.Context, l lead.Lead) (string, error)

	// SummarizeDashboard narrates a metrics snapshot.
	SummarizeDashboard(ctx context.Context, s stats.FunnelStats) (string, error)
}
