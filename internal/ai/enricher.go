package ai

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"crm-platform/internal/lead"
	"crm-platform/pkg/metrics"
)

// LeadUpdater is the slice of the store the enricher needs to merge an
// annotation back into the collection.
type LeadUpdater interface {
	FindLead(id string) (lead.Lead, bool)
	UpdateLead(ctx context.Context, l lead.Lead) (bool, error)
}

// Enricher runs lead qualification in the background so that intake never
// waits on the collaborator. Failures are logged and swallowed; the lead
// keeps its fallback annotation.
type Enricher struct {
	ai      Collaborator
	store   LeadUpdater
	log     *slog.Logger
	timeout time.Duration
}

func NewEnricher(ai Collaborator, store LeadUpdater, log *slog.Logger, timeout time.Duration) *Enricher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Enricher{ai: ai, store: store, log: log, timeout: timeout}
}

// EnrichAsync kicks off qualification for a freshly created lead and
// returns immediately. The goroutine carries its own deadline so a
// cancelled request context cannot abort the annotation.
func (e *Enricher) EnrichAsync(l lead.Lead) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
		defer cancel()
		e.Enrich(ctx, l)
	}()
}

// Enrich qualifies the lead and merges the result into the stored copy.
// If the lead vanished between creation and merge the result is dropped.
func (e *Enricher) Enrich(ctx context.Context, l lead.Lead) {
	q, err := e.ai.Qualify(ctx, l)
	if err != nil {
		metrics.RecordAIError("qualify")
		if errors.Is(err, ErrUnavailable) {
			e.log.Warn("lead qualification unavailable", "lead_id", l.ID, "error", err)
		} else {
			e.log.Error("lead qualification failed", "lead_id", l.ID, "error", err)
		}
		return
	}

	// Re-read before merging so concurrent stage moves or notes made
	// during the AI call are not overwritten.
	mergeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	current, ok := e.store.FindLead(l.ID)
	if !ok {
		e.log.Warn("lead gone before annotation merge", "lead_id", l.ID)
		return
	}

	current.AIScore = q.Score
	current.AISummary = q.Summary

	updated, err := e.store.UpdateLead(mergeCtx, current)
	if err != nil {
		e.log.Error("annotation merge failed", "lead_id", l.ID, "error", err)
		return
	}
	if !updated {
		e.log.Warn("lead gone before annotation merge", "lead_id", l.ID)
		return
	}
	e.log.Info("lead qualified", "lead_id", l.ID, "ai_score", q.Score)
}
