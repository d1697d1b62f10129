package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"crm-platform/internal/activity"
	"crm-platform/internal/lead"
	"crm-platform/internal/rbac"
	"crm-platform/internal/stats"
	"crm-platform/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// ListLeads returns the collection scoped to the caller. Sales executives
// see only their assigned leads; managers and admins see everything.
// Optional ?q= filters by name or phone substring.
func (h Handlers) ListLeads(c *gin.Context) {
	caller, ok := h.sessionUser(c)
	if !ok {
		return
	}

	leads := h.Store.Leads()
	if rbac.IsExecutive(caller.Role) {
		scoped := make([]lead.Lead, 0, len(leads))
		for _, l := range leads {
			if l.AssignedTo == caller.ID {
				scoped = append(scoped, l)
			}
		}
		leads = scoped
	}

	if q := strings.ToLower(strings.TrimSpace(c.Query("q"))); q != "" {
		filtered := make([]lead.Lead, 0, len(leads))
		for _, l := range leads {
			if strings.Contains(strings.ToLower(l.Name), q) || strings.Contains(l.PhoneNumber, q) {
				filtered = append(filtered, l)
			}
		}
		leads = filtered
	}

	c.JSON(http.StatusOK, gin.H{"leads": leads, "count": len(leads)})
}

type createLeadRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// CreateLead registers a manually captured lead. The response carries the
// fallback annotation; AI qualification lands asynchronously.
func (h Handlers) CreateLead(c *gin.Context) {
	caller, ok := h.sessionUser(c)
	if !ok {
		return
	}

	var req createLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	l, err := h.Engine.CreateManual(req.Name, req.PhoneNumber, caller, h.Store.Leads())
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, lead.ErrDuplicatePhone) {
			status = http.StatusConflict
		}
		c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.AddLead(c.Request.Context(), l); err != nil {
		if errors.Is(err, lead.ErrDuplicatePhone) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "lead persist failed"})
		return
	}

	metrics.RecordLeadCreated(string(l.Source))
	h.record(c, h.Trail.LogLeadEvent(c.Request.Context(), activity.EventTypeLeadCreated, caller.ID, caller.Role, l.ID, "manual lead captured"))
	h.Enricher.EnrichAsync(l)

	c.JSON(http.StatusCreated, l)
}

type transitionRequest struct {
	Stage string `json:"stage"`
}

func (h Handlers) TransitionStage(c *gin.Context) {
	caller, ok := h.sessionUser(c)
	if !ok {
		return
	}
	l, ok := h.pathLead(c)
	if !ok {
		return
	}

	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	moved, err := h.Engine.TransitionStage(l, lead.Status(req.Stage))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if ok, err := h.Store.UpdateLead(c.Request.Context(), moved); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "lead persist failed"})
		return
	} else if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}

	metrics.RecordStageTransition(req.Stage)
	h.record(c, h.Trail.LogLeadEvent(c.Request.Context(), activity.EventTypeStageTransition, caller.ID, caller.Role, moved.ID, "moved to "+req.Stage))
	c.JSON(http.StatusOK, moved)
}

type noteRequest struct {
	Text string `json:"text"`
}

func (h Handlers) AddNote(c *gin.Context) {
	caller, ok := h.sessionUser(c)
	if !ok {
		return
	}
	l, ok := h.pathLead(c)
	if !ok {
		return
	}

	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	annotated, err := h.Engine.AppendNote(l, req.Text, caller.Name)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if ok, err := h.Store.UpdateLead(c.Request.Context(), annotated); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "lead persist failed"})
		return
	} else if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}

	h.record(c, h.Trail.LogLeadEvent(c.Request.Context(), activity.EventTypeNoteAdded, caller.ID, caller.Role, annotated.ID, "note added"))
	c.JSON(http.StatusOK, annotated)
}

const fallbackNextAction = "No suggestion available."

// NextAction asks the AI collaborator for the best next step on a lead.
// Degrades to a static suggestion when the collaborator is unreachable.
func (h Handlers) NextAction(c *gin.Context) {
	l, ok := h.pathLead(c)
	if !ok {
		return
	}

	action, err := h.AI.SuggestNextAction(c.Request.Context(), l)
	if err != nil {
		metrics.RecordAIError("next_action")
		h.Log.Warn("next action suggestion failed", "lead_id", l.ID, "error", err)
		c.JSON(http.StatusOK, gin.H{"lead_id": l.ID, "suggestion": fallbackNextAction, "degraded": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lead_id": l.ID, "suggestion": action})
}

// --- Stats ---

func (h Handlers) FunnelStats(c *gin.Context) {
	caller, ok := h.sessionUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, stats.ComputeFunnel(h.Store.Leads(), &caller))
}

func (h Handlers) Pipeline(c *gin.Context) {
	caller, ok := h.sessionUser(c)
	if !ok {
		return
	}

	leads := h.Store.Leads()
	if rbac.IsExecutive(caller.Role) {
		scoped := make([]lead.Lead, 0, len(leads))
		for _, l := range leads {
			if l.AssignedTo == caller.ID {
				scoped = append(scoped, l)
			}
		}
		leads = scoped
	}
	c.JSON(http.StatusOK, gin.H{"columns": stats.PipelineBoard(leads)})
}

const fallbackSummary = "Summary unavailable. Review the funnel numbers directly."

// StatsSummary returns the funnel metrics plus an AI narrative.
func (h Handlers) StatsSummary(c *gin.Context) {
	caller, ok := h.sessionUser(c)
	if !ok {
		return
	}

	s := stats.ComputeFunnel(h.Store.Leads(), &caller)
	narrative, err := h.AI.SummarizeDashboard(c.Request.Context(), s)
	if err != nil {
		metrics.RecordAIError("dashboard_summary")
		h.Log.Warn("dashboard summary failed", "error", err)
		c.JSON(http.StatusOK, gin.H{"stats": s, "summary": fallbackSummary, "degraded": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": s, "summary": narrative})
}

func (h Handlers) pathLead(c *gin.Context) (lead.Lead, bool) {
	id := c.Param("lead_id")
	if id == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "lead_id required"})
		return lead.Lead{}, false
	}
	l, ok := h.Store.FindLead(id)
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return lead.Lead{}, false
	}
	return l, true
}
