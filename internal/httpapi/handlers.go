package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"crm-platform/internal/activity"
	"crm-platform/internal/ai"
	"crm-platform/internal/auth"
	"crm-platform/internal/lead"
	"crm-platform/internal/rbac"
	"crm-platform/internal/store"
	"crm-platform/internal/team"

	"github.com/gin-gonic/gin"
)

// Handlers groups HTTP handlers for dependency injection.
// Keep these thin: parse/validate input, call internal services, return JSON.

type Handlers struct {
	Auth     *auth.Manager
	Store    *store.Store
	Engine   *lead.Engine
	AI       ai.Collaborator
	Enricher *ai.Enricher
	Trail    *activity.Service
	Log      *slog.Logger
}

// --- Auth ---

type loginRequest struct {
	UserID string `json:"user_id"`
}

// Login starts a session for a known user from the seeded team roster.
//
// NOTE: This is a demo-auth endpoint. Real systems must validate credentials.
func (h Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.UserID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "user_id required"})
		return
	}

	u, ok := h.Store.FindUser(req.UserID)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return
	}
	// Role membership is enforced here, not in auth: the durable user
	// record could carry anything.
	if !rbac.IsKnownRole(u.Role) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown role"})
		return
	}

	token, err := h.Auth.IssueSession(time.Now(), u.ID, u.Role)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "token issuance failed"})
		return
	}
	if err := h.Store.SetCurrentUser(c.Request.Context(), u); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session persist failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "user": u})
}

func (h Handlers) Logout(c *gin.Context) {
	if err := h.Store.ClearCurrentUser(c.Request.Context()); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session clear failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h Handlers) Me(c *gin.Context) {
	u, ok := h.sessionUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, u)
}

// --- Admin ---

// Reseed discards the whole stored dataset and restores the demo fixtures.
func (h Handlers) Reseed(c *gin.Context) {
	caller, ok := h.sessionUser(c)
	if !ok {
		return
	}
	if err := h.Store.Reseed(c.Request.Context()); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "reseed failed"})
		return
	}
	h.record(c, h.Trail.LogAdminAction(c.Request.Context(), caller.ID, caller.Role, "dataset reseeded"))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ActivityTrail returns the latest internal trail entries, newest first.
func (h Handlers) ActivityTrail(c *gin.Context) {
	events, err := h.Trail.Recent(c.Request.Context(), 100)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "trail read failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

// record logs a failed trail append. Trail writes are best-effort and
// never fail the request.
func (h Handlers) record(c *gin.Context, err error) {
	if err != nil {
		h.Log.Warn("activity trail append failed", "path", c.FullPath(), "error", err)
	}
}

// sessionUser resolves the authenticated identity to a roster user.
// Writes the error response itself when resolution fails.
func (h Handlers) sessionUser(c *gin.Context) (team.User, bool) {
	uid, err := auth.UserID(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session required"})
		return team.User{}, false
	}
	found, exists := h.Store.FindUser(uid)
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return team.User{}, false
	}
	return found, true
}
