package httpapi

import (
	"errors"
	"net/http"

	"crm-platform/internal/rbac"
	"crm-platform/internal/team"

	"github.com/gin-gonic/gin"
)

// --- Team ---

func (h Handlers) ListMembers(c *gin.Context) {
	members := team.Members(h.Store.Users())
	c.JSON(http.StatusOK, gin.H{"members": members, "count": len(members)})
}

// --- Tasks ---

func (h Handlers) ListTasks(c *gin.Context) {
	caller, ok := h.sessionUser(c)
	if !ok {
		return
	}

	tasks := h.Store.Tasks()
	// Executives see their own tasks only.
	if rbac.IsExecutive(caller.Role) {
		own := make([]team.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.AssignedTo == caller.ID {
				own = append(own, t)
			}
		}
		tasks = own
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "count": len(tasks)})
}

type createTaskRequest struct {
	Title        string `json:"title"`
	DueDate      string `json:"dueDate"`
	Priority     string `json:"priority"`
	AssignedTo   string `json:"assignedTo"`
	LinkedEntity string `json:"linkedEntity"`
}

func (h Handlers) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	if req.AssignedTo != "" {
		if _, ok := h.Store.FindUser(req.AssignedTo); !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "assignee not found"})
			return
		}
	}

	t, err := team.NewTask(req.Title, req.DueDate, team.TaskPriority(req.Priority), req.AssignedTo, req.LinkedEntity)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Store.AddTask(c.Request.Context(), t); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "task persist failed"})
		return
	}
	c.JSON(http.StatusCreated, t)
}

type taskStatusRequest struct {
	Status string `json:"status"`
}

func (h Handlers) AdvanceTask(c *gin.Context) {
	id := c.Param("task_id")
	t, ok := h.Store.FindTask(id)
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	var req taskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	updated, err := t.WithStatus(team.TaskStatus(req.Status))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if ok, err := h.Store.UpdateTask(c.Request.Context(), updated); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "task persist failed"})
		return
	} else if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// --- Leaves ---

func (h Handlers) ListLeaves(c *gin.Context) {
	leaves := h.Store.Leaves()
	c.JSON(http.StatusOK, gin.H{"leaves": leaves, "count": len(leaves)})
}

type createLeaveRequest struct {
	Type      string `json:"type"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

func (h Handlers) RequestLeave(c *gin.Context) {
	caller, ok := h.sessionUser(c)
	if !ok {
		return
	}

	var req createLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	l, err := team.NewLeaveRequest(caller.ID, team.LeaveType(req.Type), req.StartDate, req.EndDate, req.Reason)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Store.AddLeave(c.Request.Context(), l); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "leave persist failed"})
		return
	}
	c.JSON(http.StatusCreated, l)
}

type decideLeaveRequest struct {
	Status  string `json:"status"`
	Remarks string `json:"remarks"`
}

// DecideLeave approves or rejects a pending leave request. Decisions are
// final; a decided request cannot be reopened.
func (h Handlers) DecideLeave(c *gin.Context) {
	id := c.Param("leave_id")
	l, ok := h.Store.FindLeave(id)
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "leave request not found"})
		return
	}

	var req decideLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	decided, err := l.Decide(team.LeaveStatus(req.Status), req.Remarks)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, team.ErrAlreadyDecided) {
			status = http.StatusConflict
		}
		c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
		return
	}

	if ok, err := h.Store.UpdateLeave(c.Request.Context(), decided); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "leave persist failed"})
		return
	} else if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "leave request not found"})
		return
	}
	c.JSON(http.StatusOK, decided)
}
