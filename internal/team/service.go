package team

import (
	"errors"

	"crm-platform/internal/rbac"

	"github.com/google/uuid"
)

var (
	ErrInvalidArgument = errors.New("team: invalid argument")
	ErrAlreadyDecided  = errors.New("team: leave request already decided")
)

// Members returns the users shown on the team board: everyone except
// admins, in collection order.
func Members(users []User) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		if rbac.IsAdmin(u.Role) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// NewTask builds a pending task. DueDate is a display string (YYYY-MM-DD);
// no scheduling is derived from it.
func NewTask(title, dueDate string, priority TaskPriority, assignedTo, linkedEntity string) (Task, error) {
	if title == "" || assignedTo == "" {
		return Task{}, ErrInvalidArgument
	}
	switch priority {
	case TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
	default:
		return Task{}, ErrInvalidArgument
	}
	return Task{
		ID:           uuid.NewString(),
		Title:        title,
		DueDate:      dueDate,
		Priority:     priority,
		Status:       TaskStatusPending,
		AssignedTo:   assignedTo,
		LinkedEntity: linkedEntity,
	}, nil
}

// WithStatus returns a copy of the task moved to the given status.
func (t Task) WithStatus(status TaskStatus) (Task, error) {
	switch status {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
	default:
		return Task{}, ErrInvalidArgument
	}
	t.Status = status
	return t, nil
}

// NewLeaveRequest builds a pending leave request for the given user.
func NewLeaveRequest(userID string, typ LeaveType, startDate, endDate, reason string) (LeaveRequest, error) {
	if userID == "" || startDate == "" || endDate == "" {
		return LeaveRequest{}, ErrInvalidArgument
	}
	switch typ {
	case LeaveTypeCasual, LeaveTypeSick, LeaveTypePaid, LeaveTypeUnpaid:
	default:
		return LeaveRequest{}, ErrInvalidArgument
	}
	return LeaveRequest{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      typ,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    reason,
		Status:    LeaveStatusPending,
	}, nil
}

// Decide applies an approval decision to a pending leave request.
// Decisions are final: a request that is already approved or rejected
// cannot be decided again.
func (l LeaveRequest) Decide(status LeaveStatus, remarks string) (LeaveRequest, error) {
	if status != LeaveStatusApproved && status != LeaveStatusRejected {
		return LeaveRequest{}, ErrInvalidArgument
	}
	if l.Status != LeaveStatusPending {
		return LeaveRequest{}, ErrAlreadyDecided
	}
	l.Status = status
	l.ApproverRemarks = remarks
	return l, nil
}
