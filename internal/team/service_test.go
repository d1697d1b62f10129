package team

import (
	"testing"

	"crm-platform/internal/rbac"
)

func TestMembersExcludesAdmins(t *testing.T) {
	users := []User{
		{ID: "u1", Role: rbac.RoleAdmin},
		{ID: "u2", Role: rbac.RoleSalesManager},
		{ID: "u3", Role: rbac.RoleSalesExecutive},
	}
	got := Members(users)
	if len(got) != 2 {
		t.Fatalf("expected 2 members, got %d", len(got))
	}
	if got[0].ID != "u2" || got[1].ID != "u3" {
		t.Fatalf("unexpected members: %+v", got)
	}
}

func TestNewTaskValidation(t *testing.T) {
	if _, err := NewTask("", "2024-05-12", TaskPriorityHigh, "u3", ""); err != ErrInvalidArgument {
		t.Fatalf("expected ErrInvalidArgument for empty title, got %v", err)
	}
	if _, err := NewTask("Follow up", "2024-05-12", TaskPriority("Urgent"), "u3", ""); err != ErrInvalidArgument {
		t.Fatalf("expected ErrInvalidArgument for unknown priority, got %v", err)
	}

	task, err := NewTask("Follow up", "2024-05-12", TaskPriorityHigh, "u3", "Rajesh Kumar")
	if err != nil {
		t.Fatalf("new task: %v", err)
	}
	if task.ID == "" {
		t.Fatalf("expected generated id")
	}
	if task.Status != TaskStatusPending {
		t.Fatalf("expected pending status, got %q", task.Status)
	}
}

func TestTaskWithStatus(t *testing.T) {
	task, err := NewTask("Prepare quote", "2024-05-13", TaskPriorityMedium, "u3", "")
	if err != nil {
		t.Fatalf("new task: %v", err)
	}

	moved, err := task.WithStatus(TaskStatusCompleted)
	if err != nil {
		t.Fatalf("with status: %v", err)
	}
	if moved.Status != TaskStatusCompleted {
		t.Fatalf("expected completed, got %q", moved.Status)
	}
	if task.Status != TaskStatusPending {
		t.Fatalf("original task mutated: %q", task.Status)
	}

	if _, err := task.WithStatus(TaskStatus("Done")); err != ErrInvalidArgument {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestLeaveDecisionIsFinal(t *testing.T) {
	req, err := NewLeaveRequest("u3", LeaveTypeSick, "2024-05-15", "2024-05-16", "Viral fever")
	if err != nil {
		t.Fatalf("new leave: %v", err)
	}
	if req.Status != LeaveStatusPending {
		t.Fatalf("expected pending, got %q", req.Status)
	}

	approved, err := req.Decide(LeaveStatusApproved, "Take rest")
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if approved.Status != LeaveStatusApproved || approved.ApproverRemarks != "Take rest" {
		t.Fatalf("unexpected decision: %+v", approved)
	}

	if _, err := approved.Decide(LeaveStatusRejected, ""); err != ErrAlreadyDecided {
		t.Fatalf("expected ErrAlreadyDecided, got %v", err)
	}
	if _, err := req.Decide(LeaveStatusPending, ""); err != ErrInvalidArgument {
		t.Fatalf("expected ErrInvalidArgument for pending decision, got %v", err)
	}
}
