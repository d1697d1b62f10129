package team

// User is read-mostly reference data. Role gates which parts of the
// application a user can reach and whether lead views are scoped to
// their own assignments.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// Task is a lightweight follow-up item shown on the team board.
type Task struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	DueDate  string       `json:"dueDate"`
	Priority TaskPriority `json:"priority"`
	Status   TaskStatus   `json:"status"`

	// AssignedTo is a weak reference to a User id.
	AssignedTo string `json:"assignedTo"`

	// LinkedEntity is a free-text pointer (usually a lead name), not a
	// foreign key.
	LinkedEntity string `json:"linkedEntity,omitempty"`
}

type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "High"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityLow    TaskPriority = "Low"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

// LeaveRequest tracks time-off requests. Approval decisions are made by
// managers or admins and are final once applied.
type LeaveRequest struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Type      LeaveType   `json:"type"`
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
	Reason    string      `json:"reason"`
	Status    LeaveStatus `json:"status"`

	ApproverRemarks string `json:"approverRemarks,omitempty"`
}

type LeaveType string

const (
	LeaveTypeCasual LeaveType = "Casual"
	LeaveTypeSick   LeaveType = "Sick"
	LeaveTypePaid   LeaveType = "Paid"
	LeaveTypeUnpaid LeaveType = "Unpaid"
)

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "Pending"
	LeaveStatusApproved LeaveStatus = "Approved"
	LeaveStatusRejected LeaveStatus = "Rejected"
)
