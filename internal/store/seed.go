package store

import (
	"time"

	"crm-platform/internal/billing"
	"crm-platform/internal/lead"
	"crm-platform/internal/rbac"
	"crm-platform/internal/team"
)

// Seed fixtures installed when a durable record is absent or unreadable.
// They mirror the demo dataset the application ships with.

func seedUsers() []team.User {
	return []team.User{
		{ID: "u1", Name: "Arjun Mehta", Email: "arjun@crm.com", Role: rbac.RoleAdmin},
		{ID: "u2", Name: "Priya Sharma", Email: "priya@crm.com", Role: rbac.RoleSalesManager},
		{ID: "u3", Name: "Rahul Gupta", Email: "rahul@crm.com", Role: rbac.RoleSalesExecutive},
		{ID: "u4", Name: "Anjali Nair", Email: "anjali@crm.com", Role: rbac.RoleSalesExecutive},
	}
}

func seedLeads() []lead.Lead {
	return []lead.Lead{
		{
			ID:          "L1",
			PhoneNumber: "+91 9876543210",
			Name:        "Rajesh Kumar",
			Source:      lead.SourceIndiaMART,
			Status:      lead.StatusNew,
			Stage:       "New",
			AssignedTo:  "u3",
			AIScore:     8,
			AISummary:   "High intent buyer looking for bulk furniture for new office setup in Bangalore.",
			Notes: []lead.Note{
				{
					ID:        "n1",
					Text:      "System created lead from IndiaMart inquiry.",
					CreatedAt: time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC),
					Author:    "System",
				},
			},
			WorkedFlag:     false,
			CreatedAt:      time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC),
			LastActivityAt: time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:          "L2",
			PhoneNumber: "+91 9123456789",
			Name:        "Suresh Raina",
			Source:      lead.SourceWhatsApp,
			Status:      lead.StatusContacted,
			Stage:       "Contacted",
			AssignedTo:  "u3",
			AIScore:     5,
			AISummary:   "Interested in general pricing, seems to be window shopping for now.",
			Notes: []lead.Note{
				{
					ID:        "n2",
					Text:      "Spoke over WhatsApp. Shared brochure.",
					CreatedAt: time.Date(2024, 5, 9, 14, 0, 0, 0, time.UTC),
					Author:    "Rahul Gupta",
				},
			},
			WorkedFlag:     true,
			CreatedAt:      time.Date(2024, 5, 8, 9, 0, 0, 0, time.UTC),
			LastActivityAt: time.Date(2024, 5, 9, 14, 0, 0, 0, time.UTC),
		},
		{
			ID:             "L3",
			PhoneNumber:    "+91 8887776665",
			Name:           "Meena Iyer",
			Source:         lead.SourceMissedCall,
			Status:         lead.StatusNew,
			Stage:          "New",
			AssignedTo:     "u4",
			AIScore:        9,
			AISummary:      "Repeat customer inquiry. Highly likely to convert if handled quickly.",
			Notes:          []lead.Note{},
			WorkedFlag:     false,
			CreatedAt:      time.Date(2024, 5, 11, 11, 30, 0, 0, time.UTC),
			LastActivityAt: time.Date(2024, 5, 11, 11, 30, 0, 0, time.UTC),
		},
	}
}

func seedTasks() []team.Task {
	return []team.Task{
		{ID: "t1", Title: "Follow up with Rajesh", DueDate: "2024-05-12", Priority: team.TaskPriorityHigh, Status: team.TaskStatusPending, AssignedTo: "u3", LinkedEntity: "Rajesh Kumar"},
		{ID: "t2", Title: "Prepare Quote for Amit", DueDate: "2024-05-13", Priority: team.TaskPriorityMedium, Status: team.TaskStatusInProgress, AssignedTo: "u3", LinkedEntity: "Amit Patel"},
	}
}

func seedLeaves() []team.LeaveRequest {
	return []team.LeaveRequest{
		{ID: "lv1", UserID: "u3", Type: team.LeaveTypeSick, StartDate: "2024-05-15", EndDate: "2024-05-16", Reason: "Viral fever", Status: team.LeaveStatusApproved},
	}
}

func seedQuotations() []billing.Quotation {
	return []billing.Quotation{
		{
			ID:         "Q101",
			ClientID:   "L4",
			ClientName: "Amit Patel",
			Items:      []billing.LineItem{{Name: "Office Chairs", Qty: 10, Rate: 4500}},
			Total:      45000,
			Status:     billing.QuoteStatusSent,
			ValidUntil: "2024-06-01",
		},
	}
}

func seedInvoices() []billing.Invoice {
	return []billing.Invoice{
		{ID: "INV-201", QuotationID: "Q101", ClientName: "Amit Patel", Total: 45000, PaidAmount: 20000, DueDate: "2024-05-30", Status: billing.InvoiceStatusPartiallyPaid},
	}
}

func seedExpenses() []billing.Expense {
	return []billing.Expense{
		{ID: "e1", Category: billing.ExpenseCategoryMarketing, Amount: 5000, Date: "2024-05-01", PaidBy: "Arjun Mehta", Remarks: "Facebook Ad campaign"},
	}
}
