package billing

import "testing"

func TestRecordPaymentPartialThenFull(t *testing.T) {
	inv := Invoice{ID: "INV-201", Total: 45000, PaidAmount: 0, Status: InvoiceStatusUnpaid}

	partial, err := inv.RecordPayment(20000)
	if err != nil {
		t.Fatalf("partial payment: %v", err)
	}
	if partial.PaidAmount != 20000 || partial.Status != InvoiceStatusPartiallyPaid {
		t.Fatalf("unexpected partial state: %+v", partial)
	}
	if inv.PaidAmount != 0 {
		t.Fatalf("input invoice mutated: %+v", inv)
	}

	full, err := partial.RecordPayment(25000)
	if err != nil {
		t.Fatalf("final payment: %v", err)
	}
	if full.PaidAmount != 45000 || full.Status != InvoiceStatusPaid {
		t.Fatalf("unexpected settled state: %+v", full)
	}

	if _, err := full.RecordPayment(1); err != ErrAlreadySettled {
		t.Fatalf("expected ErrAlreadySettled, got %v", err)
	}
}

func TestRecordPaymentRejectsBadAmounts(t *testing.T) {
	inv := Invoice{Total: 1000, Status: InvoiceStatusUnpaid}

	if _, err := inv.RecordPayment(0); err != ErrInvalidArgument {
		t.Fatalf("expected ErrInvalidArgument for zero, got %v", err)
	}
	if _, err := inv.RecordPayment(-5); err != ErrInvalidArgument {
		t.Fatalf("expected ErrInvalidArgument for negative, got %v", err)
	}
	if _, err := inv.RecordPayment(1001); err != ErrInvalidArgument {
		t.Fatalf("expected ErrInvalidArgument for overpayment, got %v", err)
	}
}

func TestNewExpenseValidation(t *testing.T) {
	if _, err := NewExpense("Snacks", 500, "2024-05-01", "Arjun Mehta", ""); err != ErrInvalidArgument {
		t.Fatalf("expected ErrInvalidArgument for unknown category, got %v", err)
	}
	if _, err := NewExpense(ExpenseCategoryTravel, 0, "2024-05-01", "Arjun Mehta", ""); err != ErrInvalidArgument {
		t.Fatalf("expected ErrInvalidArgument for zero amount, got %v", err)
	}

	e, err := NewExpense(ExpenseCategoryMarketing, 5000, "2024-05-01", "Arjun Mehta", "Facebook Ad campaign")
	if err != nil {
		t.Fatalf("new expense: %v", err)
	}
	if e.ID == "" || e.Category != ExpenseCategoryMarketing {
		t.Fatalf("unexpected expense: %+v", e)
	}
}

func TestTotalsByCategoryOrderedByFirstSeen(t *testing.T) {
	expenses := []Expense{
		{Category: ExpenseCategoryMarketing, Amount: 5000},
		{Category: ExpenseCategoryTravel, Amount: 1200},
		{Category: ExpenseCategoryMarketing, Amount: 3000},
	}

	got := TotalsByCategory(expenses)
	if len(got) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(got))
	}
	if got[0].Category != ExpenseCategoryMarketing || got[0].Total != 8000 {
		t.Fatalf("unexpected first bucket: %+v", got[0])
	}
	if got[1].Category != ExpenseCategoryTravel || got[1].Total != 1200 {
		t.Fatalf("unexpected second bucket: %+v", got[1])
	}
}
