package billing

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidArgument = errors.New("billing: invalid argument")
	ErrAlreadySettled  = errors.New("billing: invoice already settled")
)

// RecordPayment returns a copy of the invoice with the payment applied.
// Paid status is derived: a fully collected invoice is Paid, anything in
// between is Partially Paid. Overpayment is rejected rather than clamped
// so the books never show collections above the billed total.
func (i Invoice) RecordPayment(amount int64) (Invoice, error) {
	if amount <= 0 {
		return Invoice{}, ErrInvalidArgument
	}
	if i.Status == InvoiceStatusPaid {
		return Invoice{}, ErrAlreadySettled
	}
	if i.PaidAmount+amount > i.Total {
		return Invoice{}, ErrInvalidArgument
	}

	i.PaidAmount += amount
	if i.PaidAmount == i.Total {
		i.Status = InvoiceStatusPaid
	} else {
		i.Status = InvoiceStatusPartiallyPaid
	}
	return i, nil
}

// NewExpense builds a recorded expense entry.
func NewExpense(category ExpenseCategory, amount int64, date, paidBy, remarks string) (Expense, error) {
	if !IsValidExpenseCategory(category) {
		return Expense{}, ErrInvalidArgument
	}
	if amount <= 0 || date == "" || paidBy == "" {
		return Expense{}, ErrInvalidArgument
	}
	return Expense{
		ID:       uuid.NewString(),
		Category: category,
		Amount:   amount,
		Date:     date,
		PaidBy:   paidBy,
		Remarks:  remarks,
	}, nil
}

// CategoryTotal is an expense rollup bucket, ordered by first appearance
// in the collection.
type CategoryTotal struct {
	Category ExpenseCategory `json:"category"`
	Total    int64           `json:"total"`
}

func TotalsByCategory(expenses []Expense) []CategoryTotal {
	out := []CategoryTotal{}
	idx := map[ExpenseCategory]int{}
	for _, e := range expenses {
		if i, ok := idx[e.Category]; ok {
			out[i].Total += e.Amount
			continue
		}
		idx[e.Category] = len(out)
		out = append(out, CategoryTotal{Category: e.Category, Total: e.Amount})
	}
	return out
}
