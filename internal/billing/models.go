package billing

// Amounts are whole currency units (INR); the application records billing
// documents, it does not do money movement.

// LineItem is one row of a quotation.
type LineItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
	Rate int64  `json:"rate"`
}

// Quotation is a priced offer sent to a client. ClientID is a weak
// reference to a lead id.
type Quotation struct {
	ID         string      `json:"id"`
	ClientID   string      `json:"clientId"`
	ClientName string      `json:"clientName"`
	Items      []LineItem  `json:"items"`
	Total      int64       `json:"total"`
	Status     QuoteStatus `json:"status"`
	ValidUntil string      `json:"validUntil"`
}

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "Draft"
	QuoteStatusSent     QuoteStatus = "Sent"
	QuoteStatusAccepted QuoteStatus = "Accepted"
	QuoteStatusRejected QuoteStatus = "Rejected"
)

// Invoice tracks what has been billed and collected against a quotation.
type Invoice struct {
	ID          string        `json:"id"`
	QuotationID string        `json:"quotationId"`
	ClientName  string        `json:"clientName"`
	Total       int64         `json:"total"`
	PaidAmount  int64         `json:"paidAmount"`
	DueDate     string        `json:"dueDate"`
	Status      InvoiceStatus `json:"status"`
}

type InvoiceStatus string

const (
	InvoiceStatusUnpaid        InvoiceStatus = "Unpaid"
	InvoiceStatusPartiallyPaid InvoiceStatus = "Partially Paid"
	InvoiceStatusPaid          InvoiceStatus = "Paid"
	InvoiceStatusOverdue       InvoiceStatus = "Overdue"
)

// Expense is a recorded outgoing cost.
type Expense struct {
	ID       string          `json:"id"`
	Category ExpenseCategory `json:"category"`
	Amount   int64           `json:"amount"`
	Date     string          `json:"date"`
	PaidBy   string          `json:"paidBy"`
	Remarks  string          `json:"remarks"`
}

type ExpenseCategory string

const (
	ExpenseCategoryMarketing  ExpenseCategory = "Marketing"
	ExpenseCategoryOperations ExpenseCategory = "Operations"
	ExpenseCategorySalaries   ExpenseCategory = "Salaries"
	ExpenseCategoryTravel     ExpenseCategory = "Travel"
	ExpenseCategorySoftware   ExpenseCategory = "Software"
	ExpenseCategoryOther      ExpenseCategory = "Other"
)

func IsValidExpenseCategory(c ExpenseCategory) bool {
	switch c {
	case ExpenseCategoryMarketing, ExpenseCategoryOperations, ExpenseCategorySalaries,
		ExpenseCategoryTravel, ExpenseCategorySoftware, ExpenseCategoryOther:
		return true
	default:
		return false
	}
}
