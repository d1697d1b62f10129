package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"crm-platform/internal/billing"

	"github.com/gin-gonic/gin"
)

// --- Billing ---

func (h Handlers) ListQuotations(c *gin.Context) {
	quotes := h.Store.Quotations()
	c.JSON(http.StatusOK, gin.H{"quotations": quotes, "count": len(quotes)})
}

func (h Handlers) ListInvoices(c *gin.Context) {
	invoices := h.Store.Invoices()
	c.JSON(http.StatusOK, gin.H{"invoices": invoices, "count": len(invoices)})
}

type paymentRequest struct {
	Amount int64 `json:"amount"`
}

// RecordPayment applies a payment against an invoice. Partial payments are
// fine; overpaying or paying a settled invoice is rejected.
func (h Handlers) RecordPayment(c *gin.Context) {
	caller, ok := h.sessionUser(c)
	if !ok {
		return
	}
	id := c.Param("invoice_id")
	inv, ok := h.Store.FindInvoice(id)
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}

	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	paid, err := inv.RecordPayment(req.Amount)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, billing.ErrAlreadySettled) {
			status = http.StatusConflict
		}
		c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
		return
	}

	if ok, err := h.Store.UpdateInvoice(c.Request.Context(), paid); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "invoice persist failed"})
		return
	} else if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}

	h.record(c, h.Trail.LogPayment(c.Request.Context(), caller.ID, caller.Role, paid.ID, fmt.Sprintf("payment of %d recorded", req.Amount)))
	c.JSON(http.StatusOK, paid)
}

// --- Expenses ---

func (h Handlers) ListExpenses(c *gin.Context) {
	expenses := h.Store.Expenses()
	c.JSON(http.StatusOK, gin.H{"expenses": expenses, "count": len(expenses)})
}

type createExpenseRequest struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
	Date     string `json:"date"`
	Remarks  string `json:"remarks"`
}

func (h Handlers) CreateExpense(c *gin.Context) {
	caller, ok := h.sessionUser(c)
	if !ok {
		return
	}

	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	e, err := billing.NewExpense(billing.ExpenseCategory(req.Category), req.Amount, req.Date, caller.Name, req.Remarks)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Store.AddExpense(c.Request.Context(), e); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "expense persist failed"})
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h Handlers) ExpenseTotals(c *gin.Context) {
	totals := billing.TotalsByCategory(h.Store.Expenses())
	c.JSON(http.StatusOK, gin.H{"totals": totals})
}
