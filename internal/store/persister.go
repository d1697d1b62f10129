package store

import "context"

// Record keys for the durable key-value mirror. Each record is one whole
// serialized collection; there is no partial write and no schema
// versioning.
const (
	RecordLeads       = "crm:leads"
	RecordUsers       = "crm:users"
	RecordCurrentUser = "crm:current_user"
	RecordTasks       = "crm:tasks"
	RecordLeaves      = "crm:leaves"
	RecordQuotations  = "crm:quotations"
	RecordInvoices    = "crm:invoices"
	RecordExpenses    = "crm:expenses"
)

// Persister abstracts the durable key-value storage behind the store.
// Implementations are dumb byte movers; serialization, corruption
// handling and reseeding belong to the store.
type Persister interface {
	// Load returns the record bytes, or ok=false when the record is absent.
	Load(ctx context.Context, record string) (data []byte, ok bool, err error)
	Save(ctx context.Context, record string, data []byte) error
	Delete(ctx context.Context, record string) error
}
