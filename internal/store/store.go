package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"crm-platform/internal/billing"
	"crm-platform/internal/lead"
	"crm-platform/internal/team"
)

// Store is the sole owner of the authoritative in-memory collections and
// the single writer to durable storage. Every mutation serializes the
// whole affected collection and overwrites its record.
//
// All writes are serialized by one mutex; reads hand out snapshot copies.
// Mutations either fully succeed (new state committed and persisted) or
// fully fail (in-memory state rolled back), so no error leaves a
// collection partially updated.
type Store struct {
	mu        sync.Mutex
	persister Persister
	log       *slog.Logger

	leads      []lead.Lead
	users      []team.User
	tasks      []team.Task
	leaves     []team.LeaveRequest
	quotations []billing.Quotation
	invoices   []billing.Invoice
	expenses   []billing.Expense

	currentUser *team.User
}

// Open reads every persisted record, falling back to the seed dataset for
// any record that is absent or unreadable. This is the only read of
// durable state; afterwards the in-memory collections are authoritative.
func Open(ctx context.Context, p Persister, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{persister: p, log: log}

	if err := loadOrSeed(ctx, s, RecordLeads, &s.leads, seedLeads); err != nil {
		return nil, err
	}
	if err := loadOrSeed(ctx, s, RecordUsers, &s.users, seedUsers); err != nil {
		return nil, err
	}
	if err := loadOrSeed(ctx, s, RecordTasks, &s.tasks, seedTasks); err != nil {
		return nil, err
	}
	if err := loadOrSeed(ctx, s, RecordLeaves, &s.leaves, seedLeaves); err != nil {
		return nil, err
	}
	if err := loadOrSeed(ctx, s, RecordQuotations, &s.quotations, seedQuotations); err != nil {
		return nil, err
	}
	if err := loadOrSeed(ctx, s, RecordInvoices, &s.invoices, seedInvoices); err != nil {
		return nil, err
	}
	if err := loadOrSeed(ctx, s, RecordExpenses, &s.expenses, seedExpenses); err != nil {
		return nil, err
	}

	var u team.User
	ok, err := s.loadRecord(ctx, RecordCurrentUser, &u)
	if err != nil {
		return nil, err
	}
	if ok {
		s.currentUser = &u
	}

	return s, nil
}

// loadOrSeed fills dst from the record, or from seed when the record is
// absent or malformed. A reseed is persisted immediately so the durable
// mirror matches memory again; the data loss is accepted and logged.
func loadOrSeed[T any](ctx context.Context, s *Store, record string, dst *[]T, seed func() []T) error {
	ok, err := s.loadRecord(ctx, record, dst)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	*dst = seed()
	return s.saveRecord(ctx, record, *dst)
}

func (s *Store) loadRecord(ctx context.Context, record string, v any) (bool, error) {
	data, ok, err := s.persister.Load(ctx, record)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		// Corrupted or incompatible record: treat as absent, never crash.
		s.log.Warn("discarding malformed persisted record", "record", record, "err", err)
		return false, nil
	}
	return true, nil
}

func (s *Store) saveRecord(ctx context.Context, record string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", record, err)
	}
	return s.persister.Save(ctx, record, data)
}

/* ----- leads ----- */

// Leads returns a snapshot copy in canonical display order
// (most-recent-first).
func (s *Store) Leads() []lead.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]lead.Lead, len(s.leads))
	copy(out, s.leads)
	return out
}

func (s *Store) FindLead(id string) (lead.Lead, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.leads {
		if l.ID == id {
			return l, true
		}
	}
	return lead.Lead{}, false
}

// AddLead inserts at the front of the collection. A duplicate phone
// number rejects the insert without mutating anything.
func (s *Store) AddLead(ctx context.Context, l lead.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.leads {
		if existing.PhoneNumber == l.PhoneNumber {
			return lead.ErrDuplicatePhone
		}
	}

	prev := s.leads
	s.leads = append([]lead.Lead{l}, s.leads...)
	if err := s.saveRecord(ctx, RecordLeads, s.leads); err != nil {
		s.leads = prev
		return err
	}
	return nil
}

// UpdateLead replaces the entry matching the lead's id. A missing id is a
// silent no-op: it only happens on stale references after a reload, which
// is benign. Returns whether a replacement happened.
func (s *Store) UpdateLead(ctx context.Context, l lead.Lead) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, existing := range s.leads {
		if existing.ID == l.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	prev := s.leads[idx]
	s.leads[idx] = l
	if err := s.saveRecord(ctx, RecordLeads, s.leads); err != nil {
		s.leads[idx] = prev
		return false, err
	}
	return true, nil
}

/* ----- users & session record ----- */

func (s *Store) Users() []team.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]team.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) FindUser(id string) (team.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return team.User{}, false
}

// SetCurrentUser persists the selected user as its own whole record.
func (s *Store) SetCurrentUser(ctx context.Context, u team.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.currentUser
	s.currentUser = &u
	if err := s.saveRecord(ctx, RecordCurrentUser, u); err != nil {
		s.currentUser = prev
		return err
	}
	return nil
}

func (s *Store) CurrentUser() (team.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return team.User{}, false
	}
	return *s.currentUser, true
}

func (s *Store) ClearCurrentUser(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.currentUser
	s.currentUser = nil
	if err := s.persister.Delete(ctx, RecordCurrentUser); err != nil {
		s.currentUser = prev
		return err
	}
	return nil
}

/* ----- tasks ----- */

func (s *Store) Tasks() []team.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]team.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) AddTask(ctx context.Context, t team.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.tasks
	s.tasks = append([]team.Task{t}, s.tasks...)
	if err := s.saveRecord(ctx, RecordTasks, s.tasks); err != nil {
		s.tasks = prev
		return err
	}
	return nil
}

func (s *Store) UpdateTask(ctx context.Context, t team.Task) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.tasks {
		if existing.ID == t.ID {
			prev := s.tasks[i]
			s.tasks[i] = t
			if err := s.saveRecord(ctx, RecordTasks, s.tasks); err != nil {
				s.tasks[i] = prev
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) FindTask(id string) (team.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return team.Task{}, false
}

/* ----- leaves ----- */

func (s *Store) Leaves() []team.LeaveRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]team.LeaveRequest, len(s.leaves))
	copy(out, s.leaves)
	return out
}

func (s *Store) FindLeave(id string) (team.LeaveRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.leaves {
		if l.ID == id {
			return l, true
		}
	}
	return team.LeaveRequest{}, false
}

func (s *Store) AddLeave(ctx context.Context, l team.LeaveRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.leaves
	s.leaves = append([]team.LeaveRequest{l}, s.leaves...)
	if err := s.saveRecord(ctx, RecordLeaves, s.leaves); err != nil {
		s.leaves = prev
		return err
	}
	return nil
}

func (s *Store) UpdateLeave(ctx context.Context, l team.LeaveRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.leaves {
		if existing.ID == l.ID {
			prev := s.leaves[i]
			s.leaves[i] = l
			if err := s.saveRecord(ctx, RecordLeaves, s.leaves); err != nil {
				s.leaves[i] = prev
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

/* ----- billing ----- */

func (s *Store) Quotations() []billing.Quotation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]billing.Quotation, len(s.quotations))
	copy(out, s.quotations)
	return out
}

func (s *Store) Invoices() []billing.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]billing.Invoice, len(s.invoices))
	copy(out, s.invoices)
	return out
}

func (s *Store) FindInvoice(id string) (billing.Invoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv, true
		}
	}
	return billing.Invoice{}, false
}

func (s *Store) UpdateInvoice(ctx context.Context, inv billing.Invoice) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.invoices {
		if existing.ID == inv.ID {
			prev := s.invoices[i]
			s.invoices[i] = inv
			if err := s.saveRecord(ctx, RecordInvoices, s.invoices); err != nil {
				s.invoices[i] = prev
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) Expenses() []billing.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]billing.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

func (s *Store) AddExpense(ctx context.Context, e billing.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.expenses
	s.expenses = append([]billing.Expense{e}, s.expenses...)
	if err := s.saveRecord(ctx, RecordExpenses, s.expenses); err != nil {
		s.expenses = prev
		return err
	}
	return nil
}

/* ----- admin ----- */

// Reseed discards every collection and reinstalls the seed dataset. The
// current-user record is left alone so active sessions survive.
func (s *Store) Reseed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leads = seedLeads()
	s.users = seedUsers()
	s.tasks = seedTasks()
	s.leaves = seedLeaves()
	s.quotations = seedQuotations()
	s.invoices = seedInvoices()
	s.expenses = seedExpenses()

	records := []struct {
		record string
		value  any
	}{
		{RecordLeads, s.leads},
		{RecordUsers, s.users},
		{RecordTasks, s.tasks},
		{RecordLeaves, s.leaves},
		{RecordQuotations, s.quotations},
		{RecordInvoices, s.invoices},
		{RecordExpenses, s.expenses},
	}
	for _, r := range records {
		if err := s.saveRecord(ctx, r.record, r.value); err != nil {
			return err
		}
	}
	return nil
}
