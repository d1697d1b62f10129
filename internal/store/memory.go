package store

import (
	"context"
	"sync"
)

// MemoryPersister is an in-memory Persister for tests and local
// development without Redis.
type MemoryPersister struct {
	mu      sync.Mutex
	records map[string][]byte
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{records: map[string][]byte{}}
}

func (p *MemoryPersister) Load(ctx context.Context, record string) ([]byte, bool, error) {
	_ = ctx
	p.mu.Lock()
	defer p.mu.Unlock()
	data, ok := p.records[record]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

func (p *MemoryPersister) Save(ctx context.Context, record string, data []byte) error {
	_ = ctx
	p.mu.Lock()
	defer p.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	p.records[record] = stored
	return nil
}

func (p *MemoryPersister) Delete(ctx context.Context, record string) error {
	_ = ctx
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.records, record)
	return nil
}
