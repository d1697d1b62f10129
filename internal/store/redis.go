package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisPersister stores each record as a plain string key holding the
// whole serialized collection. No TTLs: records live until overwritten.
type RedisPersister struct {
	rdb *redis.Client
}

func NewRedisPersister(rdb *redis.Client) *RedisPersister {
	return &RedisPersister{rdb: rdb}
}

func (p *RedisPersister) Load(ctx context.Context, record string) ([]byte, bool, error) {
	data, err := p.rdb.Get(ctx, record).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load %s: %w", record, err)
	}
	return data, true, nil
}

func (p *RedisPersister) Save(ctx context.Context, record string, data []byte) error {
	if err := p.rdb.Set(ctx, record, data, 0).Err(); err != nil {
		return fmt.Errorf("save %s: %w", record, err)
	}
	return nil
}

func (p *RedisPersister) Delete(ctx context.Context, record string) error {
	if err := p.rdb.Del(ctx, record).Err(); err != nil {
		return fmt.Errorf("delete %s: %w", record, err)
	}
	return nil
}
