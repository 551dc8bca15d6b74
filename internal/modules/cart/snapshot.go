package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SnapshotStore persists cart state between requests. Load returns nil when
// no snapshot exists for the id.
type SnapshotStore interface {
	Load(ctx context.Context, cartID string) (*Cart, error)
	Save(ctx context.Context, cartID string, c *Cart) error
	Delete(ctx context.Context, cartID string) error
}

const (
	keyPrefix   = "cart:"
	snapshotTTL = 30 * 24 * time.Hour // matches the cart cookie lifetime
)

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Load(ctx context.Context, cartID string) (*Cart, error) {
	raw, err := s.rdb.Get(ctx, keyPrefix+cartID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart %s: %w", cartID, err)
	}
	var c Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode cart %s: %w", cartID, err)
	}
	return &c, nil
}

func (s *RedisStore) Save(ctx context.Context, cartID string, c *Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, keyPrefix+cartID, raw, snapshotTTL).Err(); err != nil {
		return fmt.Errorf("save cart %s: %w", cartID, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, cartID string) error {
	if err := s.rdb.Del(ctx, keyPrefix+cartID).Err(); err != nil {
		return fmt.Errorf("delete cart %s: %w", cartID, err)
	}
	return nil
}

// MemoryStore backs tests and single-process development.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, cartID string) (*Cart, error) {
	s.mu.RLock()
	raw, ok := s.carts[cartID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var c Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *MemoryStore) Save(_ context.Context, cartID string, c *Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.carts[cartID] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, cartID string) error {
	s.mu.Lock()
	delete(s.carts, cartID)
	s.mu.Unlock()
	return nil
}
