package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/dmitrijs2005/moviegate/internal/common"
)

// MemStore is an in-memory ObjectStore used in tests and local development.
type MemStore struct {
	mu      sync.RWMutex
	buckets map[string]map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{buckets: make(map[string]map[string][]byte)}
}

func (m *MemStore) Put(ctx context.Context, bucket, key string, body []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.buckets[bucket]
	if !ok {
		b = make(map[string][]byte)
		m.buckets[bucket] = b
	}

	cp := make([]byte, len(body))
	copy(cp, body)
	b[key] = cp
	return nil
}

func (m *MemStore) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	body, ok := m.buckets[bucket][key]
	if !ok {
		return nil, fmt.Errorf("object %s/%s: %w", bucket, key, common.ErrorNotFound)
	}

	cp := make([]byte, len(body))
	copy(cp, body)
	return cp, nil
}

func (m *MemStore) List(ctx context.Context, bucket string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var keys []string
	for k := range m.buckets[bucket] {
		keys = append(keys, k)
	}
	// keeps test output deterministic; real buckets make no such promise
	sort.Strings(keys)
	return keys, nil
}

func (m *MemStore) Delete(ctx context.Context, bucket, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.buckets[bucket], key)
	return nil
}
