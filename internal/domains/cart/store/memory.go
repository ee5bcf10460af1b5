package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Axocidue/SportsStore/internal/domains/cart/model"
)

// MemoryStore keeps carts in process memory. Carts are stored in their
// serialized form so Get hands every caller an independent copy, matching
// the isolation the Redis store provides.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

func NewMemoryStore() StoreInterface {
	return &MemoryStore{carts: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*model.Cart, error) {
	s.mu.RLock()
	data, ok := s.carts[sessionID]
	s.mu.RUnlock()

	if !ok {
		return model.NewCart(), nil
	}

	cart := model.NewCart()
	if err := json.Unmarshal(data, cart); err != nil {
		return nil, fmt.Errorf("decode cart %s: %w", sessionID, err)
	}

	return cart, nil
}

func (s *MemoryStore) Save(ctx context.Context, sessionID string, cart *model.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart %s: %w", sessionID, err)
	}

	s.mu.Lock()
	s.carts[sessionID] = data
	s.mu.Unlock()

	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()

	return nil
}
