// Package cart holds the shopper's purchasable selection. The cart keeps
// at most one item: the checkout handoff is a redirect to a per-product
// external payment URL, so adding replaces instead of merging.
package cart

import (
	"encoding/json"
	"errors"
	"sync"

	"storefront-backend/internal/models"
	"storefront-backend/pkg/logger"
)

// Item is one selected product with its chosen size and, for kit
// products, the chosen color ids.
type Item struct {
	Product  models.Product `json:"product"`
	Size     string         `json:"size"`
	Colors   []string       `json:"colors,omitempty"`
	Quantity int            `json:"quantity"`
}

var ErrIndexOutOfRange = errors.New("cart index out of range")

// Store owns all carts, keyed by cart token. The in-memory copy is the
// source of truth; every mutation is flushed synchronously to the durable
// storage, and storage failures are swallowed so the mutation still wins
// in memory. Created once at application start.
type Store struct {
	mu      sync.Mutex
	storage Storage
	carts   map[string][]Item
}

func NewStore(storage Storage) *Store {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	return &Store{
		storage: storage,
		carts:   make(map[string][]Item),
	}
}

// Items returns the cart for a token, hydrating it from storage the first
// time the token is seen. A missing or unparseable stored value degrades
// to an empty cart.
func (s *Store) Items(token string) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyItems(s.hydrate(token))
}

// Add replaces the whole cart with the given item and persists the result.
func (s *Store) Add(token string, item Item) []Item {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.hydrate(token)
	s.carts[token] = []Item{item}
	s.persist(token)

	return copyItems(s.carts[token])
}

// RemoveAt removes the item at the given position. An empty cart stays
// empty; it does not trigger any navigation or cleanup.
func (s *Store) RemoveAt(token string, index int) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.hydrate(token)
	if index < 0 || index >= len(items) {
		return copyItems(items), ErrIndexOutOfRange
	}

	s.carts[token] = append(items[:index], items[index+1:]...)
	s.persist(token)

	return copyItems(s.carts[token]), nil
}

// Clear empties the cart for a token.
func (s *Store) Clear(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[token] = nil
	if err := s.storage.Delete(token); err != nil {
		logger.Debug("Failed to delete persisted cart", map[string]interface{}{"error": err.Error()})
	}
}

// hydrate loads the persisted cart for an unseen token. Callers must hold
// the store mutex.
func (s *Store) hydrate(token string) []Item {
	if items, ok := s.carts[token]; ok {
		return items
	}

	var items []Item
	data, err := s.storage.Load(token)
	if err != nil {
		logger.Debug("Failed to load persisted cart", map[string]interface{}{"error": err.Error()})
	} else if len(data) > 0 {
		if err := json.Unmarshal(data, &items); err != nil {
			// Corrupt storage is not an error condition: degrade to empty.
			items = nil
		}
	}

	s.carts[token] = items
	return items
}

// persist flushes the in-memory cart to storage. Best effort: quota or
// serialization failures do not undo the mutation.
func (s *Store) persist(token string) {
	data, err := json.Marshal(s.carts[token])
	if err != nil {
		logger.Debug("Failed to serialize cart", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.storage.Save(token, data); err != nil {
		logger.Debug("Failed to persist cart", map[string]interface{}{"error": err.Error()})
	}
}

func copyItems(items []Item) []Item {
	copied := make([]Item, len(items))
	copy(copied, items)
	return copied
}
