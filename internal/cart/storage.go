package cart

import "sync"

// Storage is the durable backing for serialized carts, keyed by cart
// token. Load returns (nil, nil) when no value exists. Implementations
// must tolerate concurrent access.
type Storage interface {
	Load(token string) ([]byte, error)
	Save(token string, data []byte) error
	Delete(token string) error
}

// MemoryStorage is the in-process fallback used when Redis is disabled,
// and the fixture used by tests.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string][]byte)}
}

func (s *MemoryStorage) Load(token string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.values[token]
	if !ok {
		return nil, nil
	}

	copied := make([]byte, len(data))
	copy(copied, data)
	return copied, nil
}

func (s *MemoryStorage) Save(token string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]byte, len(data))
	copy(copied, data)
	s.values[token] = copied
	return nil
}

func (s *MemoryStorage) Delete(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, token)
	return nil
}
