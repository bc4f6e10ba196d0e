package cart

import (
	"time"

	"storefront-backend/pkg/cache"
)

const (
	cartKeyPrefix = "cart:"
	cartTTL       = 7 * 24 * time.Hour
)

// CacheStorage persists carts in Redis so they survive restarts and are
// shared across instances. Keys expire after a week of inactivity.
type CacheStorage struct {
	cache *cache.Cache
}

func NewCacheStorage(c *cache.Cache) *CacheStorage {
	return &CacheStorage{cache: c}
}

func (s *CacheStorage) Load(token string) ([]byte, error) {
	return s.cache.GetRaw(cartKeyPrefix + token)
}

func (s *CacheStorage) Save(token string, data []byte) error {
	return s.cache.SetRaw(cartKeyPrefix+token, data, cartTTL)
}

func (s *CacheStorage) Delete(token string) error {
	return s.cache.Delete(cartKeyPrefix + token)
}
