package service

import (
	"fmt"
	"time"

	"storefront-backend/internal/models"
	"storefront-backend/internal/repository"
	"storefront-backend/pkg/cache"
)

const (
	settingsCacheKey = "settings:all"
	settingsCacheTTL = 5 * time.Minute
)

// PublicSettingKeys are the keys exposed to the storefront without
// authentication (pixel ids, store identity, checkout base URL).
var PublicSettingKeys = []string{
	"store_name",
	"store_logo",
	"facebook_pixel_id",
	"checkout_base_url",
	"whatsapp_number",
	"free_shipping_threshold",
}

type SettingService struct {
	settingRepo repository.SettingRepository
	cache       *cache.Cache
}

func NewSettingService(settingRepo repository.SettingRepository, cacheService *cache.Cache) *SettingService {
	return &SettingService{settingRepo: settingRepo, cache: cacheService}
}

// All returns every setting as a key/value map.
func (s *SettingService) All() (map[string]string, error) {
	if s.cache != nil {
		var settings map[string]string
		if err := s.cache.Get(settingsCacheKey, &settings); err == nil {
			return settings, nil
		}
	}

	rows, err := s.settingRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}

	if s.cache != nil {
		s.cache.Set(settingsCacheKey, settings, settingsCacheTTL)
	}
	return settings, nil
}

// Public filters All down to the storefront-safe keys.
func (s *SettingService) Public() (map[string]string, error) {
	all, err := s.All()
	if err != nil {
		return nil, err
	}

	public := make(map[string]string, len(PublicSettingKeys))
	for _, key := range PublicSettingKeys {
		if value, ok := all[key]; ok {
			public[key] = value
		}
	}
	return public, nil
}

func (s *SettingService) Get(key string) (string, error) {
	setting, err := s.settingRepo.Get(key)
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// Update upserts the given keys and invalidates the cached map.
func (s *SettingService) Update(req models.UpdateSettingsRequest) error {
	for key, value := range req.Settings {
		if err := s.settingRepo.Set(key, value); err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}

	if s.cache != nil {
		s.cache.Delete(settingsCacheKey)
	}
	return nil
}
