package sections

import "math"

func stringSetting(settings map[string]interface{}, key, fallback string) string {
	if settings == nil {
		return fallback
	}
	if v, ok := settings[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func intSetting(settings map[string]interface{}, key string, fallback int) int {
	if settings == nil {
		return fallback
	}
	switch v := settings[key].(type) {
	case int:
		return v
	case float64:
		if v == math.Trunc(v) {
			return int(v)
		}
	}
	return fallback
}

func boolSetting(settings map[string]interface{}, key string, fallback bool) bool {
	if settings == nil {
		return fallback
	}
	if v, ok := settings[key].(bool); ok {
		return v
	}
	return fallback
}
