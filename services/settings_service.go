package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gemstone-admin/models"

	"github.com/redis/go-redis/v9"
)

var ErrSettingsUnavailable = errors.New("settings store unavailable")

// SettingsService persists per-admin dashboard preferences in Redis. Business
// data never lives here; the upstream backend stays the sole persistence
// authority for everything else.
type SettingsService struct {
	store *redis.Client
}

func NewSettingsService(store *redis.Client) *SettingsService {
	return &SettingsService{store: store}
}

func settingsKey(adminEmail string) string {
	return "settings:" + adminEmail
}

// Get loads the settings record, falling back to defaults when nothing was
// saved yet or no store is configured.
func (s *SettingsService) Get(ctx context.Context, adminEmail string) (models.Settings, error) {
	settings := models.DefaultSettings()
	if s.store == nil {
		return settings, nil
	}

	raw, err := s.store.Get(ctx, settingsKey(adminEmail)).Result()
	if err == redis.Nil {
		return settings, nil
	}
	if err != nil {
		return settings, err
	}

	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return models.DefaultSettings(), nil
	}
	return settings, nil
}

// Save stores the whole settings record.
func (s *SettingsService) Save(ctx context.Context, adminEmail string, settings models.Settings) error {
	if s.store == nil {
		return ErrSettingsUnavailable
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, settingsKey(adminEmail), string(raw), 0).Err()
}

// Patch updates a single key inside one section, mirroring the
// updateSetting(section, key, value) semantics of the settings screen.
func (s *SettingsService) Patch(ctx context.Context, adminEmail, section, key string, value interface{}) (models.Settings, error) {
	settings, err := s.Get(ctx, adminEmail)
	if err != nil {
		return settings, err
	}

	raw, err := json.Marshal(settings)
	if err != nil {
		return settings, err
	}

	var tree map[string]interface{}
	if err := json.Unmarshal(raw, &tree); err != nil {
		return settings, err
	}

	// The general section lives at the top level of the record.
	if section == "general" {
		if _, ok := tree[key]; !ok {
			return settings, fmt.Errorf("unknown settings key: %s.%s", section, key)
		}
		tree[key] = value
		return s.finishPatch(ctx, adminEmail, tree, section, key)
	}

	sub, ok := tree[section].(map[string]interface{})
	if !ok {
		return settings, fmt.Errorf("unknown settings section: %s", section)
	}
	if _, ok := sub[key]; !ok {
		return settings, fmt.Errorf("unknown settings key: %s.%s", section, key)
	}
	sub[key] = value

	return s.finishPatch(ctx, adminEmail, tree, section, key)
}

func (s *SettingsService) finishPatch(ctx context.Context, adminEmail string, tree map[string]interface{}, section, key string) (models.Settings, error) {
	var settings models.Settings

	patched, err := json.Marshal(tree)
	if err != nil {
		return settings, err
	}
	if err := json.Unmarshal(patched, &settings); err != nil {
		return settings, fmt.Errorf("invalid value for %s.%s", section, key)
	}

	if err := s.Save(ctx, adminEmail, settings); err != nil {
		return settings, err
	}
	return settings, nil
}
