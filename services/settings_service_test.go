package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsGetWithoutStoreReturnsDefaults(t *testing.T) {
	svc := NewSettingsService(nil)

	settings, err := svc.Get(context.Background(), "admin@example.com")
	require.NoError(t, err)

	assert.Equal(t, "Admin Dashboard", settings.CompanyName)
	assert.True(t, settings.Notifications.NewOrders)
	assert.Equal(t, "light", settings.Appearance.Theme)
	assert.Equal(t, "USD", settings.Payment.Currency)
	assert.Equal(t, "365", settings.DataRetention.RetentionDays)
}

func TestSettingsSaveWithoutStoreFails(t *testing.T) {
	svc := NewSettingsService(nil)

	settings, err := svc.Get(context.Background(), "admin@example.com")
	require.NoError(t, err)

	err = svc.Save(context.Background(), "admin@example.com", settings)
	assert.ErrorIs(t, err, ErrSettingsUnavailable)
}

func TestSettingsPatchRejectsUnknownSection(t *testing.T) {
	svc := NewSettingsService(nil)

	_, err := svc.Patch(context.Background(), "admin@example.com", "bogus", "key", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown settings section")
}

func TestSettingsPatchRejectsUnknownKey(t *testing.T) {
	svc := NewSettingsService(nil)

	_, err := svc.Patch(context.Background(), "admin@example.com", "notifications", "bogus", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown settings key")

	_, err = svc.Patch(context.Background(), "admin@example.com", "general", "bogus", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown settings key")
}

func TestSettingsPatchWithoutStoreCannotPersist(t *testing.T) {
	svc := NewSettingsService(nil)

	_, err := svc.Patch(context.Background(), "admin@example.com", "appearance", "theme", "dark")
	assert.ErrorIs(t, err, ErrSettingsUnavailable)
}
