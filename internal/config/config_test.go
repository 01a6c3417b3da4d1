package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.DiscordToken)
	assert.Equal(t, "datastore.json", cfg.StoragePath)
	assert.Equal(t, ":5000", cfg.KeepAliveAddr)
	assert.Equal(t, "https://v3.football.api-sports.io", cfg.FootballAPIURL)
	assert.Equal(t, 1440, cfg.MaxReminderMin)
	assert.True(t, cfg.InitSlashCommands)
}

func TestNewOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "tok")
	t.Setenv("STORAGE_PATH", "/data/store.json")
	t.Setenv("MAX_REMINDER_MINUTES", "60")
	t.Setenv("INIT_SLASH_COMMANDS", "false")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "/data/store.json", cfg.StoragePath)
	assert.Equal(t, 60, cfg.MaxReminderMin)
	assert.False(t, cfg.InitSlashCommands)
}

func TestNewRejectsBadReminderBound(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "tok")
	t.Setenv("MAX_REMINDER_MINUTES", "0")

	_, err := New()
	assert.Error(t, err)
}

func TestIsDeveloper(t *testing.T) {
	cfg := &Config{DeveloperID: "123"}
	assert.True(t, cfg.IsDeveloper("123"))
	assert.False(t, cfg.IsDeveloper("456"))

	empty := &Config{}
	assert.False(t, empty.IsDeveloper(""))
}
