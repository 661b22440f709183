package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 5000, cfg.Game.StartingMoney)
	assert.Equal(t, 0, cfg.Game.StartingBankBalance)
	assert.Equal(t, 70, cfg.Game.StartingHunger)
	assert.Equal(t, 20, cfg.Game.StartingStress)
	assert.Equal(t, 100, cfg.Game.StartingEnergy)
	assert.Equal(t, 7, cfg.Game.DurationDays)
	assert.Equal(t, 1, cfg.Game.MinutesPerTick)
	assert.Equal(t, 1, cfg.Game.TickIntervalSeconds)
	assert.Equal(t, 5, cfg.Game.EventProbability)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	// Loading again reads the file that was just written
	again, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultConfig()
	cfg.Game.DurationDays = 14
	cfg.Server.Port = "9090"

	err := SaveConfig(cfg, path)
	assert.NoError(t, err)

	loaded, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, 14, loaded.Game.DurationDays)
	assert.Equal(t, "9090", loaded.Server.Port)
}
