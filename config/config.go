package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds all configuration for the application
type Config struct {
	// Game configuration
	Game GameConfig `json:"game"`

	// Server configuration
	Server ServerConfig `json:"server"`
}

// GameConfig holds the simulation tuning constants
type GameConfig struct {
	// Starting cash on hand
	StartingMoney int `json:"starting_money"`

	// Starting bank balance
	StartingBankBalance int `json:"starting_bank_balance"`

	// Starting well-being meters (0-100)
	StartingHunger int `json:"starting_hunger"`
	StartingStress int `json:"starting_stress"`
	StartingEnergy int `json:"starting_energy"`

	// Run length in simulated days
	DurationDays int `json:"duration_days"`

	// Passive decay per whole simulated hour
	HungerDecayPerHour int `json:"hunger_decay_per_hour"`
	EnergyDecayPerHour int `json:"energy_decay_per_hour"`

	// Hunger at or below this threshold adds stress each tick
	LowHungerThreshold     int `json:"low_hunger_threshold"`
	LowHungerStressPenalty int `json:"low_hunger_stress_penalty"`

	// Simulated minutes spent moving between locations
	MoveDurationMinutes int `json:"move_duration_minutes"`

	// Simulated minutes for actions without a catalog duration
	DefaultActionDuration int `json:"default_action_duration"`

	// Simulated minutes advanced per scheduler tick
	MinutesPerTick int `json:"minutes_per_tick"`

	// Real seconds between scheduler ticks
	TickIntervalSeconds int `json:"tick_interval_seconds"`

	// Probability of a random event per tick (0-100)
	EventProbability int `json:"event_probability"`

	// Directory holding optional JSON catalog overrides
	DataDir string `json:"data_dir"`

	// Path for the run-state checkpoint file
	StatePath string `json:"state_path"`
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	// Server port
	Port string `json:"port"`

	// Log level (debug, info, warn, error)
	LogLevel string `json:"log_level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			StartingMoney:          5000,
			StartingBankBalance:    0,
			StartingHunger:         70,
			StartingStress:         20,
			StartingEnergy:         100,
			DurationDays:           7,
			HungerDecayPerHour:     5,
			EnergyDecayPerHour:     3,
			LowHungerThreshold:     20,
			LowHungerStressPenalty: 5,
			MoveDurationMinutes:    30,
			DefaultActionDuration:  30,
			MinutesPerTick:         1,
			TickIntervalSeconds:    1,
			EventProbability:       5,
			DataDir:                "./assets/data",
			StatePath:              "./data/game_state.json",
		},
		Server: ServerConfig{
			Port:     "8080",
			LogLevel: "info",
		},
	}
}

// LoadConfig loads configuration from a file
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return config, err
	}

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Create default config file
		file, err := os.Create(path)
		if err != nil {
			return config, err
		}
		defer file.Close()

		encoder := json.NewEncoder(file)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(config); err != nil {
			return config, err
		}

		return config, nil
	}

	// Read config file
	file, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}

	return config, nil
}

// SaveConfig saves configuration to a file
func SaveConfig(config Config, path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Create or truncate file
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	// Write config to file
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(config); err != nil {
		return err
	}

	return nil
}
