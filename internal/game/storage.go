package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/user/life-city/internal/types"
)

// StateStorage checkpoints the run state to disk. Best-effort only:
// there are no durability guarantees, and a missing or unreadable file
// simply yields a fresh pre-game state.
type StateStorage struct {
	savePath  string
	stateLock sync.Mutex
}

// NewStateStorage creates a new run-state store
func NewStateStorage(savePath string) *StateStorage {
	// Create data directory if it doesn't exist
	dir := filepath.Dir(savePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		// If we can't create the directory, fall back to the default path
		savePath = "./data/game_state.json"
	}

	return &StateStorage{
		savePath: savePath,
	}
}

// SaveGameState saves the run state to disk
func (ss *StateStorage) SaveGameState(state *types.GameState) error {
	ss.stateLock.Lock()
	defer ss.stateLock.Unlock()

	// Create directory if it doesn't exist
	dir := filepath.Dir(ss.savePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	if err := os.WriteFile(ss.savePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write game state: %w", err)
	}

	return nil
}

// LoadGameState loads the run state from disk
func (ss *StateStorage) LoadGameState() (*types.GameState, error) {
	ss.stateLock.Lock()
	defer ss.stateLock.Unlock()

	// Return a fresh pre-game state if no checkpoint exists
	if _, err := os.Stat(ss.savePath); os.IsNotExist(err) {
		return &types.GameState{Result: types.ResultPlaying}, nil
	}

	data, err := os.ReadFile(ss.savePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game state file: %w", err)
	}

	var state types.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse game state: %w", err)
	}

	if state.Result == "" {
		state.Result = types.ResultPlaying
	}
	if state.Actions == nil {
		state.Actions = make([]types.GameAction, 0)
	}
	if state.SkillsUnlocked == nil {
		state.SkillsUnlocked = make([]string, 0)
	}
	if state.BadgesEarned == nil {
		state.BadgesEarned = make([]string, 0)
	}

	return &state, nil
}
