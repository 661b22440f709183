package interfaces

import "github.com/user/life-city/internal/types"

// Engine defines the public surface of the simulation engine
type Engine interface {
	StartGame()
	ResetGame()
	TogglePause()
	AdvanceTime(minutes int)
	MoveToLocation(locationID string, position types.Position)
	PerformAction(actionID string) bool
	HandleEventResponse(optionID string)
	TriggerRandomEvent() *types.RandomEvent
	PendingEvent() *types.RandomEvent
	State() types.GameState
	Locations() []types.Location
	CalculateBadges(actions []types.GameAction, stats types.PlayerStats) []string
}
