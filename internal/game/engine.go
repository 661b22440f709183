package game

import (
	"sync"

	"github.com/google/uuid"
	"github.com/user/life-city/config"
	"github.com/user/life-city/internal/interfaces"
	"github.com/user/life-city/internal/types"
	"go.uber.org/zap"
)

// Engine owns the authoritative state of one simulation run. All state
// transitions go through its operations; callers only ever see snapshots.
//
// Gameplay preconditions that fail (unknown ids, insufficient funds, no
// pending event) are silent no-ops, reported through the boolean return
// where the contract has one. Operations on a terminated run are no-ops.
type Engine struct {
	state      *types.GameState
	pending    *types.RandomEvent
	stateLock  sync.RWMutex
	storage    *StateStorage
	cfg        config.GameConfig
	Logger     *zap.Logger
	diceRoller *DiceRoller
	locations  map[string]types.Location
	locOrder   []string
	events     []types.RandomEvent
	badges     []BadgeDefinition
}

// Ensure Engine satisfies the interfaces.Engine interface
var _ interfaces.Engine = (*Engine)(nil)

// NewEngine creates an engine with the built-in catalogs and a fresh,
// inactive run state.
func NewEngine(cfg config.GameConfig) *Engine {
	e := &Engine{
		state:      &types.GameState{Result: types.ResultPlaying},
		cfg:        cfg,
		Logger:     zap.NewNop(),
		diceRoller: NewDiceRoller(),
		locations:  make(map[string]types.Location),
		events:     DefaultEvents(),
		badges:     DefaultBadges(),
	}
	for _, loc := range DefaultLocations() {
		e.locations[loc.ID] = loc
		e.locOrder = append(e.locOrder, loc.ID)
	}
	return e
}

// SetLogger sets the engine logger
func (e *Engine) SetLogger(logger *zap.Logger) {
	e.Logger = logger
}

// SetStorage wires an optional run-state checkpoint store. Saves are
// best-effort; failures are logged and never surface to gameplay.
func (e *Engine) SetStorage(storage *StateStorage) {
	e.storage = storage
}

// RestoreState replaces the run state with a previously saved snapshot.
// Any pending random event is discarded; events are transient and never
// checkpointed.
func (e *Engine) RestoreState(state *types.GameState) {
	if state == nil {
		return
	}

	e.stateLock.Lock()
	defer e.stateLock.Unlock()

	e.state = state
	e.pending = nil
}

// LoadLocations replaces the location catalog
func (e *Engine) LoadLocations(locations []types.Location) {
	e.stateLock.Lock()
	defer e.stateLock.Unlock()

	e.locations = make(map[string]types.Location, len(locations))
	e.locOrder = e.locOrder[:0]
	for _, loc := range locations {
		e.locations[loc.ID] = loc
		e.locOrder = append(e.locOrder, loc.ID)
	}
}

// LoadEvents replaces the random event catalog
func (e *Engine) LoadEvents(events []types.RandomEvent) {
	e.stateLock.Lock()
	defer e.stateLock.Unlock()

	e.events = events
}

// StartGame resets the run to its initial state and activates it. Always
// succeeds; any pending random event is discarded.
func (e *Engine) StartGame() {
	e.stateLock.Lock()
	defer e.stateLock.Unlock()

	home, hasHome := e.locations["home"]
	e.state = &types.GameState{
		IsActive: true,
		IsPaused: false,
		Stats: types.PlayerStats{
			Money:       e.cfg.StartingMoney,
			BankBalance: e.cfg.StartingBankBalance,
			Hunger:      e.cfg.StartingHunger,
			Stress:      e.cfg.StartingStress,
			Energy:      e.cfg.StartingEnergy,
		},
		Time:            types.GameTime{Day: 1, Hour: types.MorningHour, Minute: 0},
		CurrentLocation: "home",
		Actions:         make([]types.GameAction, 0),
		SkillsUnlocked:  make([]string, 0),
		Result:          types.ResultPlaying,
		BadgesEarned:    make([]string, 0),
	}
	if hasHome {
		e.state.PlayerPosition = home.Position
	}
	e.pending = nil

	e.Logger.Info("Game started",
		zap.Int("money", e.state.Stats.Money),
		zap.Int("duration_days", e.cfg.DurationDays))

	e.saveState()
}

// ResetGame discards the run and returns to the pre-game state.
func (e *Engine) ResetGame() {
	e.stateLock.Lock()
	defer e.stateLock.Unlock()

	e.state = &types.GameState{Result: types.ResultPlaying}
	e.pending = nil

	e.Logger.Info("Game reset")

	e.saveState()
}

// TogglePause flips the pause flag. Harmless at any point, including
// before the run starts; the scheduler reads it and stops ticking.
func (e *Engine) TogglePause() {
	e.stateLock.Lock()
	defer e.stateLock.Unlock()

	e.state.IsPaused = !e.state.IsPaused

	e.Logger.Info("Pause toggled", zap.Bool("paused", e.state.IsPaused))
}

// AdvanceTime moves the simulated clock forward by the given number of
// minutes, applying passive decay and evaluating termination. No-op on a
// terminated or not-yet-started run, or for a non-positive duration.
func (e *Engine) AdvanceTime(minutes int) {
	e.stateLock.Lock()
	defer e.stateLock.Unlock()

	e.advanceTimeLocked(minutes)
	e.saveState()
}

// advanceTimeLocked is the single tick body. Order is load-bearing: the
// win-by-duration check runs before decay and before the fail checks, so
// finishing the final day is a win regardless of what decay would have
// done on the same tick.
func (e *Engine) advanceTimeLocked(minutes int) {
	st := e.state
	if minutes <= 0 || !st.IsActive || st.Result != types.ResultPlaying {
		return
	}

	newTime := st.Time.Add(minutes)

	if newTime.Day > e.cfg.DurationDays {
		st.Time = newTime
		st.Result = types.ResultWin
		st.IsActive = false
		st.BadgesEarned = CalculateBadges(e.badges, st.Actions, st.Stats)
		e.Logger.Info("Run complete",
			zap.Int("day", newTime.Day),
			zap.Strings("badges", st.BadgesEarned))
		return
	}

	hoursPassed := minutes / 60
	newStats := st.Stats.Apply(types.StatDelta{
		Hunger: -e.cfg.HungerDecayPerHour * hoursPassed,
		Energy: -e.cfg.EnergyDecayPerHour * hoursPassed,
	})

	if newStats.Money <= 0 && newStats.BankBalance <= 0 {
		st.Time = newTime
		st.Stats = newStats
		st.Result = types.ResultFailMoney
		st.IsActive = false
		e.Logger.Info("Run failed", zap.String("result", string(st.Result)))
		return
	}

	if newStats.Stress >= 100 {
		st.Time = newTime
		st.Stats = newStats
		st.Result = types.ResultFailStress
		st.IsActive = false
		e.Logger.Info("Run failed", zap.String("result", string(st.Result)))
		return
	}

	// Hunger-induced stress accumulates now so the next tick can fail on it.
	if newStats.Hunger <= e.cfg.LowHungerThreshold {
		newStats = newStats.Apply(types.StatDelta{Stress: e.cfg.LowHungerStressPenalty})
	}

	st.Time = newTime
	st.Stats = newStats
}

// MoveToLocation moves the player to the given location. Movement costs
// no money but consumes a fixed amount of simulated time. Unknown
// location ids leave the state untouched.
func (e *Engine) MoveToLocation(locationID string, position types.Position) {
	e.stateLock.Lock()
	defer e.stateLock.Unlock()

	st := e.state
	if !st.IsActive || st.Result != types.ResultPlaying {
		return
	}

	if _, exists := e.locations[locationID]; !exists {
		e.Logger.Debug("Move to unknown location rejected", zap.String("location_id", locationID))
		return
	}

	st.CurrentLocation = locationID
	st.PlayerPosition = position
	e.advanceTimeLocked(e.cfg.MoveDurationMinutes)
	e.saveState()
}

// PerformAction executes an action from the current location's catalog
// entry. Returns false without any state change when the action does not
// exist here, its cost exceeds cash on hand, or a stat requirement is not
// met.
func (e *Engine) PerformAction(actionID string) bool {
	e.stateLock.Lock()
	defer e.stateLock.Unlock()

	st := e.state
	if !st.IsActive || st.Result != types.ResultPlaying {
		return false
	}

	action, found := e.findAction(st.CurrentLocation, actionID)
	if !found {
		e.Logger.Debug("Unknown action rejected",
			zap.String("location_id", st.CurrentLocation),
			zap.String("action_id", actionID))
		return false
	}

	if action.Cost > st.Stats.Money {
		e.Logger.Debug("Unaffordable action rejected",
			zap.String("action_id", actionID),
			zap.Int("cost", action.Cost),
			zap.Int("money", st.Stats.Money))
		return false
	}

	if !st.Stats.Meets(action.Requirements) {
		e.Logger.Debug("Action requirements not met", zap.String("action_id", actionID))
		return false
	}

	effects := action.Effects
	if action.Special == types.SpecialWithdrawAll {
		// The catalog's generic effects do not apply; the entire balance
		// moves into cash.
		effects = types.StatDelta{
			Money:       st.Stats.BankBalance,
			BankBalance: -st.Stats.BankBalance,
		}
	}

	newStats := st.Stats.Apply(effects)

	// Charge the cost only when the effects do not already express it as
	// a money delta, so bank deposits are not charged twice.
	applied := effects
	if action.Cost > 0 && effects.Money == 0 {
		newStats = newStats.Apply(types.StatDelta{Money: -action.Cost})
		applied.Money = -action.Cost
	}

	entry := types.GameAction{
		ID:         uuid.New().String(),
		Time:       st.Time,
		LocationID: st.CurrentLocation,
		ActionID:   action.ID,
		Effects:    applied,
		Concept:    action.Concept,
	}

	st.Stats = newStats
	st.Actions = append(st.Actions, entry)

	if action.UnlocksSkill != "" && !contains(st.SkillsUnlocked, action.UnlocksSkill) {
		st.SkillsUnlocked = append(st.SkillsUnlocked, action.UnlocksSkill)
	}

	e.Logger.Info("Action performed",
		zap.String("action_id", action.ID),
		zap.String("location_id", entry.LocationID))

	e.advanceTimeLocked(e.actionDuration(action, st.Time))
	e.saveState()

	return true
}

// actionDuration resolves how much simulated time an action consumes.
// Sleep runs until the next morning; everything else uses its catalog
// duration or the configured default.
func (e *Engine) actionDuration(action types.LocationAction, now types.GameTime) int {
	if action.Special == types.SpecialSleepUntilMorning {
		return now.MinutesUntilNext(types.MorningHour, 0)
	}
	if action.DurationMinutes > 0 {
		return action.DurationMinutes
	}
	return e.cfg.DefaultActionDuration
}

// HandleEventResponse resolves the pending random event with the chosen
// option. No-op when no event is pending or the option id is unknown.
// Responding is instantaneous relative to game time.
func (e *Engine) HandleEventResponse(optionID string) {
	e.stateLock.Lock()
	defer e.stateLock.Unlock()

	st := e.state
	if e.pending == nil || !st.IsActive || st.Result != types.ResultPlaying {
		return
	}

	var selected *types.EventOption
	for i := range e.pending.Options {
		if e.pending.Options[i].ID == optionID {
			selected = &e.pending.Options[i]
			break
		}
	}
	if selected == nil {
		e.Logger.Debug("Unknown event option rejected",
			zap.String("event_id", e.pending.ID),
			zap.String("option_id", optionID))
		return
	}

	concept := ""
	if e.pending.Category == types.CategoryScam {
		concept = "scam-awareness"
	}

	st.Stats = st.Stats.Apply(selected.Effects)
	st.Actions = append(st.Actions, types.GameAction{
		ID:         uuid.New().String(),
		Time:       st.Time,
		LocationID: st.CurrentLocation,
		ActionID:   selected.ID,
		Effects:    selected.Effects,
		Concept:    concept,
	})

	e.Logger.Info("Event resolved",
		zap.String("event_id", e.pending.ID),
		zap.String("option_id", selected.ID))

	e.pending = nil
	e.saveState()
}

// TriggerRandomEvent selects an event uniformly at random from the
// catalog and marks it pending. No-op when the run is not live or an
// event is already awaiting response. Returns the pending event, if any.
func (e *Engine) TriggerRandomEvent() *types.RandomEvent {
	e.stateLock.Lock()
	defer e.stateLock.Unlock()

	st := e.state
	if !st.IsActive || st.Result != types.ResultPlaying || e.pending != nil || len(e.events) == 0 {
		return nil
	}

	event := e.events[e.diceRoller.Roll(len(e.events))-1]
	e.pending = &event

	e.Logger.Info("Random event raised",
		zap.String("event_id", event.ID),
		zap.String("category", string(event.Category)))

	pending := event
	return &pending
}

// PendingEvent returns the random event awaiting a response, or nil.
func (e *Engine) PendingEvent() *types.RandomEvent {
	e.stateLock.RLock()
	defer e.stateLock.RUnlock()

	if e.pending == nil {
		return nil
	}
	pending := *e.pending
	return &pending
}

// State returns a snapshot of the current run state. The copy is deep
// enough that callers can never reach the engine's own slices.
func (e *Engine) State() types.GameState {
	e.stateLock.RLock()
	defer e.stateLock.RUnlock()

	snap := *e.state
	snap.Actions = append([]types.GameAction(nil), e.state.Actions...)
	snap.SkillsUnlocked = append([]string(nil), e.state.SkillsUnlocked...)
	snap.BadgesEarned = append([]string(nil), e.state.BadgesEarned...)
	return snap
}

// Locations returns the location catalog in a stable order.
func (e *Engine) Locations() []types.Location {
	e.stateLock.RLock()
	defer e.stateLock.RUnlock()

	locations := make([]types.Location, 0, len(e.locOrder))
	for _, id := range e.locOrder {
		locations = append(locations, e.locations[id])
	}
	return locations
}

// CalculateBadges evaluates every badge predicate over a finished run's
// action log and final stats. Pure and deterministic.
func (e *Engine) CalculateBadges(actions []types.GameAction, stats types.PlayerStats) []string {
	return CalculateBadges(e.badges, actions, stats)
}

// findAction looks an action id up within the current location's entry.
func (e *Engine) findAction(locationID, actionID string) (types.LocationAction, bool) {
	loc, exists := e.locations[locationID]
	if !exists {
		return types.LocationAction{}, false
	}
	for _, action := range loc.Actions {
		if action.ID == actionID {
			return action, true
		}
	}
	return types.LocationAction{}, false
}

// saveState checkpoints the run state when a store is wired. Must be
// called with the state lock held.
func (e *Engine) saveState() {
	if e.storage == nil {
		return
	}
	if err := e.storage.SaveGameState(e.state); err != nil {
		e.Logger.Error("Failed to save game state", zap.Error(err))
	}
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
