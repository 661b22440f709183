package types

// GameResult describes the outcome of a simulation run.
type GameResult string

const (
	ResultPlaying    GameResult = "playing"
	ResultWin        GameResult = "win"
	ResultFailMoney  GameResult = "fail-money"
	ResultFailStress GameResult = "fail-stress"
)

// EventCategory classifies random events.
type EventCategory string

const (
	CategoryExpense     EventCategory = "expense"
	CategoryIncome      EventCategory = "income"
	CategoryScam        EventCategory = "scam"
	CategoryOpportunity EventCategory = "opportunity"
)

// SpecialEffect marks catalog actions whose behavior goes beyond a plain
// stat delta. The engine dispatches on this tag instead of comparing
// action id strings.
type SpecialEffect string

const (
	SpecialNone              SpecialEffect = ""
	SpecialWithdrawAll       SpecialEffect = "withdraw-all"
	SpecialSleepUntilMorning SpecialEffect = "sleep-until-morning"
)

// MorningHour is the hour the player wakes at after sleeping.
const MorningHour = 8

// GameTime is the normalized simulated clock. Hour and Minute always stay
// within their ranges; overflow rolls minutes into hours into days.
type GameTime struct {
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Add returns the time advanced by the given number of minutes, normalized.
func (t GameTime) Add(minutes int) GameTime {
	total := t.Minute + minutes
	t.Minute = total % 60
	total = t.Hour + total/60
	t.Hour = total % 24
	t.Day += total / 24
	return t
}

// TotalMinutes returns the absolute minute count since day 1, 00:00.
func (t GameTime) TotalMinutes() int {
	return (t.Day-1)*24*60 + t.Hour*60 + t.Minute
}

// MinutesUntilNext returns the minutes until the next occurrence of the
// given wall-clock time, always strictly in the future (a full day when
// the clock already reads exactly that time).
func (t GameTime) MinutesUntilNext(hour, minute int) int {
	current := t.Hour*60 + t.Minute
	target := hour*60 + minute
	diff := target - current
	if diff <= 0 {
		diff += 24 * 60
	}
	return diff
}

// PlayerStats holds the bounded resource meters. Money and BankBalance
// floor at zero; the three well-being meters live in [0,100].
type PlayerStats struct {
	Money       int `json:"money"`
	BankBalance int `json:"bank_balance"`
	Hunger      int `json:"hunger"`
	Stress      int `json:"stress"`
	Energy      int `json:"energy"`
}

// Clamped returns a copy with every meter forced back into its bounds.
func (s PlayerStats) Clamped() PlayerStats {
	s.Money = max(s.Money, 0)
	s.BankBalance = max(s.BankBalance, 0)
	s.Hunger = clampMeter(s.Hunger)
	s.Stress = clampMeter(s.Stress)
	s.Energy = clampMeter(s.Energy)
	return s
}

// Apply returns a copy with the delta added and bounds re-applied.
func (s PlayerStats) Apply(d StatDelta) PlayerStats {
	s.Money += d.Money
	s.BankBalance += d.BankBalance
	s.Hunger += d.Hunger
	s.Stress += d.Stress
	s.Energy += d.Energy
	return s.Clamped()
}

// Meets reports whether every field of the requirement is satisfied as a
// minimum threshold. Zero fields are trivially met.
func (s PlayerStats) Meets(req StatDelta) bool {
	return s.Money >= req.Money &&
		s.BankBalance >= req.BankBalance &&
		s.Hunger >= req.Hunger &&
		s.Stress >= req.Stress &&
		s.Energy >= req.Energy
}

func clampMeter(v int) int {
	return min(max(v, 0), 100)
}

// StatDelta is a signed partial change across the five meters. A zero
// field leaves the stat untouched.
type StatDelta struct {
	Money       int `json:"money,omitempty"`
	BankBalance int `json:"bank_balance,omitempty"`
	Hunger      int `json:"hunger,omitempty"`
	Stress      int `json:"stress,omitempty"`
	Energy      int `json:"energy,omitempty"`
}

// IsZero reports whether the delta changes nothing.
func (d StatDelta) IsZero() bool {
	return d == StatDelta{}
}

// Position is a grid coordinate used only for map rendering.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Location is a static place on the city map with its available actions.
type Location struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Position    Position         `json:"position"`
	Actions     []LocationAction `json:"actions"`
}

// LocationAction is a static catalog record describing one thing the
// player can do at a location. Cost is in money units. Concept is the
// financial-literacy label recorded in the action log.
type LocationAction struct {
	ID              string        `json:"id"`
	Label           string        `json:"label"`
	Cost            int           `json:"cost"`
	Effects         StatDelta     `json:"effects"`
	Requirements    StatDelta     `json:"requirements,omitempty"`
	DurationMinutes int           `json:"duration_minutes"`
	Special         SpecialEffect `json:"special,omitempty"`
	Concept         string        `json:"concept,omitempty"`
	UnlocksSkill    string        `json:"unlocks_skill,omitempty"`
}

// RandomEvent is a static interrupt event with its response options.
type RandomEvent struct {
	ID          string        `json:"id"`
	Category    EventCategory `json:"category"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Options     []EventOption `json:"options"`
}

// EventOption is one way to respond to a random event.
type EventOption struct {
	ID      string    `json:"id"`
	Label   string    `json:"label"`
	Effects StatDelta `json:"effects"`
	Outcome string    `json:"outcome"`
}

// GameAction is an immutable log entry recorded for every performed
// location action and every resolved random event.
type GameAction struct {
	ID         string    `json:"id"`
	Time       GameTime  `json:"time"`
	LocationID string    `json:"location_id"`
	ActionID   string    `json:"action_id"`
	Effects    StatDelta `json:"effects"`
	Concept    string    `json:"concept,omitempty"`
}

// Badge is a static achievement definition. The predicates live with the
// badge evaluator, not in the data record.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GameState is the aggregate authoritative state of one simulation run,
// owned exclusively by the engine.
type GameState struct {
	IsActive        bool         `json:"is_active"`
	IsPaused        bool         `json:"is_paused"`
	Stats           PlayerStats  `json:"stats"`
	Time            GameTime     `json:"time"`
	CurrentLocation string       `json:"current_location"`
	PlayerPosition  Position     `json:"player_position"`
	Actions         []GameAction `json:"actions"`
	SkillsUnlocked  []string     `json:"skills_unlocked"`
	Result          GameResult   `json:"result"`
	BadgesEarned    []string     `json:"badges_earned"`
}
