package game

import (
	"math/rand"
	"time"

	"github.com/user/life-city/config"
	"github.com/user/life-city/internal/types"
	"go.uber.org/zap"
)

// DiceRoller handles random rolls for the game
type DiceRoller struct {
	rng *rand.Rand
}

// NewDiceRoller creates a new dice roller with a seeded random number generator
func NewDiceRoller() *DiceRoller {
	return &DiceRoller{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Roll rolls a dice with the specified number of sides
func (dr *DiceRoller) Roll(sides int) int {
	return dr.rng.Intn(sides) + 1
}

// Chance rolls a d100 against a percentage
func (dr *DiceRoller) Chance(percent int) bool {
	return dr.Roll(100) <= percent
}

// Scheduler drives the engine's clock in real time. While the run is
// active, unpaused and still playing, each real-time interval advances
// the simulated clock by a fixed number of minutes and rolls for a
// random event. Ticks against a paused or terminated run do nothing.
type Scheduler struct {
	engine     *Engine
	logger     *zap.Logger
	diceRoller *DiceRoller

	interval         time.Duration
	minutesPerTick   int
	eventProbability int

	ticker   *time.Ticker
	stopChan chan struct{}
}

// NewScheduler creates a scheduler bound to an engine.
func NewScheduler(engine *Engine, cfg config.GameConfig, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		engine:           engine,
		logger:           logger,
		diceRoller:       NewDiceRoller(),
		interval:         time.Duration(cfg.TickIntervalSeconds) * time.Second,
		minutesPerTick:   cfg.MinutesPerTick,
		eventProbability: cfg.EventProbability,
	}
}

// Start begins ticking. Safe to call again after Stop; each Start arms a
// fresh ticker.
func (s *Scheduler) Start() {
	s.ticker = time.NewTicker(s.interval)
	s.stopChan = make(chan struct{})

	s.logger.Info("Scheduler started",
		zap.Duration("interval", s.interval),
		zap.Int("minutes_per_tick", s.minutesPerTick))

	go func(ticker *time.Ticker, stop chan struct{}) {
		for {
			select {
			case <-ticker.C:
				s.tick()
			case <-stop:
				ticker.Stop()
				return
			}
		}
	}(s.ticker, s.stopChan)
}

// Stop halts the ticking goroutine.
func (s *Scheduler) Stop() {
	if s.stopChan != nil {
		close(s.stopChan)
		s.stopChan = nil
	}
	s.logger.Info("Scheduler stopped")
}

// tick runs one scheduler cycle. The engine re-checks the terminal state
// under its own lock, so a tick that races a win or failure still cannot
// mutate a finished run.
func (s *Scheduler) tick() {
	st := s.engine.State()
	if !st.IsActive || st.IsPaused || st.Result != types.ResultPlaying {
		return
	}

	s.engine.AdvanceTime(s.minutesPerTick)

	if s.diceRoller.Chance(s.eventProbability) {
		if event := s.engine.TriggerRandomEvent(); event != nil {
			s.logger.Debug("Scheduler raised event", zap.String("event_id", event.ID))
		}
	}
}
