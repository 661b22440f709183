package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/user/life-city/config"
	"github.com/user/life-city/internal/types"
	"go.uber.org/zap"
)

func newTestScheduler(engine *Engine, eventProbability int) *Scheduler {
	cfg := config.DefaultConfig().Game
	cfg.EventProbability = eventProbability
	return NewScheduler(engine, cfg, zap.NewNop())
}

func TestSchedulerTickAdvancesOneMinute(t *testing.T) {
	engine := newTestEngine(nil)
	engine.StartGame()
	scheduler := newTestScheduler(engine, 0)

	scheduler.tick()
	assert.Equal(t, types.GameTime{Day: 1, Hour: 8, Minute: 1}, engine.State().Time)

	scheduler.tick()
	assert.Equal(t, types.GameTime{Day: 1, Hour: 8, Minute: 2}, engine.State().Time)
}

func TestSchedulerTickIsInertBeforeStart(t *testing.T) {
	engine := newTestEngine(nil)
	scheduler := newTestScheduler(engine, 100)

	before := engine.State()
	scheduler.tick()
	assert.Equal(t, before, engine.State())
	assert.Nil(t, engine.PendingEvent())
}

func TestSchedulerTickIsInertWhilePaused(t *testing.T) {
	engine := newTestEngine(nil)
	engine.StartGame()
	engine.TogglePause()
	scheduler := newTestScheduler(engine, 100)

	before := engine.State()
	scheduler.tick()
	assert.Equal(t, before, engine.State())
	assert.Nil(t, engine.PendingEvent())
}

func TestSchedulerTickIsInertAfterTermination(t *testing.T) {
	engine := newTestEngine(func(cfg *config.GameConfig) {
		cfg.DurationDays = 1
	})
	engine.StartGame()
	engine.AdvanceTime(1440)
	assert.Equal(t, types.ResultWin, engine.State().Result)

	scheduler := newTestScheduler(engine, 100)
	before := engine.State()
	scheduler.tick()
	assert.Equal(t, before, engine.State())
}

func TestSchedulerRaisesEvents(t *testing.T) {
	engine := newTestEngine(nil)
	engine.StartGame()

	// At 100% probability the first tick raises an event
	scheduler := newTestScheduler(engine, 100)
	scheduler.tick()
	first := engine.PendingEvent()
	assert.NotNil(t, first)

	// Further ticks never stack a second one
	scheduler.tick()
	scheduler.tick()
	pending := engine.PendingEvent()
	assert.NotNil(t, pending)
	assert.Equal(t, first.ID, pending.ID)
}

func TestSchedulerNeverRaisesEventsAtZeroProbability(t *testing.T) {
	engine := newTestEngine(nil)
	engine.StartGame()
	scheduler := newTestScheduler(engine, 0)

	for i := 0; i < 50; i++ {
		scheduler.tick()
	}
	assert.Nil(t, engine.PendingEvent())
}

func TestSchedulerStartStopRestart(t *testing.T) {
	engine := newTestEngine(nil)
	scheduler := newTestScheduler(engine, 0)

	scheduler.Start()
	scheduler.Stop()

	// A stopped scheduler re-arms cleanly
	scheduler.Start()
	scheduler.Stop()

	// Double stop is harmless
	scheduler.Stop()
}

func TestDiceRoller(t *testing.T) {
	roller := NewDiceRoller()

	for i := 0; i < 100; i++ {
		roll := roller.Roll(6)
		assert.GreaterOrEqual(t, roll, 1)
		assert.LessOrEqual(t, roll, 6)
	}

	assert.True(t, roller.Chance(100))
	assert.False(t, roller.Chance(0))
}
