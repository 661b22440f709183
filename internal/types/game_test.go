package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameTimeAdd(t *testing.T) {
	start := GameTime{Day: 1, Hour: 8, Minute: 0}

	// Test case 1: Simple addition within the hour
	assert.Equal(t, GameTime{Day: 1, Hour: 8, Minute: 30}, start.Add(30))

	// Test case 2: Minute overflow rolls into hours
	assert.Equal(t, GameTime{Day: 1, Hour: 10, Minute: 0}, start.Add(120))
	assert.Equal(t, GameTime{Day: 1, Hour: 9, Minute: 15}, start.Add(75))

	// Test case 3: Hour overflow rolls into days
	assert.Equal(t, GameTime{Day: 2, Hour: 8, Minute: 0}, start.Add(24*60))
	assert.Equal(t, GameTime{Day: 2, Hour: 0, Minute: 1}, GameTime{Day: 1, Hour: 23, Minute: 59}.Add(2))

	// Test case 4: Multi-day jump stays normalized
	later := start.Add(7 * 24 * 60)
	assert.Equal(t, GameTime{Day: 8, Hour: 8, Minute: 0}, later)
	assert.GreaterOrEqual(t, later.Hour, 0)
	assert.LessOrEqual(t, later.Hour, 23)
	assert.GreaterOrEqual(t, later.Minute, 0)
	assert.LessOrEqual(t, later.Minute, 59)
}

func TestGameTimeBoundsHoldUnderArbitraryAdds(t *testing.T) {
	current := GameTime{Day: 1, Hour: 8, Minute: 0}
	for _, minutes := range []int{1, 29, 30, 59, 60, 61, 90, 119, 120, 150, 180, 510, 1440, 1441} {
		current = current.Add(minutes)
		assert.GreaterOrEqual(t, current.Day, 1)
		assert.GreaterOrEqual(t, current.Hour, 0)
		assert.LessOrEqual(t, current.Hour, 23)
		assert.GreaterOrEqual(t, current.Minute, 0)
		assert.LessOrEqual(t, current.Minute, 59)
	}
}

func TestGameTimeTotalMinutes(t *testing.T) {
	assert.Equal(t, 0, GameTime{Day: 1, Hour: 0, Minute: 0}.TotalMinutes())
	assert.Equal(t, 8*60, GameTime{Day: 1, Hour: 8, Minute: 0}.TotalMinutes())
	assert.Equal(t, 24*60+30, GameTime{Day: 2, Hour: 0, Minute: 30}.TotalMinutes())
}

func TestGameTimeMinutesUntilNext(t *testing.T) {
	// Test case 1: Target later the same day
	assert.Equal(t, 90, GameTime{Day: 1, Hour: 6, Minute: 30}.MinutesUntilNext(8, 0))

	// Test case 2: Target already passed rolls to the next day
	assert.Equal(t, 510, GameTime{Day: 1, Hour: 23, Minute: 30}.MinutesUntilNext(8, 0))

	// Test case 3: Exactly at the target means a full day
	assert.Equal(t, 24*60, GameTime{Day: 1, Hour: 8, Minute: 0}.MinutesUntilNext(8, 0))
}

func TestPlayerStatsClamping(t *testing.T) {
	stats := PlayerStats{Money: 100, BankBalance: 0, Hunger: 70, Stress: 20, Energy: 100}

	// Test case 1: Meters clamp at their ceiling
	boosted := stats.Apply(StatDelta{Energy: 40, Hunger: 50})
	assert.Equal(t, 100, boosted.Energy)
	assert.Equal(t, 100, boosted.Hunger)

	// Test case 2: Meters floor at zero
	drained := stats.Apply(StatDelta{Stress: -50, Hunger: -200})
	assert.Equal(t, 0, drained.Stress)
	assert.Equal(t, 0, drained.Hunger)

	// Test case 3: Money and bank balance never go negative
	broke := stats.Apply(StatDelta{Money: -500, BankBalance: -100})
	assert.Equal(t, 0, broke.Money)
	assert.Equal(t, 0, broke.BankBalance)

	// Test case 4: Apply does not mutate the receiver
	assert.Equal(t, 100, stats.Money)
	assert.Equal(t, 70, stats.Hunger)
}

func TestPlayerStatsMeets(t *testing.T) {
	stats := PlayerStats{Money: 100, Hunger: 50, Stress: 20, Energy: 25}

	// Zero requirements are trivially met
	assert.True(t, stats.Meets(StatDelta{}))

	assert.True(t, stats.Meets(StatDelta{Energy: 25}))
	assert.False(t, stats.Meets(StatDelta{Energy: 30}))
	assert.True(t, stats.Meets(StatDelta{Money: 100, Hunger: 40}))
}

func TestStatDeltaIsZero(t *testing.T) {
	assert.True(t, StatDelta{}.IsZero())
	assert.False(t, StatDelta{Money: -1}.IsZero())
	assert.False(t, StatDelta{Energy: 1}.IsZero())
}
