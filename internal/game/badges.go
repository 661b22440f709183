package game

import (
	"strings"

	"github.com/user/life-city/internal/types"
)

// BadgeDefinition pairs a badge with the predicate that awards it. The
// predicate sees the full action log and the final stats of a run.
type BadgeDefinition struct {
	Badge     types.Badge
	Predicate func(actions []types.GameAction, stats types.PlayerStats) bool
}

// CalculateBadges returns the ids of every badge whose predicate holds.
// Pure and deterministic: the same log and stats always yield the same
// set, in definition order.
func CalculateBadges(defs []BadgeDefinition, actions []types.GameAction, stats types.PlayerStats) []string {
	earned := make([]string, 0, len(defs))
	for _, def := range defs {
		if def.Predicate(actions, stats) {
			earned = append(earned, def.Badge.ID)
		}
	}
	return earned
}

// DefaultBadges returns the built-in badge catalog. The evaluator only
// runs when a run ends in a win, so the completion badge is
// unconditional.
func DefaultBadges() []BadgeDefinition {
	return []BadgeDefinition{
		{
			Badge: types.Badge{
				ID:          "city-survivor",
				Name:        "City Survivor",
				Description: "Made it through the whole week.",
			},
			Predicate: func([]types.GameAction, types.PlayerStats) bool {
				return true
			},
		},
		{
			Badge: types.Badge{
				ID:          "smart-saver",
				Name:        "Smart Saver",
				Description: "Finished with at least $1000 in the bank.",
			},
			Predicate: func(_ []types.GameAction, stats types.PlayerStats) bool {
				return stats.BankBalance >= 1000
			},
		},
		{
			Badge: types.Badge{
				ID:          "cool-headed",
				Name:        "Cool Headed",
				Description: "Kept stress under 50 to the end.",
			},
			Predicate: func(_ []types.GameAction, stats types.PlayerStats) bool {
				return stats.Stress < 50
			},
		},
		{
			Badge: types.Badge{
				ID:          "well-balanced",
				Name:        "Well Balanced",
				Description: "Finished fed, rested and calm.",
			},
			Predicate: func(_ []types.GameAction, stats types.PlayerStats) bool {
				return stats.Hunger >= 40 && stats.Energy >= 40 && stats.Stress <= 60
			},
		},
		{
			Badge: types.Badge{
				ID:          "lifelong-learner",
				Name:        "Lifelong Learner",
				Description: "Took at least one course at the skill center.",
			},
			Predicate: func(actions []types.GameAction, _ types.PlayerStats) bool {
				for _, a := range actions {
					if a.LocationID == "skill-center" {
						return true
					}
				}
				return false
			},
		},
		{
			Badge: types.Badge{
				ID:          "scam-spotter",
				Name:        "Scam Spotter",
				Description: "Saw through a scam and walked away.",
			},
			Predicate: func(actions []types.GameAction, _ types.PlayerStats) bool {
				for _, a := range actions {
					if a.Concept == "scam-awareness" && isAvoidance(a.ActionID) {
						return true
					}
				}
				return false
			},
		},
	}
}

// isAvoidance reports whether an event response id reads as declining or
// reporting the approach rather than engaging with it.
func isAvoidance(optionID string) bool {
	return strings.HasPrefix(optionID, "decline") ||
		strings.HasPrefix(optionID, "ignore") ||
		strings.HasPrefix(optionID, "report")
}
