package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/user/life-city/internal/types"
)

// DefaultLocations returns the built-in city map: six locations and the
// actions available at each. The catalog is the single source of truth
// for action costs, durations and special behavior.
func DefaultLocations() []types.Location {
	return []types.Location{
		{
			ID:          "home",
			Name:        "Home",
			Description: "Your small apartment. Rest, cook and sleep here.",
			Position:    types.Position{X: 1, Y: 1},
			Actions: []types.LocationAction{
				{
					ID:              "rest",
					Label:           "Take a rest",
					Cost:            0,
					Effects:         types.StatDelta{Energy: 40, Stress: -10},
					DurationMinutes: 120,
				},
				{
					ID:              "sleep",
					Label:           "Sleep until morning",
					Cost:            0,
					Effects:         types.StatDelta{Energy: 100},
					DurationMinutes: 0,
					Special:         types.SpecialSleepUntilMorning,
				},
				{
					ID:              "cook-meal",
					Label:           "Cook a meal",
					Cost:            30,
					Effects:         types.StatDelta{Hunger: 35, Energy: -5},
					DurationMinutes: 30,
					Concept:         "budget-cooking",
				},
			},
		},
		{
			ID:          "workplace",
			Name:        "Workplace",
			Description: "Your part-time job downtown.",
			Position:    types.Position{X: 4, Y: 1},
			Actions: []types.LocationAction{
				{
					ID:              "work-shift",
					Label:           "Work a shift",
					Cost:            0,
					Effects:         types.StatDelta{Money: 120, Energy: -15, Stress: 10, Hunger: -5},
					DurationMinutes: 30,
					Concept:         "earning-income",
				},
				{
					ID:              "overtime",
					Label:           "Take overtime",
					Cost:            0,
					Effects:         types.StatDelta{Money: 200, Energy: -30, Stress: 20},
					Requirements:    types.StatDelta{Energy: 30},
					DurationMinutes: 30,
					Concept:         "income-tradeoff",
				},
			},
		},
		{
			ID:          "bank",
			Name:        "City Bank",
			Description: "Deposit savings or withdraw your balance.",
			Position:    types.Position{X: 3, Y: 3},
			Actions: []types.LocationAction{
				{
					ID:              "deposit-100",
					Label:           "Deposit $100",
					Cost:            100,
					Effects:         types.StatDelta{BankBalance: 100, Money: -100},
					DurationMinutes: 30,
					Concept:         "saving-habit",
				},
				{
					ID:              "deposit-1000",
					Label:           "Deposit $1000",
					Cost:            1000,
					Effects:         types.StatDelta{BankBalance: 1000, Money: -1000},
					DurationMinutes: 30,
					Concept:         "saving-habit",
				},
				{
					ID:              "withdraw-all",
					Label:           "Withdraw everything",
					Cost:            0,
					DurationMinutes: 30,
					Special:         types.SpecialWithdrawAll,
					Concept:         "liquidity",
				},
			},
		},
		{
			ID:          "market",
			Name:        "Street Market",
			Description: "Food stalls and grocery stands.",
			Position:    types.Position{X: 2, Y: 4},
			Actions: []types.LocationAction{
				{
					ID:              "street-food",
					Label:           "Grab street food",
					Cost:            80,
					Effects:         types.StatDelta{Hunger: 30, Stress: -5},
					DurationMinutes: 30,
					Concept:         "spending-choices",
				},
				{
					ID:              "groceries",
					Label:           "Buy groceries",
					Cost:            150,
					Effects:         types.StatDelta{Hunger: 45, Energy: -5},
					DurationMinutes: 30,
					Concept:         "meal-planning",
				},
			},
		},
		{
			ID:          "skill-center",
			Name:        "Skill Center",
			Description: "Workshops and certification courses.",
			Position:    types.Position{X: 5, Y: 3},
			Actions: []types.LocationAction{
				{
					ID:              "budgeting-workshop",
					Label:           "Attend budgeting workshop",
					Cost:            200,
					Effects:         types.StatDelta{Energy: -10, Stress: 5},
					DurationMinutes: 120,
					Concept:         "financial-education",
					UnlocksSkill:    "budgeting",
				},
				{
					ID:              "investing-class",
					Label:           "Take investing class",
					Cost:            300,
					Effects:         types.StatDelta{Energy: -10, Stress: 5},
					DurationMinutes: 120,
					Concept:         "financial-education",
					UnlocksSkill:    "investing",
				},
				{
					ID:              "bookkeeping-certification",
					Label:           "Sit the bookkeeping certification",
					Cost:            500,
					Effects:         types.StatDelta{Energy: -20, Stress: 10},
					DurationMinutes: 180,
					Concept:         "credentials",
					UnlocksSkill:    "certified-bookkeeper",
				},
			},
		},
		{
			ID:          "park",
			Name:        "Riverside Park",
			Description: "Green space by the river.",
			Position:    types.Position{X: 1, Y: 5},
			Actions: []types.LocationAction{
				{
					ID:              "jog",
					Label:           "Go for a jog",
					Cost:            0,
					Effects:         types.StatDelta{Stress: -15, Energy: -10, Hunger: -5},
					DurationMinutes: 30,
				},
				{
					ID:              "picnic-day",
					Label:           "Spend the afternoon at a picnic",
					Cost:            60,
					Effects:         types.StatDelta{Stress: -30, Hunger: 20, Energy: 10},
					DurationMinutes: 150,
					Concept:         "leisure-budgeting",
				},
			},
		},
	}
}

// DefaultEvents returns the built-in random event catalog.
func DefaultEvents() []types.RandomEvent {
	return []types.RandomEvent{
		{
			ID:          "water-leak",
			Category:    types.CategoryExpense,
			Title:       "Water leak!",
			Description: "A pipe burst under your kitchen sink.",
			Options: []types.EventOption{
				{
					ID:      "pay-plumber",
					Label:   "Call a plumber ($180)",
					Effects: types.StatDelta{Money: -180, Stress: 5},
					Outcome: "The plumber fixes it within the hour.",
				},
				{
					ID:      "delay-repair",
					Label:   "Put a bucket under it for now",
					Effects: types.StatDelta{Stress: 20},
					Outcome: "The dripping keeps you up at night.",
				},
			},
		},
		{
			ID:          "phone-bill-spike",
			Category:    types.CategoryExpense,
			Title:       "Phone bill spike",
			Description: "Your phone bill came in $90 over the usual.",
			Options: []types.EventOption{
				{
					ID:      "pay-bill",
					Label:   "Pay it in full",
					Effects: types.StatDelta{Money: -90},
					Outcome: "Paid. You make a note to check your plan.",
				},
				{
					ID:      "dispute-charge",
					Label:   "Call and dispute the charge",
					Effects: types.StatDelta{Money: -40, Stress: 10},
					Outcome: "After an hour on hold they cut it roughly in half.",
				},
			},
		},
		{
			ID:          "street-tip",
			Category:    types.CategoryIncome,
			Title:       "A small windfall",
			Description: "A neighbor pays you back $60 you had forgotten about.",
			Options: []types.EventOption{
				{
					ID:      "pocket-it",
					Label:   "Pocket it",
					Effects: types.StatDelta{Money: 60, Stress: -5},
					Outcome: "Nice surprise.",
				},
			},
		},
		{
			ID:          "weekend-gig",
			Category:    types.CategoryIncome,
			Title:       "Weekend gig offer",
			Description: "A friend offers you $150 to help move furniture.",
			Options: []types.EventOption{
				{
					ID:      "accept-gig",
					Label:   "Take the gig",
					Effects: types.StatDelta{Money: 150, Energy: -20},
					Outcome: "Hard work, easy money.",
				},
				{
					ID:      "decline-gig",
					Label:   "Pass this time",
					Effects: types.StatDelta{},
					Outcome: "You keep your weekend free.",
				},
			},
		},
		{
			ID:          "lottery-scam",
			Category:    types.CategoryScam,
			Title:       "You've won a prize!",
			Description: "A text says you won a lottery you never entered. Just pay a $200 release fee.",
			Options: []types.EventOption{
				{
					ID:      "pay-claim-fee",
					Label:   "Pay the fee to claim it",
					Effects: types.StatDelta{Money: -200, Stress: 10},
					Outcome: "The prize never arrives. The number stops answering.",
				},
				{
					ID:      "report-number",
					Label:   "Report and block the number",
					Effects: types.StatDelta{Stress: -5},
					Outcome: "Classic advance-fee scam, dodged.",
				},
			},
		},
		{
			ID:          "phishing-call",
			Category:    types.CategoryScam,
			Title:       "Urgent call from 'your bank'",
			Description: "A caller asks you to confirm your account password to stop a suspicious transfer.",
			Options: []types.EventOption{
				{
					ID:      "give-details",
					Label:   "Read them your details",
					Effects: types.StatDelta{Money: -300, Stress: 25},
					Outcome: "Money leaves your account an hour later. Banks never ask for passwords.",
				},
				{
					ID:      "decline-call",
					Label:   "Hang up and call the bank yourself",
					Effects: types.StatDelta{Stress: 5},
					Outcome: "The real bank confirms there was no transfer.",
				},
			},
		},
		{
			ID:          "market-deal",
			Category:    types.CategoryOpportunity,
			Title:       "Closing-time deal",
			Description: "A stall is selling the day's produce at half price.",
			Options: []types.EventOption{
				{
					ID:      "buy-produce",
					Label:   "Buy a bag ($40)",
					Effects: types.StatDelta{Money: -40, Hunger: 25},
					Outcome: "Dinner sorted for half the price.",
				},
				{
					ID:      "skip-deal",
					Label:   "Walk on by",
					Effects: types.StatDelta{},
					Outcome: "Maybe next time.",
				},
			},
		},
		{
			ID:          "free-workshop-pass",
			Category:    types.CategoryOpportunity,
			Title:       "Free seminar pass",
			Description: "The skill center is handing out passes to tonight's money-management seminar.",
			Options: []types.EventOption{
				{
					ID:      "attend-seminar",
					Label:   "Attend",
					Effects: types.StatDelta{Energy: -10, Stress: -5},
					Outcome: "An hour well spent.",
				},
				{
					ID:      "pass-on-it",
					Label:   "Not tonight",
					Effects: types.StatDelta{},
					Outcome: "You head home instead.",
				},
			},
		},
	}
}

// DataLoader handles loading catalog overrides from files
type DataLoader struct {
	basePath string
}

// NewDataLoader creates a new data loader
func NewDataLoader(basePath string) *DataLoader {
	return &DataLoader{
		basePath: basePath,
	}
}

// LoadLocations loads location definitions from file
func (dl *DataLoader) LoadLocations() ([]types.Location, error) {
	path := filepath.Join(dl.basePath, "locations.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read locations file: %w", err)
	}

	var locations []types.Location
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, fmt.Errorf("failed to parse locations data: %w", err)
	}

	return locations, nil
}

// LoadEvents loads random event definitions from file
func (dl *DataLoader) LoadEvents() ([]types.RandomEvent, error) {
	path := filepath.Join(dl.basePath, "events.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read events file: %w", err)
	}

	var events []types.RandomEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("failed to parse events data: %w", err)
	}

	return events, nil
}
