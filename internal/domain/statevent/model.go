package statevent

// Record is one long-format row: a single statistic value credited to one
// player on one side of one fixture.
type Record struct {
	GameCode  int64
	Finished  bool
	GameID    int64
	StatValue int64
	PlayerID  int64
	TeamType  string // "a" or "h"
	StatType  string
}

// Sides enumerates the per-fixture stat blocks in emission order.
var Sides = []string{"a", "h"}

// DefaultCatalogue lists the statistic identifiers the aggregator expands,
// in the order their per-statistic tables are concatenated.
func DefaultCatalogue() []string {
	return []string{
		"goals_scored",
		"own_goals",
		"yellow_cards",
		"red_cards",
		"assists",
		"penalties_saved",
		"penalties_missed",
		"saves",
		"bonus",
		"bps",
	}
}
