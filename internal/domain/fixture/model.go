package fixture

import "time"

// Record is one bronze-layer row for a scheduled or played game.
// Numeric fields that are null upstream (unscheduled gameweek, unplayed
// scores) are zero-filled by the transformer, so plain value types suffice.
type Record struct {
	GameCode    int64
	GameWeekID  int64
	Finished    bool
	GameID      int64
	KickoffTime time.Time
	TeamIDA     int64
	TeamIDH     int64
	TeamAScore  int64
	TeamHScore  int64
	DifficultyA int64
	DifficultyH int64
}
