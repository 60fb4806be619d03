package team

import (
	"fmt"
	"time"
)

// Record is one bronze-layer row describing a Premier League club for the
// current season pull.
type Record struct {
	TeamID        int64
	TeamCode      int64
	TeamName      string
	TeamShortName string
	MinKickoff    time.Time
	MaxKickoff    time.Time
	LogoURL       string
}

func (r Record) Validate() error {
	if r.TeamID <= 0 {
		return fmt.Errorf("team id must be positive")
	}
	if r.TeamCode <= 0 {
		return fmt.Errorf("team code must be positive")
	}
	if r.TeamName == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
