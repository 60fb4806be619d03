package player

import (
	"fmt"
	"time"
)

// Record is one bronze-layer row describing a selectable player.
// Region is nullable upstream and stays a pointer here.
type Record struct {
	PlayerID       int64
	FirstName      string
	SecondName     string
	WebName        string
	TeamCode       int64
	TeamID         int64
	PlayerPosition int64
	PlayerCode     int64
	Region         *int64
	CanSelect      bool
	MinKickoff     time.Time
	MaxKickoff     time.Time
	PhotoURL       string
}

func (r Record) Validate() error {
	if r.PlayerID <= 0 {
		return fmt.Errorf("player id must be positive")
	}
	if r.WebName == "" {
		return fmt.Errorf("player web name is required")
	}

	return nil
}
