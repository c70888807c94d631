package domain

import (
	"time"

	missiondomain "wayne/internal/modules/mission/domain"
)

const SchemaVersion = 1

// DebriefRecord is the ledger entry written for every applied debrief.
type DebriefRecord struct {
	ID           string
	MissionID    string
	MissionTitle string
	Category     missiondomain.Category
	Difficulty   missiondomain.Difficulty
	Multiplier   Multiplier
	XPGained     int
	LevelBefore  int
	LevelAfter   int
	Attribute    Attribute
	StatIncrease int
	StreakAfter  int
	RecordedAt   time.Time
}
