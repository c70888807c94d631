package dto

import (
	missiondomain "wayne/internal/modules/mission/domain"
	profiledomain "wayne/internal/modules/profile/domain"
	"wayne/internal/modules/session/domain"
)

type GenerateInput struct {
	Objectives string
}

// DebriefInput names the outcome as accepted by ParseMultiplier.
type DebriefInput struct {
	MissionID string
	Outcome   string
}

type ListInput struct {
	SortBy    string
	Direction string
}

type MissionListOutput struct {
	Missions []missiondomain.Mission
}

// StateOutput is a read-only view of the session. Missions are ordered by Sort.
type StateOutput struct {
	Status         domain.Status
	ErrorMessage   string
	Profile        profiledomain.Profile
	Rank           string
	Missions       []missiondomain.Mission
	Sort           missiondomain.SortState
	PendingDebrief string
}

type DebriefOutput struct {
	State    StateOutput
	Applied  bool
	Outcome  profiledomain.Outcome
	NotePath string
}
