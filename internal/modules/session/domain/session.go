package domain

import (
	missiondomain "wayne/internal/modules/mission/domain"
	profiledomain "wayne/internal/modules/profile/domain"
)

// ErrorMessage is shown to the user whenever schedule generation fails.
const ErrorMessage = "Failed to connect to Batcomputer. Network interference detected."

type Status string

const (
	StatusIdle       Status = "idle"
	StatusGenerating Status = "generating"
	StatusError      Status = "error"
)

// State is the single in-memory state of an interactive session.
type State struct {
	Status         Status
	ErrorMessage   string
	Profile        profiledomain.Profile
	Missions       []missiondomain.Mission
	Sort           missiondomain.SortState
	PendingDebrief string
}

// NewState starts an idle session on the given profile and missions.
func NewState(profile profiledomain.Profile, missions []missiondomain.Mission) State {
	if missions == nil {
		missions = []missiondomain.Mission{}
	}
	return State{
		Status:   StatusIdle,
		Profile:  profile,
		Missions: missions,
		Sort:     missiondomain.DefaultSort(),
	}
}

// Debriefable reports the index of an existing, incomplete mission.
func (s State) Debriefable(missionID string) (int, bool) {
	idx := missiondomain.Find(s.Missions, missionID)
	if idx < 0 || s.Missions[idx].Completed {
		return -1, false
	}
	return idx, true
}

// CompleteMission returns a copy of missions with the mission at idx completed.
func CompleteMission(missions []missiondomain.Mission, idx int) []missiondomain.Mission {
	next := make([]missiondomain.Mission, len(missions))
	copy(next, missions)
	next[idx].Completed = true
	return next
}
