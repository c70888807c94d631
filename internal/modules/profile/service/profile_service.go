package service

import (
	missiondomain "wayne/internal/modules/mission/domain"
	"wayne/internal/modules/profile/domain"
	"wayne/internal/platform/clock"
	"wayne/internal/platform/id"
)

type ProfileService struct {
	clock       clock.Clock
	idGen       id.Generator
	progression domain.Progression
}

func NewProfileService(clk clock.Clock, idGen id.Generator, progression domain.Progression) *ProfileService {
	if clk == nil {
		clk = clock.SystemClock{}
	}
	return &ProfileService{clock: clk, idGen: idGen, progression: progression}
}

// Debrief progresses profile and describes the change as a ledger record.
func (s *ProfileService) Debrief(profile domain.Profile, mission missiondomain.Mission, multiplier domain.Multiplier) (domain.Profile, domain.Outcome, domain.DebriefRecord, error) {
	next, outcome, err := s.progression.Apply(profile, mission, multiplier)
	if err != nil {
		return profile, domain.Outcome{}, domain.DebriefRecord{}, err
	}
	record := domain.DebriefRecord{
		ID:           s.idGen.New(),
		MissionID:    mission.ID,
		MissionTitle: mission.Title,
		Category:     mission.Category,
		Difficulty:   mission.Difficulty,
		Multiplier:   multiplier,
		XPGained:     outcome.XPGained,
		LevelBefore:  profile.Level,
		LevelAfter:   next.Level,
		Attribute:    outcome.Attribute,
		StatIncrease: outcome.StatIncrease,
		StreakAfter:  next.Streak,
		RecordedAt:   s.clock.Now(),
	}
	return next, outcome, record, nil
}
