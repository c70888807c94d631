package dto

import (
	missiondomain "wayne/internal/modules/mission/domain"
	"wayne/internal/modules/profile/domain"
)

type DebriefInput struct {
	Profile    domain.Profile
	Mission    missiondomain.Mission
	Multiplier domain.Multiplier
}

type DebriefOutput struct {
	Profile  domain.Profile
	Outcome  domain.Outcome
	Record   domain.DebriefRecord
	NotePath string
}

type HistoryInput struct {
	Limit int
}

type HistoryOutput struct {
	Records []domain.DebriefRecord
}

type ReindexOutput struct {
	Records int
}
