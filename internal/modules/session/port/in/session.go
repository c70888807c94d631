package in

import (
	"context"

	missiondomain "wayne/internal/modules/mission/domain"
	profiledomain "wayne/internal/modules/profile/domain"
	"wayne/internal/modules/session/dto"
)

type Usecase interface {
	Generate(ctx context.Context, input dto.GenerateInput) (dto.StateOutput, error)
	AbandonGeneration() dto.StateOutput
	SelectForDebrief(missionID string) dto.StateOutput
	CancelDebrief() dto.StateOutput
	ConfirmDebrief(ctx context.Context, multiplier profiledomain.Multiplier) (dto.DebriefOutput, error)
	Debrief(ctx context.Context, input dto.DebriefInput) (dto.DebriefOutput, error)
	SortBy(criterion missiondomain.Criterion) dto.StateOutput
	State() dto.StateOutput
	ListMissions(input dto.ListInput) (dto.MissionListOutput, error)
	RenameProfile(ctx context.Context, name string) (dto.StateOutput, error)
}
