package in

import (
	"context"

	sessiondto "wayne/internal/modules/session/dto"
	sessionin "wayne/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Plan(ctx context.Context, objectives string) (sessiondto.StateOutput, error) {
	return h.usecase.Generate(ctx, sessiondto.GenerateInput{Objectives: objectives})
}

func (h CLIHandler) Missions(sortBy, direction string) (sessiondto.MissionListOutput, error) {
	return h.usecase.ListMissions(sessiondto.ListInput{SortBy: sortBy, Direction: direction})
}

func (h CLIHandler) Debrief(ctx context.Context, missionID, outcome string) (sessiondto.DebriefOutput, error) {
	return h.usecase.Debrief(ctx, sessiondto.DebriefInput{MissionID: missionID, Outcome: outcome})
}

func (h CLIHandler) Profile() sessiondto.StateOutput {
	return h.usecase.State()
}

func (h CLIHandler) Rename(ctx context.Context, name string) (sessiondto.StateOutput, error) {
	return h.usecase.RenameProfile(ctx, name)
}
