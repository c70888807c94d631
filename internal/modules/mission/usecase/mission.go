package usecase

import (
	"context"

	"go.uber.org/zap"

	"wayne/internal/modules/mission/dto"
	missionin "wayne/internal/modules/mission/port/in"
	"wayne/internal/modules/mission/service"
	"wayne/internal/platform/logging"
)

type Interactor struct {
	svc *service.MissionService
	log *zap.Logger
}

func NewInteractor(svc *service.MissionService, log *zap.Logger) missionin.Usecase {
	return &Interactor{svc: svc, log: logging.OrNop(log)}
}

func (i *Interactor) Plan(ctx context.Context, input dto.PlanInput) (dto.PlanOutput, error) {
	drafts, err := i.svc.Decompose(ctx, input.Objectives)
	if err != nil {
		i.log.Warn("planner failed", zap.Error(err))
		return dto.PlanOutput{}, err
	}
	missions, err := i.svc.Normalize(drafts)
	if err != nil {
		i.log.Warn("planner returned invalid missions", zap.Error(err))
		return dto.PlanOutput{}, err
	}
	i.log.Debug("planned missions", zap.Int("count", len(missions)))
	return dto.PlanOutput{Missions: missions}, nil
}
