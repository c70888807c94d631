package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"wayne/internal/modules/profile/dto"
	profilein "wayne/internal/modules/profile/port/in"
	profileout "wayne/internal/modules/profile/port/out"
	"wayne/internal/modules/profile/service"
	"wayne/internal/platform/logging"
)

const defaultHistoryLimit = 20

type Interactor struct {
	svc       *service.ProfileService
	ledger    profileout.DebriefLog
	projector profileout.DebriefProjector
	log       *zap.Logger
}

func NewInteractor(svc *service.ProfileService, ledger profileout.DebriefLog, projector profileout.DebriefProjector, log *zap.Logger) profilein.Usecase {
	return &Interactor{svc: svc, ledger: ledger, projector: projector, log: logging.OrNop(log)}
}

// ApplyDebrief progresses the profile and records the debrief. Ledger
// failures are logged and never undo the progression.
func (i *Interactor) ApplyDebrief(ctx context.Context, input dto.DebriefInput) (dto.DebriefOutput, error) {
	next, outcome, record, err := i.svc.Debrief(input.Profile, input.Mission, input.Multiplier)
	if err != nil {
		return dto.DebriefOutput{}, err
	}
	out := dto.DebriefOutput{Profile: next, Outcome: outcome, Record: record}
	if i.ledger != nil {
		path, err := i.ledger.Save(ctx, record)
		if err != nil {
			i.log.Warn("write debrief note", zap.String("mission_id", record.MissionID), zap.Error(err))
		}
		out.NotePath = path
	}
	if i.projector != nil {
		if err := i.projector.Upsert(ctx, record); err != nil {
			i.log.Warn("project debrief", zap.String("debrief_id", record.ID), zap.Error(err))
		}
	}
	i.log.Info("debrief applied",
		zap.String("mission_id", record.MissionID),
		zap.Float64("multiplier", float64(record.Multiplier)),
		zap.Int("xp_gained", outcome.XPGained),
		zap.Bool("leveled_up", outcome.LeveledUp),
	)
	return out, nil
}

func (i *Interactor) History(ctx context.Context, input dto.HistoryInput) (dto.HistoryOutput, error) {
	if i.projector == nil {
		return dto.HistoryOutput{}, fmt.Errorf("debrief projector is not configured")
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	records, err := i.projector.Recent(ctx, limit)
	if err != nil {
		return dto.HistoryOutput{}, err
	}
	return dto.HistoryOutput{Records: records}, nil
}

// Reindex rebuilds the projection from the debrief notes.
func (i *Interactor) Reindex(ctx context.Context) (dto.ReindexOutput, error) {
	if i.ledger == nil || i.projector == nil {
		return dto.ReindexOutput{}, fmt.Errorf("debrief ledger is not configured")
	}
	records, err := i.ledger.List(ctx)
	if err != nil {
		return dto.ReindexOutput{}, err
	}
	if err := i.projector.Replace(ctx, records); err != nil {
		return dto.ReindexOutput{}, err
	}
	i.log.Info("debrief index rebuilt", zap.Int("records", len(records)))
	return dto.ReindexOutput{Records: len(records)}, nil
}
