package in

import (
	"context"

	"wayne/internal/modules/profile/dto"
)

type Usecase interface {
	ApplyDebrief(ctx context.Context, input dto.DebriefInput) (dto.DebriefOutput, error)
	History(ctx context.Context, input dto.HistoryInput) (dto.HistoryOutput, error)
	Reindex(ctx context.Context) (dto.ReindexOutput, error)
}
