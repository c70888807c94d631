package in

import (
	"context"

	profiledto "wayne/internal/modules/profile/dto"
	profilein "wayne/internal/modules/profile/port/in"
)

type CLIHandler struct {
	usecase profilein.Usecase
}

func NewCLIHandler(usecase profilein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) History(ctx context.Context, limit int) (profiledto.HistoryOutput, error) {
	return h.usecase.History(ctx, profiledto.HistoryInput{Limit: limit})
}

func (h CLIHandler) Reindex(ctx context.Context) (profiledto.ReindexOutput, error) {
	return h.usecase.Reindex(ctx)
}
