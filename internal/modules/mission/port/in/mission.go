package in

import (
	"context"

	"wayne/internal/modules/mission/dto"
)

type Usecase interface {
	Plan(ctx context.Context, input dto.PlanInput) (dto.PlanOutput, error)
}
