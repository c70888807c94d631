package out

import (
	"context"

	"wayne/internal/modules/mission/domain"
)

// Planner decomposes free-text objectives into mission drafts.
type Planner interface {
	Decompose(ctx context.Context, objectives string) ([]domain.Draft, error)
}
