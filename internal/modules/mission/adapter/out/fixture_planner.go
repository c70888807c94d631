package out

import (
	"context"

	"wayne/internal/modules/mission/domain"
	missionout "wayne/internal/modules/mission/port/out"
)

// FixturePlanner serves a fixed demo schedule. It backs offline use when no
// API key is configured.
type FixturePlanner struct{}

func NewFixturePlanner() missionout.Planner {
	return FixturePlanner{}
}

func (FixturePlanner) Decompose(ctx context.Context, _ string) ([]domain.Draft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []domain.Draft{
		{
			Title:           "Analyze Algebra Patterns",
			Description:     "Solve 10 quadratic equations. Precision is key.",
			StartTime:       "09:00",
			DurationMinutes: 60,
			Category:        domain.CategoryIntellect,
			XPReward:        50,
			Difficulty:      domain.DifficultyRookie,
		},
		{
			Title:           "Physical Conditioning",
			Description:     "30 minutes cardio. Prepare for the chase.",
			StartTime:       "16:00",
			DurationMinutes: 30,
			Category:        domain.CategoryPhysical,
			XPReward:        40,
			Difficulty:      domain.DifficultyVigilante,
		},
	}, nil
}
