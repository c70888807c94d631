package service

import (
	"context"
	"fmt"
	"strings"

	"wayne/internal/modules/mission/domain"
	missionout "wayne/internal/modules/mission/port/out"
	apperrors "wayne/internal/platform/errors"
	"wayne/internal/platform/id"
)

type MissionService struct {
	idGen   id.Generator
	planner missionout.Planner
}

func NewMissionService(idGen id.Generator, planner missionout.Planner) *MissionService {
	return &MissionService{idGen: idGen, planner: planner}
}

// Decompose asks the planner for drafts. Every planner failure, including an
// empty answer, is reported as ErrServiceUnavailable.
func (s *MissionService) Decompose(ctx context.Context, objectives string) ([]domain.Draft, error) {
	objectives = strings.TrimSpace(objectives)
	if objectives == "" {
		return nil, fmt.Errorf("%w: objectives are required", apperrors.ErrInvalidInput)
	}
	drafts, err := s.planner.Decompose(ctx, objectives)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrServiceUnavailable, err)
	}
	if len(drafts) == 0 {
		return nil, fmt.Errorf("%w: planner returned no missions", apperrors.ErrServiceUnavailable)
	}
	return drafts, nil
}

// Normalize canonicalizes drafts and assigns each a fresh id with the
// completion flag cleared. One invalid draft rejects the batch.
func (s *MissionService) Normalize(drafts []domain.Draft) ([]domain.Mission, error) {
	out := make([]domain.Mission, 0, len(drafts))
	for i, draft := range drafts {
		canonical, err := draft.Canonical()
		if err != nil {
			return nil, fmt.Errorf("%w: mission %d: %v", apperrors.ErrServiceUnavailable, i+1, err)
		}
		out = append(out, canonical.Mission(s.idGen.New()))
	}
	return out, nil
}
