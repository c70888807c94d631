package dto

import "wayne/internal/modules/mission/domain"

type PlanInput struct {
	Objectives string
}

type PlanOutput struct {
	Missions []domain.Mission
}
