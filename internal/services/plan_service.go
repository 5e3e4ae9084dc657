package services

import (
	"context"

	"itinero/internal/models/response_models"
	"itinero/internal/repositories"
	"itinero/pkg/utils"
)

type PlanServiceInterface interface {
	ListPlans(ctx context.Context) ([]response_models.SubscriptionPlanResponse, error)
	GetPlanByID(ctx context.Context, planID string) (response_models.SubscriptionPlanResponse, error)
}

type PlanService struct {
	planRepo repositories.PlanRepository
}

func NewPlanService(planRepo repositories.PlanRepository) PlanServiceInterface {
	return &PlanService{planRepo: planRepo}
}

func (p *PlanService) ListPlans(ctx context.Context) ([]response_models.SubscriptionPlanResponse, error) {
	plans, err := p.planRepo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SubscriptionPlanResponse, 0, len(plans))
	for _, plan := range plans {
		out = append(out, response_models.BuildSubscriptionPlanResponse(plan))
	}
	return out, nil
}

func (p *PlanService) GetPlanByID(ctx context.Context, planID string) (response_models.SubscriptionPlanResponse, error) {
	plan, err := p.planRepo.GetByID(ctx, planID)
	if err != nil {
		return response_models.SubscriptionPlanResponse{}, utils.ErrDatabaseError
	}
	if plan == nil {
		return response_models.SubscriptionPlanResponse{}, utils.ErrPlanNotFound
	}
	return response_models.BuildSubscriptionPlanResponse(*plan), nil
}
