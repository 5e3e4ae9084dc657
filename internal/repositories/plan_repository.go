package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	dbm "itinero/internal/models/db_models"
)

type PlanRepository interface {
	// GetByID returns nil without error when no such plan exists.
	GetByID(ctx context.Context, planID string) (*dbm.Plan, error)
	ListActive(ctx context.Context) ([]dbm.Plan, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) GetByID(ctx context.Context, planID string) (*dbm.Plan, error) {
	var plan dbm.Plan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", planID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) ListActive(ctx context.Context) ([]dbm.Plan, error) {
	var plans []dbm.Plan
	err := r.db.WithContext(ctx).
		Where("is_active = TRUE").
		Order("price_minor ASC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}
