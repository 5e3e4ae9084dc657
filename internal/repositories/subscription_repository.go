package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "itinero/internal/models/db_models"
)

type SubscriptionRepository interface {
	// GetActiveForAccount returns the newest live subscription, nil if none.
	GetActiveForAccount(ctx context.Context, accountID uuid.UUID) (*dbm.Subscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) GetActiveForAccount(ctx context.Context, accountID uuid.UUID) (*dbm.Subscription, error) {
	var sub dbm.Subscription
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND status IN ? AND ends_at >= ?",
			accountID,
			[]dbm.SubscriptionStatus{dbm.SubStatusActive, dbm.SubStatusTrialing},
			time.Now().Unix()).
		Order("ends_at DESC").
		Preload("Plan").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}
