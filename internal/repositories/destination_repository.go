package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	dbm "itinero/internal/models/db_models"
)

type DestinationRepository interface {
	// GetDateRange returns the trip bounds for the destination within the
	// itinerary, or (nil zero-values, false) when the pair is unknown.
	GetDateRange(ctx context.Context, itineraryID, destinationID string) (from, to time.Time, found bool, err error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) GetDateRange(ctx context.Context, itineraryID, destinationID string) (time.Time, time.Time, bool, error) {
	var dest dbm.Destination
	err := r.db.WithContext(ctx).
		Where("id = ? AND itinerary_id = ?", destinationID, itineraryID).
		First(&dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, time.Time{}, false, nil
		}
		return time.Time{}, time.Time{}, false, err
	}
	return dest.FromDate, dest.ToDate, true, nil
}
