package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"itinero/internal/catalog"
	dbm "itinero/internal/models/db_models"
)

// ActivityRepository persists fetched catalog records so entry weak
// references stay resolvable after the search cache expires.
type ActivityRepository interface {
	UpsertMany(ctx context.Context, activities []catalog.Activity) error
	GetByPlaceID(ctx context.Context, placeID string) (*catalog.Activity, error)
	GetByPlaceIDs(ctx context.Context, placeIDs []string) ([]catalog.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) UpsertMany(ctx context.Context, activities []catalog.Activity) error {
	if len(activities) == 0 {
		return nil
	}

	rows := make([]dbm.CatalogActivity, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, toRow(a))
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "place_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "types", "rating", "price_level", "address", "latitude", "longitude", "phone", "website", "photo_names", "open_hours", "reviews", "updated_at"}),
		}).
		Create(&rows).Error
}

func (r *activityRepository) GetByPlaceID(ctx context.Context, placeID string) (*catalog.Activity, error) {
	var row dbm.CatalogActivity
	err := r.db.WithContext(ctx).
		Where("place_id = ?", placeID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	a := fromRow(row)
	return &a, nil
}

func (r *activityRepository) GetByPlaceIDs(ctx context.Context, placeIDs []string) ([]catalog.Activity, error) {
	if len(placeIDs) == 0 {
		return nil, nil
	}

	var rows []dbm.CatalogActivity
	err := r.db.WithContext(ctx).
		Where("place_id IN ?", placeIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]catalog.Activity, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromRow(row))
	}
	return out, nil
}

func toRow(a catalog.Activity) dbm.CatalogActivity {
	row := dbm.CatalogActivity{
		PlaceID:    a.PlaceID,
		Name:       a.Name,
		Types:      append([]string(nil), a.Types...),
		Rating:     a.Rating,
		PriceLevel: string(a.PriceLevel),
		Address:    a.Address,
		Phone:      a.Phone,
		Website:    a.Website,
		PhotoNames: append([]string(nil), a.PhotoNames...),
	}
	if a.HasCoordinates() {
		lat, lng := a.Coordinates[0], a.Coordinates[1]
		row.Latitude, row.Longitude = &lat, &lng
	}
	if raw, err := json.Marshal(a.OpenHours); err == nil {
		row.OpenHours = raw
	}
	if raw, err := json.Marshal(a.Reviews); err == nil {
		row.Reviews = raw
	}
	return row
}

func fromRow(row dbm.CatalogActivity) catalog.Activity {
	a := catalog.Activity{
		PlaceID:    row.PlaceID,
		Name:       row.Name,
		Types:      append([]string(nil), row.Types...),
		Rating:     row.Rating,
		PriceLevel: catalog.PriceTier(row.PriceLevel),
		Address:    row.Address,
		Phone:      row.Phone,
		Website:    row.Website,
		PhotoNames: append([]string(nil), row.PhotoNames...),
	}
	if row.Latitude != nil && row.Longitude != nil {
		a.Coordinates = []float64{*row.Latitude, *row.Longitude}
	}
	_ = json.Unmarshal(row.OpenHours, &a.OpenHours)
	_ = json.Unmarshal(row.Reviews, &a.Reviews)
	return a
}
