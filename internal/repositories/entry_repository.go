// internal/repositories/entry_repo.go
package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "itinero/internal/models/db_models"
	"itinero/internal/scheduler"
)

// allowed targets for the generic filtered read
var queryableColumns = map[string]map[string]bool{
	"scheduled_entries": {"date": true, "start_time": true, "end_time": true, "notes": true, "position": true},
}

// EntryRepository is the persistence gateway for scheduled entries. It
// satisfies scheduler.Gateway; QueryField is the generic single-field read
// used by edit popovers.
type EntryRepository interface {
	scheduler.Gateway
	QueryField(ctx context.Context, table, selectColumn, keyColumn string, keys []string) ([]map[string]interface{}, error)
}

type entryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) Create(ctx context.Context, entry scheduler.Entry) (string, error) {
	itinUUID, err := uuid.Parse(entry.ItineraryID)
	if err != nil {
		return "", err
	}
	destUUID, err := uuid.Parse(entry.DestinationID)
	if err != nil {
		return "", err
	}

	row := dbm.ScheduledEntry{
		ItineraryID:   itinUUID,
		DestinationID: destUUID,
		PlaceID:       entry.PlaceID,
		Date:          entry.Date,
		StartTime:     entry.StartTime,
		EndTime:       entry.EndTime,
		Notes:         entry.Notes,
		Position:      entry.Position,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", err
	}
	return row.ID.String(), nil
}

func (r *entryRepository) Update(ctx context.Context, entryID string, patch scheduler.Patch) error {
	entryUUID, err := uuid.Parse(entryID)
	if err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Model(&dbm.ScheduledEntry{}).
		Where("id = ?", entryUUID).
		Updates(map[string]interface{}(patch))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *entryRepository) SoftDelete(ctx context.Context, entryID string) error {
	entryUUID, err := uuid.Parse(entryID)
	if err != nil {
		return err
	}

	// GORM turns this into an UPDATE of deleted_at; rows stay for undo/audit.
	res := r.db.WithContext(ctx).
		Where("id = ?", entryUUID).
		Delete(&dbm.ScheduledEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *entryRepository) List(ctx context.Context, itineraryID, destinationID string) ([]scheduler.Entry, error) {
	var rows []dbm.ScheduledEntry
	err := r.db.WithContext(ctx).
		Where("itinerary_id = ? AND destination_id = ?", itineraryID, destinationID).
		Order("date ASC NULLS LAST, position ASC, created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]scheduler.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, scheduler.Entry{
			ID:            row.ID.String(),
			ItineraryID:   row.ItineraryID.String(),
			DestinationID: row.DestinationID.String(),
			PlaceID:       row.PlaceID,
			Date:          row.Date,
			StartTime:     row.StartTime,
			EndTime:       row.EndTime,
			Notes:         row.Notes,
			Position:      row.Position,
		})
	}
	return entries, nil
}

func (r *entryRepository) QueryField(ctx context.Context, table, selectColumn, keyColumn string, keys []string) ([]map[string]interface{}, error) {
	cols, ok := queryableColumns[table]
	if !ok || !cols[selectColumn] || keyColumn != "id" {
		return nil, fmt.Errorf("query target %s.%s by %s is not allowed", table, selectColumn, keyColumn)
	}

	var rows []map[string]interface{}
	err := r.db.WithContext(ctx).
		Table(table).
		Select(selectColumn).
		Where(keyColumn+" IN ? AND deleted_at IS NULL", keys).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
