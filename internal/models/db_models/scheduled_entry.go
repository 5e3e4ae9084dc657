package db_models

import (
	"time"

	"github.com/google/uuid"
)

// ScheduledEntry joins an activity to an itinerary/destination. Date is null
// while the entry is unscheduled; StartTime/EndTime are "hh:mm" strings and
// either both set or both null. Removal is a soft delete via BaseModel.
type ScheduledEntry struct {
	BaseModel
	ItineraryID   uuid.UUID `gorm:"index:idx_entry_scope"`
	DestinationID uuid.UUID `gorm:"index:idx_entry_scope"`
	PlaceID       string    `gorm:"index"`
	Date          *time.Time
	StartTime     *string `gorm:"size:5"`
	EndTime       *string `gorm:"size:5"`
	Notes         string
	Position      int
}
