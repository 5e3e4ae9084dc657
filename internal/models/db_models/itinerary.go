package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Itinerary struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`
	Title     string
	IsShared  bool

	Destinations []Destination
}

// Destination is one location within an itinerary, carrying the trip date
// bounds the scheduler validates against.
type Destination struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"index"`
	City        string
	Country     string
	FromDate    time.Time
	ToDate      time.Time

	Entries []ScheduledEntry `gorm:"foreignKey:DestinationID"`
}
