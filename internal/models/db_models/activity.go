package db_models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// CatalogActivity is the persisted copy of a place record fetched from the
// search collaborator. Written once on fetch, read for map lookups; the
// scheduler never mutates it.
type CatalogActivity struct {
	BaseModel
	PlaceID    string         `gorm:"uniqueIndex"`
	Name       string
	Types      pq.StringArray `gorm:"type:text[]"`
	Rating     float64
	PriceLevel string
	Address    string
	Latitude   *float64
	Longitude  *float64
	Phone      string
	Website    string
	PhotoNames pq.StringArray `gorm:"type:text[]"`
	OpenHours  datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Reviews    datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
}
