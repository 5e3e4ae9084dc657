package db_models

import (
	"gorm.io/datatypes"
)

type Plan struct {
	BaseModel
	Code        string `gorm:"uniqueIndex"` // e.g., "free", "pro_monthly"
	Name        string
	Description *string
	PriceMinor  int64  // 999 = $9.99
	Currency    string `gorm:"size:3"`
	IsActive    bool   `gorm:"default:true"`
	// Feature flags and limits, e.g. {"max_itineraries": 3}
	Features datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
