package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base is embedded by every persisted record.
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// All lists every model for auto-migration.
func All() []interface{} {
	return []interface{}{
		&Profile{},
		&Day{},
		&MealEntry{},
		&BodyMeasurement{},
		&GamificationState{},
		&ProgressSummaryCache{},
	}
}
