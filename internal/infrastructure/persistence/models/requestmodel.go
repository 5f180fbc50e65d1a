package models

import "gorm.io/datatypes"

type RequestModel struct {
	ID          uint           `gorm:"primaryKey"`
	Number      uint           `gorm:"uniqueIndex;not null"`
	UserID      uint           `gorm:"not null;index"`
	Description string         `gorm:"type:text;not null"`
	Priority    string         `gorm:"size:20;not null;index"`
	Status      string         `gorm:"size:20;not null;index"`
	Extras      datatypes.JSON `gorm:"type:json"`
	Version     int            `gorm:"not null;default:1"`
	CreatedAt   int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64          `gorm:"autoUpdateTime:milli;not null"`
	ClosedAt    *int64

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (RequestModel) TableName() string {
	return "requests"
}
