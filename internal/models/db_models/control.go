package db_models

import (
	"github.com/google/uuid"
)

// ControlFamily is a NIST CSF function (ID, PR, DE, ...).
type ControlFamily struct {
	BaseModel
	Code        string `gorm:"type:varchar(10);uniqueIndex;not null"`
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
	OrderIndex  int    `gorm:"default:0"`

	Controls []Control `gorm:"foreignKey:FamilyID;constraint:OnDelete:CASCADE"`
}

// Control is a category/subcategory under a family (e.g. PR.AC-1).
type Control struct {
	BaseModel
	FamilyID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Code        string    `gorm:"type:varchar(30);uniqueIndex;not null"`
	Name        string    `gorm:"type:varchar(150);not null"`
	Description string    `gorm:"type:text"`
	OrderIndex  int       `gorm:"default:0"`
}
