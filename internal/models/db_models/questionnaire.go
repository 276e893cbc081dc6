package db_models

type Questionnaire struct {
	BaseModel
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"type:varchar(100)"`
	Version     string `gorm:"type:varchar(50);default:'1.0'"`
	IsActive    bool   `gorm:"default:true"`

	Questions []Question `gorm:"constraint:OnDelete:CASCADE"`
}
