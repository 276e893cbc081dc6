package db_models

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
	SessionAbandoned  SessionStatus = "abandoned"
)

type AssessmentSession struct {
	BaseModel
	QuestionnaireID   uuid.UUID     `gorm:"type:uuid;not null;index"`
	UserID            string        `gorm:"type:varchar(255)"`
	SessionToken      string        `gorm:"type:varchar(255);uniqueIndex;not null"`
	Status            SessionStatus `gorm:"type:varchar(20);default:'in_progress';not null"`
	CurrentQuestionID *uuid.UUID    `gorm:"type:uuid"`
	StartedAt         time.Time     `gorm:"autoCreateTime"`
	CompletedAt       *time.Time
	LastActivityAt    time.Time `gorm:"autoCreateTime"`

	Responses []Response `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

func (s SessionStatus) IsActive() bool {
	return s == SessionInProgress
}
