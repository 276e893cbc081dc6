package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Response holds one answer per (session, question). Resubmission overwrites
// via the unique index, it never appends.
type Response struct {
	BaseModel
	SessionID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_session_question"`
	QuestionID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_session_question"`
	AnswerValue string    `gorm:"type:text;not null"`
	AnsweredAt  time.Time `gorm:"autoCreateTime"`
}
