package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"nistq/internal/models/db_models"
)

type ResponseRepositoryInterface interface {
	// GetAnswerMap returns answers keyed by question id, one value per
	// question, as the resolver consumes them.
	GetAnswerMap(ctx context.Context, sessionID uuid.UUID) (map[uuid.UUID]string, error)
	// UpsertResponse records an answer, overwriting any earlier one for the
	// same (session, question) pair.
	UpsertResponse(ctx context.Context, response *db_models.Response) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]db_models.Response, error)
	CountBySession(ctx context.Context, sessionID uuid.UUID) (int64, error)
}

func NewResponseRepository(db *gorm.DB) ResponseRepositoryInterface {
	return &ResponseRepository{db: db}
}

type ResponseRepository struct {
	db *gorm.DB
}

func (r ResponseRepository) GetAnswerMap(ctx context.Context, sessionID uuid.UUID) (map[uuid.UUID]string, error) {
	var responses []db_models.Response
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Find(&responses).Error
	if err != nil {
		return nil, err
	}

	answers := make(map[uuid.UUID]string, len(responses))
	for _, response := range responses {
		answers[response.QuestionID] = response.AnswerValue
	}
	return answers, nil
}

func (r ResponseRepository) UpsertResponse(ctx context.Context, response *db_models.Response) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "session_id"}, {Name: "question_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"answer_value": response.AnswerValue,
				"answered_at":  time.Now(),
			}),
		}).Create(response).Error
	})
}

func (r ResponseRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]db_models.Response, error) {
	var responses []db_models.Response
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("answered_at").
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}

func (r ResponseRepository) CountBySession(ctx context.Context, sessionID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Response{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	return count, err
}
