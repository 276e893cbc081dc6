package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"nistq/internal/models/db_models"
)

type QuestionRepositoryInterface interface {
	CreateQuestion(ctx context.Context, question *db_models.Question) error
	GetQuestionByID(ctx context.Context, id uuid.UUID) (*db_models.Question, error)
	// ListByQuestionnaire returns the full catalog for a questionnaire in its
	// canonical order: order_index ascending, code as the tie-break.
	ListByQuestionnaire(ctx context.Context, questionnaireID uuid.UUID) ([]db_models.Question, error)
	UpdateQuestion(ctx context.Context, question *db_models.Question) error
	DeleteQuestion(ctx context.Context, id uuid.UUID) error
}

func NewQuestionRepository(db *gorm.DB) QuestionRepositoryInterface {
	return &QuestionRepository{db: db}
}

type QuestionRepository struct {
	db *gorm.DB
}

func (q QuestionRepository) CreateQuestion(ctx context.Context, question *db_models.Question) error {
	return q.db.WithContext(ctx).Create(question).Error
}

func (q QuestionRepository) GetQuestionByID(ctx context.Context, id uuid.UUID) (*db_models.Question, error) {
	var question db_models.Question
	err := q.db.WithContext(ctx).Where("id = ?", id).First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (q QuestionRepository) ListByQuestionnaire(ctx context.Context, questionnaireID uuid.UUID) ([]db_models.Question, error) {
	var questions []db_models.Question
	err := q.db.WithContext(ctx).
		Where("questionnaire_id = ?", questionnaireID).
		Order("order_index, code").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (q QuestionRepository) UpdateQuestion(ctx context.Context, question *db_models.Question) error {
	return q.db.WithContext(ctx).Save(question).Error
}

func (q QuestionRepository) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	return q.db.WithContext(ctx).Delete(&db_models.Question{}, "id = ?", id).Error
}
