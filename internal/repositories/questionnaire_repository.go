package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"nistq/internal/models/db_models"
)

type QuestionnaireRepositoryInterface interface {
	CreateQuestionnaire(ctx context.Context, questionnaire *db_models.Questionnaire) error
	GetQuestionnaireByID(ctx context.Context, id uuid.UUID) (*db_models.Questionnaire, error)
	ListQuestionnaires(ctx context.Context, page int, pageSize int, activeOnly bool) ([]db_models.Questionnaire, error)
	UpdateQuestionnaire(ctx context.Context, questionnaire *db_models.Questionnaire) error
	DeactivateQuestionnaire(ctx context.Context, id uuid.UUID) error
}

func NewQuestionnaireRepository(db *gorm.DB) QuestionnaireRepositoryInterface {
	return &QuestionnaireRepository{db: db}
}

type QuestionnaireRepository struct {
	db *gorm.DB
}

func (q QuestionnaireRepository) CreateQuestionnaire(ctx context.Context, questionnaire *db_models.Questionnaire) error {
	return q.db.WithContext(ctx).Create(questionnaire).Error
}

func (q QuestionnaireRepository) GetQuestionnaireByID(ctx context.Context, id uuid.UUID) (*db_models.Questionnaire, error) {
	var questionnaire db_models.Questionnaire
	err := q.db.WithContext(ctx).Where("id = ?", id).First(&questionnaire).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &questionnaire, nil
}

func (q QuestionnaireRepository) ListQuestionnaires(ctx context.Context, page int, pageSize int, activeOnly bool) ([]db_models.Questionnaire, error) {
	var questionnaires []db_models.Questionnaire
	query := q.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at").Offset(offset).Limit(pageSize).Find(&questionnaires).Error
	if err != nil {
		return nil, err
	}
	return questionnaires, nil
}

func (q QuestionnaireRepository) UpdateQuestionnaire(ctx context.Context, questionnaire *db_models.Questionnaire) error {
	return q.db.WithContext(ctx).Save(questionnaire).Error
}

func (q QuestionnaireRepository) DeactivateQuestionnaire(ctx context.Context, id uuid.UUID) error {
	return q.db.WithContext(ctx).
		Model(&db_models.Questionnaire{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
