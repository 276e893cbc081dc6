package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"nistq/internal/models/db_models"
)

type SessionRepositoryInterface interface {
	CreateSession(ctx context.Context, session *db_models.AssessmentSession) error
	GetSessionByToken(ctx context.Context, token string) (*db_models.AssessmentSession, error)
	GetSessionByID(ctx context.Context, id uuid.UUID) (*db_models.AssessmentSession, error)
	UpdateSession(ctx context.Context, session *db_models.AssessmentSession) error
	MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time) error
	TouchActivity(ctx context.Context, id uuid.UUID) error
}

func NewSessionRepository(db *gorm.DB) SessionRepositoryInterface {
	return &SessionRepository{db: db}
}

type SessionRepository struct {
	db *gorm.DB
}

func (s SessionRepository) CreateSession(ctx context.Context, session *db_models.AssessmentSession) error {
	return s.db.WithContext(ctx).Create(session).Error
}

func (s SessionRepository) GetSessionByToken(ctx context.Context, token string) (*db_models.AssessmentSession, error) {
	var session db_models.AssessmentSession
	err := s.db.WithContext(ctx).Where("session_token = ?", token).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (s SessionRepository) GetSessionByID(ctx context.Context, id uuid.UUID) (*db_models.AssessmentSession, error) {
	var session db_models.AssessmentSession
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (s SessionRepository) UpdateSession(ctx context.Context, session *db_models.AssessmentSession) error {
	return s.db.WithContext(ctx).Save(session).Error
}

func (s SessionRepository) MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time) error {
	return s.db.WithContext(ctx).
		Model(&db_models.AssessmentSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       db_models.SessionCompleted,
			"completed_at": completedAt,
		}).Error
}

func (s SessionRepository) TouchActivity(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).
		Model(&db_models.AssessmentSession{}).
		Where("id = ?", id).
		Update("last_activity_at", time.Now()).Error
}
