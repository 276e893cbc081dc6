package services

import (
	"context"

	"github.com/google/uuid"
	"nistq/internal/models/db_models"
	"nistq/internal/models/request_models"
	"nistq/internal/models/response_models"
	"nistq/internal/repositories"
	"nistq/pkg/utils"
)

type QuestionnaireServiceInterface interface {
	CreateQuestionnaire(ctx context.Context, request request_models.CreateQuestionnaireRequest) (*response_models.QuestionnaireResponse, error)
	GetQuestionnaire(ctx context.Context, id string) (*response_models.QuestionnaireResponse, error)
	ListQuestionnaires(ctx context.Context, page int, pageSize int, activeOnly bool) ([]response_models.QuestionnaireResponse, error)
	UpdateQuestionnaire(ctx context.Context, id string, request request_models.UpdateQuestionnaireRequest) (*response_models.QuestionnaireResponse, error)
	DeactivateQuestionnaire(ctx context.Context, id string) error
	GetCatalog(ctx context.Context, id string) ([]response_models.QuestionResponse, error)
}

type QuestionnaireService struct {
	questionnaireRepo repositories.QuestionnaireRepositoryInterface
	questionRepo      repositories.QuestionRepositoryInterface
}

func NewQuestionnaireService(
	questionnaireRepo repositories.QuestionnaireRepositoryInterface,
	questionRepo repositories.QuestionRepositoryInterface,
) QuestionnaireServiceInterface {
	return &QuestionnaireService{
		questionnaireRepo: questionnaireRepo,
		questionRepo:      questionRepo,
	}
}

func (q *QuestionnaireService) CreateQuestionnaire(ctx context.Context, request request_models.CreateQuestionnaireRequest) (*response_models.QuestionnaireResponse, error) {
	questionnaire := &db_models.Questionnaire{
		Title:       request.Title,
		Description: request.Description,
		Category:    request.Category,
		Version:     request.Version,
		IsActive:    true,
	}
	if questionnaire.Version == "" {
		questionnaire.Version = "1.0"
	}

	if err := q.questionnaireRepo.CreateQuestionnaire(ctx, questionnaire); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return db_models.BuildQuestionnaireResponse(questionnaire, 0), nil
}

func (q *QuestionnaireService) GetQuestionnaire(ctx context.Context, id string) (*response_models.QuestionnaireResponse, error) {
	questionnaire, catalog, err := q.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return db_models.BuildQuestionnaireResponse(questionnaire, len(catalog)), nil
}

func (q *QuestionnaireService) ListQuestionnaires(ctx context.Context, page int, pageSize int, activeOnly bool) ([]response_models.QuestionnaireResponse, error) {
	if page < 1 || pageSize < 1 {
		return nil, utils.ErrInvalidPage
	}

	questionnaires, err := q.questionnaireRepo.ListQuestionnaires(ctx, page, pageSize, activeOnly)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.QuestionnaireResponse, 0, len(questionnaires))
	for i := range questionnaires {
		catalog, err := q.questionRepo.ListByQuestionnaire(ctx, questionnaires[i].ID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		out = append(out, *db_models.BuildQuestionnaireResponse(&questionnaires[i], len(catalog)))
	}
	return out, nil
}

func (q *QuestionnaireService) UpdateQuestionnaire(ctx context.Context, id string, request request_models.UpdateQuestionnaireRequest) (*response_models.QuestionnaireResponse, error) {
	questionnaire, catalog, err := q.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		questionnaire.Title = *request.Title
	}
	if request.Description != nil {
		questionnaire.Description = *request.Description
	}
	if request.Category != nil {
		questionnaire.Category = *request.Category
	}
	if request.Version != nil {
		questionnaire.Version = *request.Version
	}
	if request.IsActive != nil {
		questionnaire.IsActive = *request.IsActive
	}

	if err := q.questionnaireRepo.UpdateQuestionnaire(ctx, questionnaire); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return db_models.BuildQuestionnaireResponse(questionnaire, len(catalog)), nil
}

func (q *QuestionnaireService) DeactivateQuestionnaire(ctx context.Context, id string) error {
	questionnaire, _, err := q.load(ctx, id)
	if err != nil {
		return err
	}
	if err := q.questionnaireRepo.DeactivateQuestionnaire(ctx, questionnaire.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (q *QuestionnaireService) GetCatalog(ctx context.Context, id string) ([]response_models.QuestionResponse, error) {
	_, catalog, err := q.load(ctx, id)
	if err != nil {
		return nil, err
	}

	out := make([]response_models.QuestionResponse, 0, len(catalog))
	for i := range catalog {
		out = append(out, *db_models.BuildQuestionResponse(&catalog[i]))
	}
	return out, nil
}

func (q *QuestionnaireService) load(ctx context.Context, id string) (*db_models.Questionnaire, []db_models.Question, error) {
	qnID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil, utils.ErrInvalidInput
	}

	questionnaire, err := q.questionnaireRepo.GetQuestionnaireByID(ctx, qnID)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}
	if questionnaire == nil {
		return nil, nil, utils.ErrQuestionnaireNotFound
	}

	catalog, err := q.questionRepo.ListByQuestionnaire(ctx, qnID)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}
	return questionnaire, catalog, nil
}
