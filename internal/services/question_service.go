package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"nistq/internal/models/db_models"
	"nistq/internal/models/request_models"
	"nistq/internal/models/response_models"
	"nistq/internal/repositories"
	"nistq/internal/resolver"
	"nistq/pkg/utils"
)

type QuestionServiceInterface interface {
	CreateQuestion(ctx context.Context, request request_models.CreateQuestionRequest) (*response_models.QuestionResponse, error)
	GetQuestion(ctx context.Context, id string) (*response_models.QuestionResponse, error)
	UpdateQuestion(ctx context.Context, id string, request request_models.UpdateQuestionRequest) (*response_models.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, id string) error
}

type QuestionService struct {
	questionRepo      repositories.QuestionRepositoryInterface
	questionnaireRepo repositories.QuestionnaireRepositoryInterface
	controlRepo       repositories.ControlRepositoryInterface
}

func NewQuestionService(
	questionRepo repositories.QuestionRepositoryInterface,
	questionnaireRepo repositories.QuestionnaireRepositoryInterface,
	controlRepo repositories.ControlRepositoryInterface,
) QuestionServiceInterface {
	return &QuestionService{
		questionRepo:      questionRepo,
		questionnaireRepo: questionnaireRepo,
		controlRepo:       controlRepo,
	}
}

// CreateQuestion validates the whole catalog with the new question included,
// so dependency cycles and dangling branching targets never reach storage.
func (s *QuestionService) CreateQuestion(ctx context.Context, request request_models.CreateQuestionRequest) (*response_models.QuestionResponse, error) {
	qnID, err := uuid.Parse(request.QuestionnaireID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	questionnaire, err := s.questionnaireRepo.GetQuestionnaireByID(ctx, qnID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if questionnaire == nil {
		return nil, utils.ErrQuestionnaireNotFound
	}

	question := &db_models.Question{
		QuestionnaireID: qnID,
		Code:            request.Code,
		QuestionText:    request.QuestionText,
		QuestionType:    request.QuestionType,
		OrderIndex:      request.OrderIndex,
		IsRequired:      true,
		Options:         request.Options,
	}
	question.ID = uuid.New()
	if request.IsRequired != nil {
		question.IsRequired = *request.IsRequired
	}

	if err := applyDependency(question, request.DependsOnQuestionID, request.DependsOnAnswer); err != nil {
		return nil, err
	}
	rules, err := buildRules(request.BranchingRules)
	if err != nil {
		return nil, err
	}
	question.BranchingRules = rules

	if request.ControlCode != "" {
		control, err := s.controlRepo.GetControlByCode(ctx, request.ControlCode)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if control == nil {
			return nil, utils.ErrControlNotFound
		}
		question.ControlID = &control.ID
	}

	catalog, err := s.questionRepo.ListByQuestionnaire(ctx, qnID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if err := resolver.ValidateCatalog(append(catalog, *question)); err != nil {
		return nil, errors.Join(utils.ErrInvalidInput, err)
	}

	if err := s.questionRepo.CreateQuestion(ctx, question); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return db_models.BuildQuestionResponse(question), nil
}

func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*response_models.QuestionResponse, error) {
	question, err := s.loadQuestion(ctx, id)
	if err != nil {
		return nil, err
	}
	return db_models.BuildQuestionResponse(question), nil
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id string, request request_models.UpdateQuestionRequest) (*response_models.QuestionResponse, error) {
	question, err := s.loadQuestion(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Code != nil {
		question.Code = *request.Code
	}
	if request.QuestionText != nil {
		question.QuestionText = *request.QuestionText
	}
	if request.QuestionType != nil {
		question.QuestionType = *request.QuestionType
	}
	if request.OrderIndex != nil {
		question.OrderIndex = *request.OrderIndex
	}
	if request.IsRequired != nil {
		question.IsRequired = *request.IsRequired
	}
	if request.Options != nil {
		question.Options = request.Options
	}
	if request.DependsOnQuestionID != nil || request.DependsOnAnswer != nil {
		question.DependsOnQuestionID = nil
		question.DependsOnAnswer = nil
		if err := applyDependency(question, request.DependsOnQuestionID, request.DependsOnAnswer); err != nil {
			return nil, err
		}
	}
	if request.BranchingRules != nil {
		rules, err := buildRules(request.BranchingRules)
		if err != nil {
			return nil, err
		}
		question.BranchingRules = rules
	}

	catalog, err := s.questionRepo.ListByQuestionnaire(ctx, question.QuestionnaireID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	for i := range catalog {
		if catalog[i].ID == question.ID {
			catalog[i] = *question
		}
	}
	if err := resolver.ValidateCatalog(catalog); err != nil {
		return nil, errors.Join(utils.ErrInvalidInput, err)
	}

	if err := s.questionRepo.UpdateQuestion(ctx, question); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return db_models.BuildQuestionResponse(question), nil
}

// DeleteQuestion refuses to remove a question that other questions still
// depend on or branch to.
func (s *QuestionService) DeleteQuestion(ctx context.Context, id string) error {
	question, err := s.loadQuestion(ctx, id)
	if err != nil {
		return err
	}

	catalog, err := s.questionRepo.ListByQuestionnaire(ctx, question.QuestionnaireID)
	if err != nil {
		return utils.ErrDatabaseError
	}

	remaining := make([]db_models.Question, 0, len(catalog))
	for i := range catalog {
		if catalog[i].ID != question.ID {
			remaining = append(remaining, catalog[i])
		}
	}
	if err := resolver.ValidateCatalog(remaining); err != nil {
		return errors.Join(utils.ErrInvalidInput, err)
	}

	if err := s.questionRepo.DeleteQuestion(ctx, question.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *QuestionService) loadQuestion(ctx context.Context, id string) (*db_models.Question, error) {
	questionID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	question, err := s.questionRepo.GetQuestionByID(ctx, questionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if question == nil {
		return nil, utils.ErrQuestionNotFound
	}
	return question, nil
}

func applyDependency(question *db_models.Question, dependsOnID *string, dependsOnAnswer *string) error {
	if dependsOnID == nil {
		if dependsOnAnswer != nil {
			return utils.ErrInvalidInput
		}
		return nil
	}

	depID, err := uuid.Parse(*dependsOnID)
	if err != nil {
		return utils.ErrInvalidInput
	}
	question.DependsOnQuestionID = &depID
	question.DependsOnAnswer = dependsOnAnswer
	return nil
}

func buildRules(requests []request_models.BranchingRuleRequest) (db_models.BranchingRules, error) {
	if len(requests) == 0 {
		return nil, nil
	}

	rules := make(db_models.BranchingRules, 0, len(requests))
	for _, r := range requests {
		rule := db_models.BranchingRule{
			Condition: db_models.BranchCondition(r.Condition),
			Value:     r.Value,
		}
		if err := rule.Condition.Validate(); err != nil {
			return nil, errors.Join(utils.ErrInvalidInput, err)
		}
		if r.NextQuestionID != nil {
			targetID, err := uuid.Parse(*r.NextQuestionID)
			if err != nil {
				return nil, utils.ErrInvalidInput
			}
			rule.NextQuestionID = &targetID
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
