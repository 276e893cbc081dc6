package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"nistq/internal/models/db_models"
	"nistq/internal/models/request_models"
	"nistq/internal/models/response_models"
	"nistq/internal/repositories"
	"nistq/internal/resolver"
	"nistq/pkg/memcache"
	"nistq/pkg/utils"
)

type AssessmentServiceInterface interface {
	StartAssessment(ctx context.Context, questionnaireID string, userID string) (*response_models.SessionResponse, error)
	GetSession(ctx context.Context, token string) (*response_models.SessionResponse, error)
	GetNextQuestion(ctx context.Context, token string) (*response_models.QuestionResponse, error)
	SubmitResponse(ctx context.Context, request request_models.SubmitResponseRequest) (*response_models.SubmitResponseResult, error)
	GetProgress(ctx context.Context, token string) (*response_models.ProgressResponse, error)
	ListResponses(ctx context.Context, token string) ([]response_models.ResponseDetail, error)
	ResumeSession(ctx context.Context, token string) (*response_models.SessionResponse, error)
}

type AssessmentService struct {
	sessionRepo       repositories.SessionRepositoryInterface
	responseRepo      repositories.ResponseRepositoryInterface
	questionRepo      repositories.QuestionRepositoryInterface
	questionnaireRepo repositories.QuestionnaireRepositoryInterface
	locks             *memcache.SessionLocks
}

func NewAssessmentService(
	sessionRepo repositories.SessionRepositoryInterface,
	responseRepo repositories.ResponseRepositoryInterface,
	questionRepo repositories.QuestionRepositoryInterface,
	questionnaireRepo repositories.QuestionnaireRepositoryInterface,
	locks *memcache.SessionLocks,
) AssessmentServiceInterface {
	return &AssessmentService{
		sessionRepo:       sessionRepo,
		responseRepo:      responseRepo,
		questionRepo:      questionRepo,
		questionnaireRepo: questionnaireRepo,
		locks:             locks,
	}
}

func (a *AssessmentService) StartAssessment(ctx context.Context, questionnaireID string, userID string) (*response_models.SessionResponse, error) {
	qnID, err := uuid.Parse(questionnaireID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	questionnaire, err := a.questionnaireRepo.GetQuestionnaireByID(ctx, qnID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if questionnaire == nil || !questionnaire.IsActive {
		return nil, utils.ErrQuestionnaireNotFound
	}

	session := &db_models.AssessmentSession{
		QuestionnaireID: qnID,
		UserID:          userID,
		SessionToken:    uuid.New().String(),
		Status:          db_models.SessionInProgress,
	}
	if err := a.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return db_models.BuildSessionResponse(session), nil
}

func (a *AssessmentService) GetSession(ctx context.Context, token string) (*response_models.SessionResponse, error) {
	session, err := a.activeOrAnySession(ctx, token)
	if err != nil {
		return nil, err
	}
	return db_models.BuildSessionResponse(session), nil
}

func (a *AssessmentService) GetNextQuestion(ctx context.Context, token string) (*response_models.QuestionResponse, error) {
	session, err := a.activeOrAnySession(ctx, token)
	if err != nil {
		return nil, err
	}

	catalog, answers, err := a.loadCatalogAndAnswers(ctx, session)
	if err != nil {
		return nil, err
	}

	var next *db_models.Question
	if session.CurrentQuestionID != nil {
		next = resolver.ResolveAfterAnswer(catalog, answers, *session.CurrentQuestionID)
	} else {
		next = resolver.ResolveNext(catalog, answers)
	}

	// nil means no more questions; the handler renders that as empty data.
	return db_models.BuildQuestionResponse(next), nil
}

// SubmitResponse records one answer and advances the assessment. The whole
// read-decide-write cycle runs under the per-session lock so concurrent
// submissions for the same session are serialized.
func (a *AssessmentService) SubmitResponse(ctx context.Context, request request_models.SubmitResponseRequest) (*response_models.SubmitResponseResult, error) {
	release := a.locks.Acquire(request.SessionToken)
	defer release()

	session, err := a.sessionRepo.GetSessionByToken(ctx, request.SessionToken)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}
	if !session.Status.IsActive() {
		return nil, utils.ErrSessionNotActive
	}

	questionID, err := uuid.Parse(request.QuestionID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	question, err := a.questionRepo.GetQuestionByID(ctx, questionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if question == nil {
		return nil, utils.ErrQuestionNotFound
	}
	if question.QuestionnaireID != session.QuestionnaireID {
		return nil, utils.ErrQuestionMismatch
	}
	if question.IsRequired && request.AnswerValue == "" {
		return nil, utils.ErrInvalidInput
	}

	catalog, answers, err := a.loadCatalogAndAnswers(ctx, session)
	if err != nil {
		return nil, err
	}

	// Eligibility is judged against the answers recorded before this
	// submission.
	if !resolver.Eligible(question, answers) {
		return nil, utils.ErrDependencyNotMet
	}

	response := &db_models.Response{
		SessionID:   session.ID,
		QuestionID:  questionID,
		AnswerValue: request.AnswerValue,
	}
	if err := a.responseRepo.UpsertResponse(ctx, response); err != nil {
		return nil, utils.ErrDatabaseError
	}

	answers[questionID] = request.AnswerValue

	next := resolver.ResolveAfterAnswer(catalog, answers, questionID)
	completed := next == nil

	if completed {
		if err := a.sessionRepo.MarkCompleted(ctx, session.ID, time.Now().UTC()); err != nil {
			return nil, utils.ErrDatabaseError
		}
	} else {
		session.CurrentQuestionID = &questionID
		session.LastActivityAt = time.Now().UTC()
		if err := a.sessionRepo.UpdateSession(ctx, session); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	result := &response_models.SubmitResponseResult{
		Response: response_models.ResponseDetail{
			QuestionID:  questionID.String(),
			AnswerValue: request.AnswerValue,
			AnsweredAt:  time.Now().UTC(),
		},
		Completed: completed,
	}
	if next != nil {
		result.NextQuestion = db_models.BuildQuestionResponse(next)
	}
	return result, nil
}

func (a *AssessmentService) GetProgress(ctx context.Context, token string) (*response_models.ProgressResponse, error) {
	session, err := a.activeOrAnySession(ctx, token)
	if err != nil {
		return nil, err
	}

	catalog, answers, err := a.loadCatalogAndAnswers(ctx, session)
	if err != nil {
		return nil, err
	}

	progress := resolver.ComputeProgress(catalog, answers)

	return &response_models.ProgressResponse{
		SessionToken:         session.SessionToken,
		AnsweredQuestions:    progress.AnsweredCount,
		TotalQuestions:       progress.TotalCount,
		CompletionPercentage: progress.CompletionPercentage,
		Status:               string(session.Status),
	}, nil
}

func (a *AssessmentService) ListResponses(ctx context.Context, token string) ([]response_models.ResponseDetail, error) {
	session, err := a.activeOrAnySession(ctx, token)
	if err != nil {
		return nil, err
	}

	responses, err := a.responseRepo.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ResponseDetail, 0, len(responses))
	for _, response := range responses {
		out = append(out, response_models.ResponseDetail{
			QuestionID:  response.QuestionID.String(),
			AnswerValue: response.AnswerValue,
			AnsweredAt:  response.AnsweredAt,
		})
	}
	return out, nil
}

func (a *AssessmentService) ResumeSession(ctx context.Context, token string) (*response_models.SessionResponse, error) {
	session, err := a.activeOrAnySession(ctx, token)
	if err != nil {
		return nil, err
	}
	if !session.Status.IsActive() {
		return nil, utils.ErrSessionNotActive
	}

	if err := a.sessionRepo.TouchActivity(ctx, session.ID); err != nil {
		return nil, utils.ErrDatabaseError
	}
	session.LastActivityAt = time.Now().UTC()

	return db_models.BuildSessionResponse(session), nil
}

func (a *AssessmentService) activeOrAnySession(ctx context.Context, token string) (*db_models.AssessmentSession, error) {
	session, err := a.sessionRepo.GetSessionByToken(ctx, token)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}
	return session, nil
}

func (a *AssessmentService) loadCatalogAndAnswers(ctx context.Context, session *db_models.AssessmentSession) ([]db_models.Question, map[uuid.UUID]string, error) {
	catalog, err := a.questionRepo.ListByQuestionnaire(ctx, session.QuestionnaireID)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}

	answers, err := a.responseRepo.GetAnswerMap(ctx, session.ID)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}
	return catalog, answers, nil
}
