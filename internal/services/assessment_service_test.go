package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nistq/internal/models/db_models"
	"nistq/internal/models/request_models"
	"nistq/pkg/memcache"
	"nistq/pkg/utils"
)

// fakeStore backs all repository interfaces in memory so each test runs
// against an isolated store.
type fakeStore struct {
	questionnaires map[uuid.UUID]*db_models.Questionnaire
	questions      map[uuid.UUID]*db_models.Question
	sessions       map[uuid.UUID]*db_models.AssessmentSession
	responses      map[uuid.UUID]map[uuid.UUID]*db_models.Response
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		questionnaires: make(map[uuid.UUID]*db_models.Questionnaire),
		questions:      make(map[uuid.UUID]*db_models.Question),
		sessions:       make(map[uuid.UUID]*db_models.AssessmentSession),
		responses:      make(map[uuid.UUID]map[uuid.UUID]*db_models.Response),
	}
}

func (f *fakeStore) CreateQuestionnaire(_ context.Context, questionnaire *db_models.Questionnaire) error {
	if questionnaire.ID == uuid.Nil {
		questionnaire.ID = uuid.New()
	}
	f.questionnaires[questionnaire.ID] = questionnaire
	return nil
}

func (f *fakeStore) GetQuestionnaireByID(_ context.Context, id uuid.UUID) (*db_models.Questionnaire, error) {
	return f.questionnaires[id], nil
}

func (f *fakeStore) ListQuestionnaires(_ context.Context, _ int, _ int, activeOnly bool) ([]db_models.Questionnaire, error) {
	var out []db_models.Questionnaire
	for _, questionnaire := range f.questionnaires {
		if activeOnly && !questionnaire.IsActive {
			continue
		}
		out = append(out, *questionnaire)
	}
	return out, nil
}

func (f *fakeStore) UpdateQuestionnaire(_ context.Context, questionnaire *db_models.Questionnaire) error {
	f.questionnaires[questionnaire.ID] = questionnaire
	return nil
}

func (f *fakeStore) DeactivateQuestionnaire(_ context.Context, id uuid.UUID) error {
	if questionnaire, ok := f.questionnaires[id]; ok {
		questionnaire.IsActive = false
	}
	return nil
}

func (f *fakeStore) CreateQuestion(_ context.Context, question *db_models.Question) error {
	if question.ID == uuid.Nil {
		question.ID = uuid.New()
	}
	f.questions[question.ID] = question
	return nil
}

func (f *fakeStore) GetQuestionByID(_ context.Context, id uuid.UUID) (*db_models.Question, error) {
	return f.questions[id], nil
}

func (f *fakeStore) ListByQuestionnaire(_ context.Context, questionnaireID uuid.UUID) ([]db_models.Question, error) {
	var out []db_models.Question
	for _, question := range f.questions {
		if question.QuestionnaireID == questionnaireID {
			out = append(out, *question)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OrderIndex != out[j].OrderIndex {
			return out[i].OrderIndex < out[j].OrderIndex
		}
		return out[i].Code < out[j].Code
	})
	return out, nil
}

func (f *fakeStore) UpdateQuestion(_ context.Context, question *db_models.Question) error {
	f.questions[question.ID] = question
	return nil
}

func (f *fakeStore) DeleteQuestion(_ context.Context, id uuid.UUID) error {
	delete(f.questions, id)
	return nil
}

func (f *fakeStore) CreateSession(_ context.Context, session *db_models.AssessmentSession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	now := time.Now()
	session.StartedAt = now
	session.LastActivityAt = now
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeStore) GetSessionByToken(_ context.Context, token string) (*db_models.AssessmentSession, error) {
	for _, session := range f.sessions {
		if session.SessionToken == token {
			return session, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetSessionByID(_ context.Context, id uuid.UUID) (*db_models.AssessmentSession, error) {
	return f.sessions[id], nil
}

func (f *fakeStore) UpdateSession(_ context.Context, session *db_models.AssessmentSession) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeStore) MarkCompleted(_ context.Context, id uuid.UUID, completedAt time.Time) error {
	if session, ok := f.sessions[id]; ok {
		session.Status = db_models.SessionCompleted
		session.CompletedAt = &completedAt
	}
	return nil
}

func (f *fakeStore) TouchActivity(_ context.Context, id uuid.UUID) error {
	if session, ok := f.sessions[id]; ok {
		session.LastActivityAt = time.Now()
	}
	return nil
}

func (f *fakeStore) GetAnswerMap(_ context.Context, sessionID uuid.UUID) (map[uuid.UUID]string, error) {
	answers := make(map[uuid.UUID]string)
	for questionID, response := range f.responses[sessionID] {
		answers[questionID] = response.AnswerValue
	}
	return answers, nil
}

func (f *fakeStore) UpsertResponse(_ context.Context, response *db_models.Response) error {
	if f.responses[response.SessionID] == nil {
		f.responses[response.SessionID] = make(map[uuid.UUID]*db_models.Response)
	}
	existing, ok := f.responses[response.SessionID][response.QuestionID]
	if ok {
		existing.AnswerValue = response.AnswerValue
		existing.AnsweredAt = time.Now()
		return nil
	}
	if response.ID == uuid.Nil {
		response.ID = uuid.New()
	}
	response.AnsweredAt = time.Now()
	f.responses[response.SessionID][response.QuestionID] = response
	return nil
}

func (f *fakeStore) ListBySession(_ context.Context, sessionID uuid.UUID) ([]db_models.Response, error) {
	var out []db_models.Response
	for _, response := range f.responses[sessionID] {
		out = append(out, *response)
	}
	return out, nil
}

func (f *fakeStore) CountBySession(_ context.Context, sessionID uuid.UUID) (int64, error) {
	return int64(len(f.responses[sessionID])), nil
}

type fixture struct {
	store   *fakeStore
	service AssessmentServiceInterface
	qnID    uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newFakeStore()
	service := NewAssessmentService(store, store, store, store, memcache.NewSessionLocks())

	questionnaire := &db_models.Questionnaire{Title: "NIST CSF self-assessment", IsActive: true}
	require.NoError(t, store.CreateQuestionnaire(context.Background(), questionnaire))

	return &fixture{store: store, service: service, qnID: questionnaire.ID}
}

func (f *fixture) addQuestion(t *testing.T, order int, code string, mutate func(*db_models.Question)) uuid.UUID {
	t.Helper()
	question := &db_models.Question{
		QuestionnaireID: f.qnID,
		Code:            code,
		QuestionText:    "question " + code,
		QuestionType:    "text",
		OrderIndex:      order,
		IsRequired:      true,
	}
	question.ID = uuid.New()
	if mutate != nil {
		mutate(question)
	}
	require.NoError(t, f.store.CreateQuestion(context.Background(), question))
	return question.ID
}

func (f *fixture) startSession(t *testing.T) string {
	t.Helper()
	session, err := f.service.StartAssessment(context.Background(), f.qnID.String(), "auditor-1")
	require.NoError(t, err)
	return session.SessionToken
}

func (f *fixture) submit(t *testing.T, token string, questionID uuid.UUID, answer string) error {
	t.Helper()
	_, err := f.service.SubmitResponse(context.Background(), request_models.SubmitResponseRequest{
		SessionToken: token,
		QuestionID:   questionID.String(),
		AnswerValue:  answer,
	})
	return err
}

func dependsOn(dep uuid.UUID, answer string) func(*db_models.Question) {
	return func(question *db_models.Question) {
		question.DependsOnQuestionID = &dep
		if answer != "" {
			question.DependsOnAnswer = &answer
		}
	}
}

func branchTo(value string, target uuid.UUID) func(*db_models.Question) {
	return func(question *db_models.Question) {
		question.BranchingRules = db_models.BranchingRules{{
			Condition:      db_models.ConditionEquals,
			Value:          value,
			NextQuestionID: &target,
		}}
	}
}

func TestStartAssessment(t *testing.T) {
	f := newFixture(t)

	session, err := f.service.StartAssessment(context.Background(), f.qnID.String(), "auditor-1")
	require.NoError(t, err)
	assert.NotEmpty(t, session.SessionToken)
	assert.Equal(t, string(db_models.SessionInProgress), session.Status)
}

func TestStartAssessment_UnknownQuestionnaire(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.StartAssessment(context.Background(), uuid.New().String(), "")
	assert.ErrorIs(t, err, utils.ErrQuestionnaireNotFound)
}

func TestStartAssessment_InactiveQuestionnaire(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.DeactivateQuestionnaire(context.Background(), f.qnID))

	_, err := f.service.StartAssessment(context.Background(), f.qnID.String(), "")
	assert.ErrorIs(t, err, utils.ErrQuestionnaireNotFound)
}

func TestGetNextQuestion_FreshSession(t *testing.T) {
	// Scenario A: two questions, nothing answered, Q1 is next.
	f := newFixture(t)
	q1 := f.addQuestion(t, 0, "Q1", nil)
	f.addQuestion(t, 1, "Q2", dependsOn(q1, "yes"))

	token := f.startSession(t)

	next, err := f.service.GetNextQuestion(context.Background(), token)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, q1.String(), next.ID)
}

func TestGetNextQuestion_GatedCatalogExhausts(t *testing.T) {
	// Scenario B: Q1 answered "no" leaves Q2 ineligible forever.
	f := newFixture(t)
	q1 := f.addQuestion(t, 0, "Q1", nil)
	f.addQuestion(t, 1, "Q2", dependsOn(q1, "yes"))

	token := f.startSession(t)
	err := f.submit(t, token, q1, "no")
	require.NoError(t, err)

	next, err := f.service.GetNextQuestion(context.Background(), token)
	require.NoError(t, err)
	assert.Nil(t, next)

	session, err := f.service.GetSession(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, string(db_models.SessionCompleted), session.Status)
}

func TestSubmitResponse_BranchingPreferred(t *testing.T) {
	// Scenario C: answering Q1 "yes" must surface Q3, not Q2.
	f := newFixture(t)
	q2 := f.addQuestion(t, 1, "Q2", nil)
	q3 := f.addQuestion(t, 2, "Q3", nil)
	f.addQuestion(t, 0, "Q1", branchTo("yes", q3))

	token := f.startSession(t)

	next, err := f.service.GetNextQuestion(context.Background(), token)
	require.NoError(t, err)
	q1, err := uuid.Parse(next.ID)
	require.NoError(t, err)

	result, submitErr := f.service.SubmitResponse(context.Background(), request_models.SubmitResponseRequest{
		SessionToken: token,
		QuestionID:   q1.String(),
		AnswerValue:  "yes",
	})
	require.NoError(t, submitErr)
	require.NotNil(t, result.NextQuestion)
	assert.Equal(t, q3.String(), result.NextQuestion.ID)
	assert.NotEqual(t, q2.String(), result.NextQuestion.ID)

	// The next-question endpoint must agree with the submit result.
	next, err = f.service.GetNextQuestion(context.Background(), token)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, q3.String(), next.ID)
}

func TestSubmitResponse_CompletesSession(t *testing.T) {
	// Scenario D: answering all five questions completes the session at 100%.
	f := newFixture(t)
	var ids []uuid.UUID
	codes := []string{"Q1", "Q2", "Q3", "Q4", "Q5"}
	for i, code := range codes {
		ids = append(ids, f.addQuestion(t, i, code, nil))
	}

	token := f.startSession(t)
	for i, id := range ids {
		err := f.submit(t, token, id, "answer")
		require.NoError(t, err)

		progress, err := f.service.GetProgress(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, i+1, progress.AnsweredQuestions, "progress must grow monotonically")
		assert.Equal(t, 5, progress.TotalQuestions)
	}

	progress, err := f.service.GetProgress(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, 100.0, progress.CompletionPercentage)
	assert.Equal(t, string(db_models.SessionCompleted), progress.Status)
}

func TestSubmitResponse_ResubmissionAfterCompletionRejected(t *testing.T) {
	// Scenario E: a completed session refuses further writes, leaving the
	// answered count and status untouched.
	f := newFixture(t)
	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		ids = append(ids, f.addQuestion(t, i, "Q"+string(rune('1'+i)), nil))
	}

	token := f.startSession(t)
	for _, id := range ids {
		err := f.submit(t, token, id, "first")
		require.NoError(t, err)
	}

	err := f.submit(t, token, ids[0], "second")
	assert.ErrorIs(t, err, utils.ErrSessionNotActive)

	progress, err := f.service.GetProgress(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, 5, progress.AnsweredQuestions)
	assert.Equal(t, string(db_models.SessionCompleted), progress.Status)
}

func TestSubmitResponse_ResubmissionOverwrites(t *testing.T) {
	// P2: same question twice keeps the count at one and the latest value.
	f := newFixture(t)
	q1 := f.addQuestion(t, 0, "Q1", nil)
	f.addQuestion(t, 1, "Q2", nil)

	token := f.startSession(t)
	err := f.submit(t, token, q1, "first")
	require.NoError(t, err)
	err = f.submit(t, token, q1, "second")
	require.NoError(t, err)

	progress, err := f.service.GetProgress(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, 1, progress.AnsweredQuestions)

	responses, err := f.service.ListResponses(context.Background(), token)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "second", responses[0].AnswerValue)
}

func TestSubmitResponse_DependencyNotMet(t *testing.T) {
	// P3: a gated question cannot be answered before its dependency holds.
	f := newFixture(t)
	q1 := f.addQuestion(t, 0, "Q1", nil)
	q2 := f.addQuestion(t, 1, "Q2", dependsOn(q1, "yes"))

	token := f.startSession(t)

	err := f.submit(t, token, q2, "premature")
	assert.ErrorIs(t, err, utils.ErrDependencyNotMet)

	err = f.submit(t, token, q1, "yes")
	require.NoError(t, err)

	err = f.submit(t, token, q2, "now fine")
	require.NoError(t, err)
}

func TestSubmitResponse_InvalidSession(t *testing.T) {
	f := newFixture(t)
	q1 := f.addQuestion(t, 0, "Q1", nil)

	err := f.submit(t, "no-such-token", q1, "answer")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestSubmitResponse_UnknownQuestion(t *testing.T) {
	f := newFixture(t)
	f.addQuestion(t, 0, "Q1", nil)
	token := f.startSession(t)

	err := f.submit(t, token, uuid.New(), "answer")
	assert.ErrorIs(t, err, utils.ErrQuestionNotFound)
}

func TestSubmitResponse_QuestionFromOtherQuestionnaire(t *testing.T) {
	f := newFixture(t)
	f.addQuestion(t, 0, "Q1", nil)
	token := f.startSession(t)

	other := &db_models.Questionnaire{Title: "other", IsActive: true}
	require.NoError(t, f.store.CreateQuestionnaire(context.Background(), other))
	foreign := &db_models.Question{
		QuestionnaireID: other.ID,
		QuestionText:    "foreign",
		QuestionType:    "text",
	}
	foreign.ID = uuid.New()
	require.NoError(t, f.store.CreateQuestion(context.Background(), foreign))

	err := f.submit(t, token, foreign.ID, "answer")
	assert.ErrorIs(t, err, utils.ErrQuestionMismatch)
}

func TestSubmitResponse_EmptyAnswerOnRequiredQuestion(t *testing.T) {
	f := newFixture(t)
	q1 := f.addQuestion(t, 0, "Q1", nil)
	token := f.startSession(t)

	err := f.submit(t, token, q1, "")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestResumeSession(t *testing.T) {
	f := newFixture(t)
	f.addQuestion(t, 0, "Q1", nil)
	token := f.startSession(t)

	session, err := f.service.ResumeSession(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, string(db_models.SessionInProgress), session.Status)
}

func TestResumeSession_CompletedRejected(t *testing.T) {
	f := newFixture(t)
	q1 := f.addQuestion(t, 0, "Q1", nil)
	token := f.startSession(t)
	err := f.submit(t, token, q1, "done")
	require.NoError(t, err)

	_, err = f.service.ResumeSession(context.Background(), token)
	assert.ErrorIs(t, err, utils.ErrSessionNotActive)
}

func TestGetProgress_EmptyCatalog(t *testing.T) {
	f := newFixture(t)
	token := f.startSession(t)

	progress, err := f.service.GetProgress(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, 0, progress.TotalQuestions)
	assert.Equal(t, 0.0, progress.CompletionPercentage)
}
