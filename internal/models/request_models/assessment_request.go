package request_models

type StartAssessmentRequest struct {
	QuestionnaireID string `json:"questionnaire_id" binding:"required,uuid4"`
	UserID          string `json:"user_id"`
}

type SubmitResponseRequest struct {
	SessionToken string `json:"session_token" binding:"required"`
	QuestionID   string `json:"question_id" binding:"required,uuid4"`
	AnswerValue  string `json:"answer_value" binding:"required"`
}
