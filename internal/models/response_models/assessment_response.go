package response_models

import "time"

type SessionResponse struct {
	ID                string     `json:"id"`
	QuestionnaireID   string     `json:"questionnaire_id"`
	UserID            string     `json:"user_id,omitempty"`
	SessionToken      string     `json:"session_token"`
	Status            string     `json:"status"`
	CurrentQuestionID string     `json:"current_question_id,omitempty"`
	StartedAt         time.Time  `json:"started_at"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	LastActivityAt    time.Time  `json:"last_activity_at"`
}

type SubmitResponseResult struct {
	Response     ResponseDetail    `json:"response"`
	NextQuestion *QuestionResponse `json:"next_question,omitempty"`
	Completed    bool              `json:"completed"`
}

type ResponseDetail struct {
	QuestionID  string    `json:"question_id"`
	AnswerValue string    `json:"answer_value"`
	AnsweredAt  time.Time `json:"answered_at"`
}

type ProgressResponse struct {
	SessionToken         string  `json:"session_token"`
	AnsweredQuestions    int     `json:"answered_questions"`
	TotalQuestions       int     `json:"total_questions"`
	CompletionPercentage float64 `json:"completion_percentage"`
	Status               string  `json:"status"`
}
