package request_models

type BranchingRuleRequest struct {
	Condition      string  `json:"condition" binding:"required,oneof=equals not_equals contains"`
	Value          string  `json:"value" binding:"required"`
	NextQuestionID *string `json:"next_question_id,omitempty" binding:"omitempty,uuid4"`
}

type CreateQuestionRequest struct {
	QuestionnaireID     string                 `json:"questionnaire_id" binding:"required,uuid4"`
	Code                string                 `json:"code"`
	QuestionText        string                 `json:"question_text" binding:"required"`
	QuestionType        string                 `json:"question_type" binding:"required"`
	OrderIndex          int                    `json:"order_index"`
	IsRequired          *bool                  `json:"is_required,omitempty"`
	Options             []string               `json:"options,omitempty"`
	BranchingRules      []BranchingRuleRequest `json:"branching_rules,omitempty"`
	DependsOnQuestionID *string                `json:"depends_on_question_id,omitempty" binding:"omitempty,uuid4"`
	DependsOnAnswer     *string                `json:"depends_on_answer,omitempty"`
	ControlCode         string                 `json:"control_code,omitempty"`
}

type UpdateQuestionRequest struct {
	Code                *string                `json:"code,omitempty"`
	QuestionText        *string                `json:"question_text,omitempty"`
	QuestionType        *string                `json:"question_type,omitempty"`
	OrderIndex          *int                   `json:"order_index,omitempty"`
	IsRequired          *bool                  `json:"is_required,omitempty"`
	Options             []string               `json:"options,omitempty"`
	BranchingRules      []BranchingRuleRequest `json:"branching_rules,omitempty"`
	DependsOnQuestionID *string                `json:"depends_on_question_id,omitempty" binding:"omitempty,uuid4"`
	DependsOnAnswer     *string                `json:"depends_on_answer,omitempty"`
}
