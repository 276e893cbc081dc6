package response_models

type QuestionResponse struct {
	ID                  string              `json:"id"`
	QuestionnaireID     string              `json:"questionnaire_id"`
	Code                string              `json:"code,omitempty"`
	QuestionText        string              `json:"question_text"`
	QuestionType        string              `json:"question_type"`
	OrderIndex          int                 `json:"order_index"`
	IsRequired          bool                `json:"is_required"`
	Options             []string            `json:"options,omitempty"`
	BranchingRules      []BranchingRuleView `json:"branching_rules,omitempty"`
	DependsOnQuestionID string              `json:"depends_on_question_id,omitempty"`
	DependsOnAnswer     string              `json:"depends_on_answer,omitempty"`
}

type BranchingRuleView struct {
	Condition      string `json:"condition"`
	Value          string `json:"value"`
	NextQuestionID string `json:"next_question_id,omitempty"`
}

type QuestionnaireResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category,omitempty"`
	Version       string `json:"version"`
	IsActive      bool   `json:"is_active"`
	QuestionCount int    `json:"question_count"`
}

type ControlFamilyResponse struct {
	Code        string            `json:"code"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Controls    []ControlResponse `json:"controls,omitempty"`
}

type ControlResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
