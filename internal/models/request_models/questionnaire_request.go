package request_models

type CreateQuestionnaireRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Version     string `json:"version"`
}

type UpdateQuestionnaireRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Version     *string `json:"version,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
