package db_models

import (
	"nistq/internal/models/response_models"
)

func BuildQuestionResponse(question *Question) *response_models.QuestionResponse {
	if question == nil {
		return nil
	}

	out := &response_models.QuestionResponse{
		ID:              question.ID.String(),
		QuestionnaireID: question.QuestionnaireID.String(),
		Code:            question.Code,
		QuestionText:    question.QuestionText,
		QuestionType:    question.QuestionType,
		OrderIndex:      question.OrderIndex,
		IsRequired:      question.IsRequired,
		Options:         question.Options,
	}

	for _, rule := range question.BranchingRules {
		view := response_models.BranchingRuleView{
			Condition: string(rule.Condition),
			Value:     rule.Value,
		}
		if rule.NextQuestionID != nil {
			view.NextQuestionID = rule.NextQuestionID.String()
		}
		out.BranchingRules = append(out.BranchingRules, view)
	}

	if question.DependsOnQuestionID != nil {
		out.DependsOnQuestionID = question.DependsOnQuestionID.String()
	}
	if question.DependsOnAnswer != nil {
		out.DependsOnAnswer = *question.DependsOnAnswer
	}

	return out
}

func BuildSessionResponse(session *AssessmentSession) *response_models.SessionResponse {
	if session == nil {
		return nil
	}

	out := &response_models.SessionResponse{
		ID:              session.ID.String(),
		QuestionnaireID: session.QuestionnaireID.String(),
		UserID:          session.UserID,
		SessionToken:    session.SessionToken,
		Status:          string(session.Status),
		StartedAt:       session.StartedAt,
		CompletedAt:     session.CompletedAt,
		LastActivityAt:  session.LastActivityAt,
	}
	if session.CurrentQuestionID != nil {
		out.CurrentQuestionID = session.CurrentQuestionID.String()
	}
	return out
}

func BuildQuestionnaireResponse(questionnaire *Questionnaire, questionCount int) *response_models.QuestionnaireResponse {
	if questionnaire == nil {
		return nil
	}
	return &response_models.QuestionnaireResponse{
		ID:            questionnaire.ID.String(),
		Title:         questionnaire.Title,
		Description:   questionnaire.Description,
		Category:      questionnaire.Category,
		Version:       questionnaire.Version,
		IsActive:      questionnaire.IsActive,
		QuestionCount: questionCount,
	}
}
