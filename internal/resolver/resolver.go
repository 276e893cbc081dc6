package resolver

import (
	"math"

	"github.com/google/uuid"
	"nistq/internal/models/db_models"
)

// ResolveNext walks the catalog in its stored order and returns the first
// unanswered question whose dependency is satisfied, or nil when nothing is
// left to ask. The catalog slice must already be sorted by the provider
// (order_index, then code). Answer-map keys that do not belong to the catalog
// are ignored.
func ResolveNext(catalog []db_models.Question, answers map[uuid.UUID]string) *db_models.Question {
	for i := range catalog {
		question := &catalog[i]
		if _, answered := answers[question.ID]; answered {
			continue
		}
		if Eligible(question, answers) {
			return question
		}
	}
	return nil
}

// ResolveAfterAnswer layers branching on top of the plain scan: if the
// question answered last carries rules and the first matching rule names an
// unanswered catalog question, that target is preferred. Otherwise the plain
// scan result stands. Branching is only consulted for the most recent answer,
// never retroactively.
func ResolveAfterAnswer(catalog []db_models.Question, answers map[uuid.UUID]string, lastAnsweredID uuid.UUID) *db_models.Question {
	byID := make(map[uuid.UUID]*db_models.Question, len(catalog))
	for i := range catalog {
		byID[catalog[i].ID] = &catalog[i]
	}

	if last, ok := byID[lastAnsweredID]; ok && len(last.BranchingRules) > 0 {
		if answer, answered := answers[lastAnsweredID]; answered {
			if targetID := EvaluateBranchingRules(last.BranchingRules, answer); targetID != nil {
				target, known := byID[*targetID]
				if known {
					if _, alreadyAnswered := answers[*targetID]; !alreadyAnswered {
						return target
					}
				}
			}
		}
	}

	return ResolveNext(catalog, answers)
}

// Eligible reports whether the question's dependency, if any, is satisfied by
// the recorded answers. A missing or empty dependency answer never satisfies.
func Eligible(question *db_models.Question, answers map[uuid.UUID]string) bool {
	if question.DependsOnQuestionID == nil {
		return true
	}

	dependencyAnswer, answered := answers[*question.DependsOnQuestionID]
	if !answered || dependencyAnswer == "" {
		return false
	}

	if question.DependsOnAnswer != nil {
		return dependencyAnswer == *question.DependsOnAnswer
	}
	return true
}

// EvaluateBranchingRules returns the redirect target of the first rule
// matching answerValue, or nil when no rule matches. Rules are evaluated in
// list order and the first match wins, even if it carries no target.
func EvaluateBranchingRules(rules db_models.BranchingRules, answerValue string) *uuid.UUID {
	for _, rule := range rules {
		if rule.Matches(answerValue) {
			return rule.NextQuestionID
		}
	}
	return nil
}

// Progress is the derived completion state of one assessment.
type Progress struct {
	AnsweredCount        int     `json:"answered_questions"`
	TotalCount           int     `json:"total_questions"`
	CompletionPercentage float64 `json:"completion_percentage"`
	Completed            bool    `json:"completed"`
}

// ComputeProgress derives counts and a percentage rounded to two decimal
// places. Answers for questions outside the catalog do not count.
func ComputeProgress(catalog []db_models.Question, answers map[uuid.UUID]string) Progress {
	answered := 0
	for i := range catalog {
		if _, ok := answers[catalog[i].ID]; ok {
			answered++
		}
	}

	percentage := 0.0
	if len(catalog) > 0 {
		percentage = math.Round(float64(answered)/float64(len(catalog))*10000) / 100
	}

	return Progress{
		AnsweredCount:        answered,
		TotalCount:           len(catalog),
		CompletionPercentage: percentage,
		Completed:            answered == len(catalog),
	}
}
