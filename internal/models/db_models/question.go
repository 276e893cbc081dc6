package db_models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type BranchCondition string

const (
	ConditionEquals    BranchCondition = "equals"
	ConditionNotEquals BranchCondition = "not_equals"
	ConditionContains  BranchCondition = "contains"
)

// BranchingRule redirects the flow to NextQuestionID when the recorded answer
// satisfies Condition against Value. A rule without NextQuestionID is inert
// (reserved for future action types).
type BranchingRule struct {
	Condition      BranchCondition `json:"condition"`
	Value          string          `json:"value"`
	NextQuestionID *uuid.UUID      `json:"next_question_id,omitempty"`
}

// BranchingRules is stored as a jsonb column.
type BranchingRules []BranchingRule

func (r BranchingRules) Value() (driver.Value, error) {
	if len(r) == 0 {
		return nil, nil
	}
	return json.Marshal(r)
}

func (r *BranchingRules) Scan(src interface{}) error {
	if src == nil {
		*r = nil
		return nil
	}

	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return fmt.Errorf("unsupported branching_rules column type %T", src)
	}
}

// Matches compares the raw answer text against the rule. Comparison is exact
// and case-sensitive; contains means substring containment.
func (r BranchingRule) Matches(answerValue string) bool {
	switch r.Condition {
	case ConditionEquals:
		return answerValue == r.Value
	case ConditionNotEquals:
		return answerValue != r.Value
	case ConditionContains:
		return strings.Contains(answerValue, r.Value)
	}
	return false
}

var ErrUnknownBranchCondition = errors.New("unknown branching rule condition")

func (c BranchCondition) Validate() error {
	switch c {
	case ConditionEquals, ConditionNotEquals, ConditionContains:
		return nil
	}
	return ErrUnknownBranchCondition
}

type Question struct {
	BaseModel
	QuestionnaireID uuid.UUID  `gorm:"type:uuid;not null;index"`
	ControlID       *uuid.UUID `gorm:"type:uuid"`
	Code            string     `gorm:"type:varchar(40)"`
	QuestionText    string     `gorm:"type:text;not null"`
	QuestionType    string     `gorm:"type:varchar(50);not null"`
	OrderIndex      int        `gorm:"default:0;index"`
	IsRequired      bool       `gorm:"default:true"`

	Options        pq.StringArray `gorm:"type:text[]"`
	BranchingRules BranchingRules `gorm:"type:jsonb"`

	DependsOnQuestionID *uuid.UUID `gorm:"type:uuid"`
	DependsOnAnswer     *string    `gorm:"type:varchar(255)"`
}
