package resolver

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"nistq/internal/models/db_models"
)

var (
	ErrDuplicateQuestionID = errors.New("duplicate question id in catalog")
	ErrUnknownDependency   = errors.New("dependency references a question outside the catalog")
	ErrDependencyOrder     = errors.New("dependency must precede the dependent question")
	ErrUnknownBranchTarget = errors.New("branching rule targets a question outside the catalog")
	ErrSelfDependency      = errors.New("question cannot depend on itself")
)

// SortCatalog orders questions the way every consumer expects: order_index
// ascending, code as the stable tie-break.
func SortCatalog(catalog []db_models.Question) {
	sort.SliceStable(catalog, func(i, j int) bool {
		if catalog[i].OrderIndex != catalog[j].OrderIndex {
			return catalog[i].OrderIndex < catalog[j].OrderIndex
		}
		return catalog[i].Code < catalog[j].Code
	})
}

// ValidateCatalog enforces the structural invariants the resolver relies on:
// unique ids, dependencies that reference a strictly earlier question in the
// canonical ordering (which rules out cycles), known branching conditions and
// in-catalog branching targets. Catalogs are validated on write so the
// resolver never has to.
func ValidateCatalog(catalog []db_models.Question) error {
	ordered := make([]db_models.Question, len(catalog))
	copy(ordered, catalog)
	SortCatalog(ordered)

	position := make(map[uuid.UUID]int, len(ordered))
	for i := range ordered {
		if _, seen := position[ordered[i].ID]; seen {
			return fmt.Errorf("%w: %s", ErrDuplicateQuestionID, ordered[i].ID)
		}
		position[ordered[i].ID] = i
	}

	for i := range ordered {
		question := &ordered[i]

		if question.DependsOnQuestionID != nil {
			depID := *question.DependsOnQuestionID
			if depID == question.ID {
				return fmt.Errorf("%w: %s", ErrSelfDependency, question.ID)
			}
			depPos, known := position[depID]
			if !known {
				return fmt.Errorf("%w: %s -> %s", ErrUnknownDependency, question.ID, depID)
			}
			if depPos >= i {
				return fmt.Errorf("%w: %s -> %s", ErrDependencyOrder, question.ID, depID)
			}
		}

		for _, rule := range question.BranchingRules {
			if err := rule.Condition.Validate(); err != nil {
				return fmt.Errorf("question %s: %w", question.ID, err)
			}
			if rule.NextQuestionID != nil {
				if _, known := position[*rule.NextQuestionID]; !known {
					return fmt.Errorf("%w: %s -> %s", ErrUnknownBranchTarget, question.ID, *rule.NextQuestionID)
				}
			}
		}
	}

	return nil
}
