package dice

import (
	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// Combine evaluates every expression of a compound roll in order. The
// result is all-or-nothing: a failure on any clause discards the lot.
func Combine(expressions []domain.RollExpression, src Source) ([]domain.RollOutcome, error) {
	if len(expressions) == 0 {
		return nil, &ParseError{Reason: ReasonEmptyArgument}
	}

	outcomes := make([]domain.RollOutcome, 0, len(expressions))
	for _, expr := range expressions {
		outcome, err := Evaluate(expr, src)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}
