package dice

import (
	"fmt"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// Evaluate draws Count values in [1, Sides] from src and applies the
// modifier. Expressions are assumed to come from the parser; anything the
// parser would have rejected fails with domain.ErrRollInvalid.
func Evaluate(expr domain.RollExpression, src Source) (domain.RollOutcome, error) {
	if src == nil {
		return domain.RollOutcome{}, fmt.Errorf("%w: nil randomness source", domain.ErrRollInvalid)
	}
	if expr.Count < 1 || expr.Sides < 1 {
		return domain.RollOutcome{}, fmt.Errorf("%w: %dd%d", domain.ErrRollInvalid, expr.Count, expr.Sides)
	}
	if expr.Operator != domain.RollOperatorPlus && expr.Operator != domain.RollOperatorMinus {
		return domain.RollOutcome{}, fmt.Errorf("%w: operator %q", domain.ErrRollInvalid, expr.Operator)
	}

	rawSum := 0
	for i := 0; i < expr.Count; i++ {
		rawSum += src.Intn(expr.Sides) + 1
	}

	modifier := expr.SignedModifier()
	return domain.RollOutcome{
		Expression:    expr,
		RawSum:        rawSum,
		ModifiedTotal: rawSum + modifier,
		MinPossible:   expr.Count + modifier,
		MaxPossible:   expr.Count*expr.Sides + modifier,
	}, nil
}
