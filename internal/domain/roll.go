package domain

// Operator signs for a roll modifier
const (
	RollOperatorPlus  = "+"
	RollOperatorMinus = "-"
)

// Upper bounds on roll notation fields. Inputs past these fail with
// ErrRollOutOfRange instead of consuming unbounded entropy.
const (
	MaxRollCount    = 100
	MaxRollSides    = 1000
	MaxRollModifier = 10000
)

// RollExpression is one parsed dice clause, e.g. "2d6+3".
// Count and Sides are always >= 1; Modifier holds the magnitude as written
// and Operator the sign applied to it. Expressions are built by the parser
// and never mutated afterwards.
type RollExpression struct {
	Raw      string `json:"raw"`
	Count    int    `json:"count"`
	Sides    int    `json:"sides"`
	Modifier int    `json:"modifier"`
	Operator string `json:"operator"`
}

// SignedModifier returns the modifier with its operator applied.
func (e RollExpression) SignedModifier() int {
	if e.Operator == RollOperatorMinus {
		return -e.Modifier
	}
	return e.Modifier
}

// RollOutcome is the evaluated result of a single expression.
// Invariant: MinPossible <= ModifiedTotal <= MaxPossible.
type RollOutcome struct {
	Expression    RollExpression `json:"expression"`
	RawSum        int            `json:"raw_sum"`
	ModifiedTotal int            `json:"modified_total"`
	MinPossible   int            `json:"min_possible"`
	MaxPossible   int            `json:"max_possible"`
}

// RollReport is the full result of a roll command: the rendered message plus
// the per-clause outcomes in original clause order.
type RollReport struct {
	Username string        `json:"username"`
	Message  string        `json:"message"`
	Outcomes []RollOutcome `json:"outcomes"`
}
