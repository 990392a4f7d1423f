package dice

import (
	"fmt"
	"strings"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

const (
	// rollFragmentFormat renders one outcome without the roller's name:
	// *rolls a 14* _(2d6+3 = 11 + 3)_ _(min: 5, max: 15)_
	rollFragmentFormat = "*rolls a %d* _(%s = %d %s %d)_ _(min: %d, max: %d)_"

	// compoundJoinSeparator joins the fragments of a compound roll
	compoundJoinSeparator = "\n\t and "
)

// formatFragment renders one outcome. The modifier is always shown, as
// "+ 0" when the clause carried none.
func formatFragment(outcome domain.RollOutcome) string {
	expr := outcome.Expression
	return fmt.Sprintf(rollFragmentFormat,
		outcome.ModifiedTotal,
		expr.Raw,
		outcome.RawSum,
		expr.Operator,
		expr.Modifier,
		outcome.MinPossible,
		outcome.MaxPossible,
	)
}

// FormatRoll renders a single outcome with the roller's display name.
func FormatRoll(username string, outcome domain.RollOutcome) string {
	return fmt.Sprintf("*%s* %s", username, formatFragment(outcome))
}

// FormatCombined renders any number of outcomes as one message. The name
// appears once; compound fragments land on continuation lines.
func FormatCombined(username string, outcomes []domain.RollOutcome) string {
	fragments := make([]string, 0, len(outcomes))
	for _, outcome := range outcomes {
		fragments = append(fragments, formatFragment(outcome))
	}
	return fmt.Sprintf("*%s* %s", username, strings.Join(fragments, compoundJoinSeparator))
}
