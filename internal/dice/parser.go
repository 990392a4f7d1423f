package dice

import (
	"fmt"
	"strconv"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// ParseError reports a roll argument that failed to parse. Clause holds the
// offending clause text when one could be isolated. ParseError unwraps to
// domain.ErrRollParse so callers can match with errors.Is.
type ParseError struct {
	Clause string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Clause == "" {
		return fmt.Sprintf("%s: %s", domain.ErrMsgRollParse, e.Reason)
	}
	return fmt.Sprintf("%s: clause %q: %s", domain.ErrMsgRollParse, e.Clause, e.Reason)
}

func (e *ParseError) Unwrap() error { return domain.ErrRollParse }

// parser consumes the token stream of one roll argument
type parser struct {
	input  string
	tokens []token
	pos    int
}

// ParseCommand parses a full roll argument: one or more clauses joined by
// the separator keyword. Whitespace is stripped first. Every clause must
// parse; the first failure aborts the whole argument.
func ParseCommand(argument string) ([]domain.RollExpression, error) {
	stripped := stripWhitespace(argument)
	if stripped == "" {
		return nil, &ParseError{Reason: ReasonEmptyArgument}
	}

	tokens, err := lex(stripped)
	if err != nil {
		return nil, &ParseError{Clause: stripped, Reason: err.Error()}
	}

	p := &parser{input: stripped, tokens: tokens}
	var expressions []domain.RollExpression
	for {
		expr, err := p.clause()
		if err != nil {
			return nil, err
		}
		expressions = append(expressions, expr)
		if p.peek().kind != tokenAnd {
			break
		}
		p.next()
	}
	return expressions, nil
}

// Parse parses exactly one clause, e.g. "2d6+3".
func Parse(clause string) (domain.RollExpression, error) {
	expressions, err := ParseCommand(clause)
	if err != nil {
		return domain.RollExpression{}, err
	}
	if len(expressions) != 1 {
		return domain.RollExpression{}, &ParseError{Clause: stripWhitespace(clause), Reason: ReasonUnexpectedSeparator}
	}
	return expressions[0], nil
}

// clause parses one <count>d<sides>[<sign><modifier>] clause and leaves the
// parser positioned on the following separator or end of input.
func (p *parser) clause() (domain.RollExpression, error) {
	start := p.peek().pos

	if k := p.peek().kind; k == tokenAnd || k == tokenEOF {
		return domain.RollExpression{}, &ParseError{Clause: p.clauseText(start), Reason: ReasonEmptyClause}
	}

	count, err := p.expectNumber(start, ReasonMissingCount)
	if err != nil {
		return domain.RollExpression{}, err
	}

	if p.peek().kind != tokenDie {
		return domain.RollExpression{}, &ParseError{Clause: p.clauseText(start), Reason: ReasonMissingSeparator}
	}
	p.next()

	sides, err := p.expectNumber(start, ReasonMissingSides)
	if err != nil {
		return domain.RollExpression{}, err
	}

	operator := domain.RollOperatorPlus
	modifier := 0
	if k := p.peek().kind; k == tokenPlus || k == tokenMinus {
		if k == tokenMinus {
			operator = domain.RollOperatorMinus
		}
		p.next()

		modifier, err = p.expectNumber(start, ReasonMissingModifier)
		if err != nil {
			return domain.RollExpression{}, err
		}

		// a second sign would make the clause ambiguous
		if k := p.peek().kind; k == tokenPlus || k == tokenMinus {
			return domain.RollExpression{}, &ParseError{Clause: p.clauseText(start), Reason: ReasonMultipleSigns}
		}
	}

	// the clause must end here; a leftover token means input like a second
	// 'd' separator or a dangling number
	if k := p.peek().kind; k != tokenAnd && k != tokenEOF {
		return domain.RollExpression{}, &ParseError{
			Clause: p.clauseText(start),
			Reason: fmt.Sprintf(ReasonUnexpectedTokenFmt, k),
		}
	}

	if count < 1 {
		return domain.RollExpression{}, &ParseError{Clause: p.clauseText(start), Reason: ReasonNonPositiveCount}
	}
	if sides < 1 {
		return domain.RollExpression{}, &ParseError{Clause: p.clauseText(start), Reason: ReasonNonPositiveSides}
	}

	expr := domain.RollExpression{
		Raw:      p.input[start:p.peek().pos],
		Count:    count,
		Sides:    sides,
		Modifier: modifier,
		Operator: operator,
	}
	if err := checkBounds(expr); err != nil {
		return domain.RollExpression{}, err
	}
	return expr, nil
}

// expectNumber consumes a number token or fails with the given reason.
// Numbers are digit-only, so a strconv failure can only mean overflow.
func (p *parser) expectNumber(clauseStart int, missingReason string) (int, error) {
	t := p.peek()
	if t.kind != tokenNumber {
		return 0, &ParseError{Clause: p.clauseText(clauseStart), Reason: missingReason}
	}
	p.next()

	n, err := strconv.Atoi(t.text)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", domain.ErrRollOutOfRange, t.text)
	}
	return n, nil
}

// checkBounds enforces the documented notation limits.
func checkBounds(expr domain.RollExpression) error {
	if expr.Count > domain.MaxRollCount {
		return fmt.Errorf("%w: count %d exceeds %d", domain.ErrRollOutOfRange, expr.Count, domain.MaxRollCount)
	}
	if expr.Sides > domain.MaxRollSides {
		return fmt.Errorf("%w: sides %d exceeds %d", domain.ErrRollOutOfRange, expr.Sides, domain.MaxRollSides)
	}
	if expr.Modifier > domain.MaxRollModifier {
		return fmt.Errorf("%w: modifier %d exceeds %d", domain.ErrRollOutOfRange, expr.Modifier, domain.MaxRollModifier)
	}
	return nil
}

// clauseText returns the raw input from start up to the next separator
// keyword, or to the end of input. Used for error reporting and Raw.
func (p *parser) clauseText(start int) string {
	for i := p.pos; i < len(p.tokens); i++ {
		if p.tokens[i].kind == tokenAnd {
			return p.input[start:p.tokens[i].pos]
		}
	}
	return p.input[start:]
}

// peek returns the current token without consuming it
func (p *parser) peek() token {
	return p.tokens[p.pos]
}

// next consumes and returns the current token; EOF is never consumed
func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokenEOF {
		p.pos++
	}
	return t
}
