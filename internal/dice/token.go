package dice

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// tokenKind tags one lexical element of a roll argument
type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenDie
	tokenPlus
	tokenMinus
	tokenAnd
	tokenEOF
)

// String renders the kind the way parse errors describe it
func (k tokenKind) String() string {
	switch k {
	case tokenNumber:
		return "number"
	case tokenDie:
		return "'d' separator"
	case tokenPlus:
		return "'+'"
	case tokenMinus:
		return "'-'"
	case tokenAnd:
		return "'and'"
	case tokenEOF:
		return "end of input"
	default:
		return "unknown token"
	}
}

// token is one lexical element with its byte position in the stripped input
type token struct {
	kind tokenKind
	text string
	pos  int
}

// stripWhitespace removes every whitespace rune from a roll argument.
// Whitespace carries no meaning in the notation.
func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// hasSeparatorAt reports whether the clause separator keyword starts at pos.
// The keyword is matched case-insensitively.
func hasSeparatorAt(input string, pos int) bool {
	end := pos + len(domain.RollSeparatorKeyword)
	return end <= len(input) && strings.EqualFold(input[pos:end], domain.RollSeparatorKeyword)
}

// lex splits a whitespace-stripped roll argument into tokens. The token
// alphabet is digits, the lowercase 'd' die separator, '+', '-' and the
// case-insensitive separator keyword; anything else fails the lex.
func lex(input string) ([]token, error) {
	tokens := make([]token, 0, 8)
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c >= '0' && c <= '9':
			start := i
			for i < len(input) && input[i] >= '0' && input[i] <= '9' {
				i++
			}
			tokens = append(tokens, token{kind: tokenNumber, text: input[start:i], pos: start})
		case c == '+':
			tokens = append(tokens, token{kind: tokenPlus, text: string(c), pos: i})
			i++
		case c == '-':
			tokens = append(tokens, token{kind: tokenMinus, text: string(c), pos: i})
			i++
		case hasSeparatorAt(input, i):
			// checked before the die separator so the 'd' in "and" never
			// lexes as a die token
			end := i + len(domain.RollSeparatorKeyword)
			tokens = append(tokens, token{kind: tokenAnd, text: input[i:end], pos: i})
			i = end
		case c == 'd':
			tokens = append(tokens, token{kind: tokenDie, text: string(c), pos: i})
			i++
		default:
			return nil, fmt.Errorf("unexpected character %q", rune(c))
		}
	}
	tokens = append(tokens, token{kind: tokenEOF, pos: len(input)})
	return tokens, nil
}
