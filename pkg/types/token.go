package types

import "fmt"

// TokenKind represents the kind of a lexical token.
type TokenKind uint8

const (
	// TokenEOF marks the end of the token sequence.
	TokenEOF TokenKind = iota

	// TokenConstant is a numeric literal: 42, 3.14, .5, 0x1F, 1.5e-3.
	TokenConstant
	// TokenVariable is an identifier. Whether it names a variable or a
	// function is decided by the parser, not the lexer.
	TokenVariable
	// TokenParenthesis is "(" or ")".
	TokenParenthesis
	// TokenOperator is a configured operator string, e.g. "+" or "**".
	TokenOperator
	// TokenComma separates function-call arguments.
	TokenComma
)

// String returns a human-readable name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "(eof)"
	case TokenConstant:
		return "(constant)"
	case TokenVariable:
		return "(variable)"
	case TokenParenthesis:
		return "(parenthesis)"
	case TokenOperator:
		return "(operator)"
	case TokenComma:
		return "(comma)"
	default:
		return "(unknown)"
	}
}

// Token represents a lexical token in an arithmetic expression.
// Tokens are immutable once produced by the lexer.
type Token struct {
	Kind     TokenKind // Kind of the token
	Value    string    // Literal text of the token
	Position int       // Starting byte position in the input string
}

// String returns a debug representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("%s%q@%d", t.Kind, t.Value, t.Position)
}
