// Package lexer converts expression text into a sequence of tokens.
//
// The lexer matches configured operators by walking a prefix trie for the
// longest operator starting at each position, and classifies all other
// bytes through precomputed lookup tables. Lexical errors do not abort the
// scan: they are accumulated and raised together at the end of a Run call
// so a single pass surfaces every problem in the input.
package lexer

import (
	"fmt"

	"github.com/sandrolain/gomathparse/pkg/operators"
	"github.com/sandrolain/gomathparse/pkg/types"
)

// Lexer tokenizes arithmetic expressions. It carries cursor state during a
// call, so a Lexer instance is not safe for concurrent use; Reset and Run
// must be treated as an atomic unit by callers sharing an instance.
type Lexer struct {
	source string
	pos    int
	trie   *operators.Trie
	tokens []types.Token
	errs   types.ErrorList
}

// New creates a lexer with no input. Call Reset before Run.
func New() *Lexer {
	return &Lexer{}
}

// Reset restarts the lexer on new input with a new operator set.
func (l *Lexer) Reset(source string, ops []string) {
	l.ResetWithTrie(source, operators.NewTrie(ops))
}

// ResetWithTrie restarts the lexer on new input reusing a prebuilt operator
// trie. Callers tokenizing many expressions against one configuration
// should build the trie once and use this entry point.
func (l *Lexer) ResetWithTrie(source string, trie *operators.Trie) {
	l.source = source
	l.pos = 0
	l.trie = trie
	l.tokens = l.tokens[:0]
	l.errs = nil
}

// Tokenize is a shortcut to lex a single expression with the given
// operator set.
func Tokenize(source string, ops []string) ([]types.Token, error) {
	l := New()
	l.Reset(source, ops)
	return l.Run()
}

// Run scans the entire input and returns the token sequence. When lexical
// errors occur, Run keeps scanning to collect as many as feasible and
// returns them together as a types.ErrorList.
func (l *Lexer) Run() ([]types.Token, error) {
	for l.pos < len(l.source) {
		b := l.source[l.pos]
		switch {
		case operators.IsSpace(b):
			l.pos++
		case operators.IsParen(b):
			l.emit(types.TokenParenthesis, l.pos, l.pos+1)
			l.pos++
		case operators.IsIdentStart(b):
			l.scanIdent()
		case b == ',':
			l.emit(types.TokenComma, l.pos, l.pos+1)
			l.pos++
		default:
			if op, ok := l.trie.Match(l.source[l.pos:]); ok {
				l.emit(types.TokenOperator, l.pos, l.pos+len(op))
				l.pos += len(op)
				break
			}
			if operators.IsDigit(b) || b == '.' {
				l.scanNumber()
				break
			}
			l.errorf(types.ErrUnrecognizedChar, l.pos, "unrecognized character %q", b)
			l.pos++
		}
	}
	if len(l.errs) > 0 {
		return nil, l.errs
	}
	// Callers may retain the returned slice past the next Reset.
	out := make([]types.Token, len(l.tokens))
	copy(out, l.tokens)
	return out, nil
}

// Errors returns the lexical errors collected by the last Run.
func (l *Lexer) Errors() types.ErrorList {
	return l.errs
}

func (l *Lexer) emit(kind types.TokenKind, start, end int) {
	l.tokens = append(l.tokens, types.Token{
		Kind:     kind,
		Value:    l.source[start:end],
		Position: start,
	})
}

func (l *Lexer) errorf(code types.ErrorCode, pos int, format string, args ...any) {
	l.errs = append(l.errs, types.NewError(code, fmt.Sprintf(format, args...), pos))
}

// scanIdent consumes a maximal identifier run. Whether the identifier
// names a variable or a function is a parser concern; the lexer always
// emits a variable token.
func (l *Lexer) scanIdent() {
	start := l.pos
	for l.pos < len(l.source) && operators.IsIdentPart(l.source[l.pos]) {
		l.pos++
	}
	l.emit(types.TokenVariable, start, l.pos)
}

// scanNumber consumes a numeric literal: decimal run, hexadecimal form
// (0x/0X plus at least one hex digit), optional fractional part (dot plus
// at least one digit), optional exponent (e/E, optional sign, at least one
// digit). Malformed forms are recorded and scanning resumes after the
// consumed bytes.
func (l *Lexer) scanNumber() {
	start := l.pos
	src := l.source

	// Hexadecimal form.
	if src[l.pos] == '0' && l.pos+1 < len(src) && (src[l.pos+1] == 'x' || src[l.pos+1] == 'X') {
		l.pos += 2
		digits := l.pos
		for l.pos < len(src) && operators.IsHexDigit(src[l.pos]) {
			l.pos++
		}
		if l.pos == digits {
			l.errorf(types.ErrMalformedNumber, start, "hexadecimal literal %q has no digits", src[start:l.pos])
			return
		}
		l.emit(types.TokenConstant, start, l.pos)
		return
	}

	intDigits := 0
	for l.pos < len(src) && operators.IsDigit(src[l.pos]) {
		l.pos++
		intDigits++
	}

	fracDigits := 0
	if l.pos < len(src) && src[l.pos] == '.' {
		l.pos++
		for l.pos < len(src) && operators.IsDigit(src[l.pos]) {
			l.pos++
			fracDigits++
		}
		if fracDigits == 0 {
			l.errorf(types.ErrMalformedNumber, start, "number %q has no digits after decimal point", src[start:l.pos])
			return
		}
	}

	if intDigits == 0 && fracDigits == 0 {
		// Unreachable via Run, which only enters on a digit or dot, but a
		// lone dot lands here with no fraction consumed.
		l.errorf(types.ErrMalformedNumber, start, "number %q has no digits", src[start:l.pos])
		return
	}

	if l.pos < len(src) && operators.IsExponent(src[l.pos]) {
		l.pos++
		if l.pos < len(src) && operators.IsSign(src[l.pos]) {
			l.pos++
		}
		expDigits := 0
		for l.pos < len(src) && operators.IsDigit(src[l.pos]) {
			l.pos++
			expDigits++
		}
		if expDigits == 0 {
			l.errorf(types.ErrMalformedNumber, start, "number %q has no digits in exponent", src[start:l.pos])
			return
		}
	}

	l.emit(types.TokenConstant, start, l.pos)
}
