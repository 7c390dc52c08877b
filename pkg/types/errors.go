package types

import (
	"fmt"
	"strings"
)

// ErrorCode represents a gomathparse error code.
type ErrorCode string

// Error codes, grouped by taxonomy bucket.
const (
	// L01xx: Lexical errors (batched per tokenize call)
	ErrUnrecognizedChar ErrorCode = "L0101"
	ErrMalformedNumber  ErrorCode = "L0102"

	// S02xx: Syntax errors (first error wins)
	ErrUnexpectedToken ErrorCode = "S0201"
	ErrUnexpectedEnd   ErrorCode = "S0202"
	ErrBracketMismatch ErrorCode = "S0203"
	ErrMalformedCall   ErrorCode = "S0204"
	ErrTrailingTokens  ErrorCode = "S0205"

	// T0xxx: Type errors
	ErrArgumentCount ErrorCode = "T0410"

	// U1xxx / D1xxx: Evaluation errors (first error wins)
	ErrUndefinedVariable ErrorCode = "U1001"
	ErrUndefinedFunction ErrorCode = "U1002"
	ErrUnknownOperator   ErrorCode = "U1003"
	ErrInvalidLiteral    ErrorCode = "D1001"
	ErrFunctionDomain    ErrorCode = "D1002"

	// D3xxx: Resource limits
	ErrDepthExceeded ErrorCode = "D3020"
)

// ErrorClass is the taxonomy bucket an error code belongs to.
type ErrorClass uint8

const (
	ClassLexical ErrorClass = iota
	ClassSyntax
	ClassEvaluation
)

// String returns a human-readable name for the error class.
func (c ErrorClass) String() string {
	switch c {
	case ClassLexical:
		return "lexical"
	case ClassSyntax:
		return "syntax"
	default:
		return "evaluation"
	}
}

// Class returns the taxonomy bucket of the code.
func (c ErrorCode) Class() ErrorClass {
	switch {
	case strings.HasPrefix(string(c), "L"):
		return ClassLexical
	case strings.HasPrefix(string(c), "S"):
		return ClassSyntax
	default:
		return ClassEvaluation
	}
}

// Error represents a structured gomathparse error.
type Error struct {
	Code     ErrorCode
	Message  string
	Position int // byte offset into the source, or -1 when unknown
	Token    string
	Err      error
}

// NewError creates a new error with a source position.
func NewError(code ErrorCode, message string, position int) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Position: position,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Code, e.Position, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithToken adds the offending token text to the error.
func (e *Error) WithToken(token string) *Error {
	e.Token = token
	return e
}

// WithCause wraps another error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}

// annotateWindow is the number of source bytes shown on each side of the
// failing position when annotating an error.
const annotateWindow = 24

// Annotate renders the error with a caret pointer into the original source
// text and a context window around the failing position:
//
//	L0102 at position 4: malformed number: exponent has no digits
//	  2 + 1e* 3
//	      ^
//
// When the position falls outside the source, Annotate degrades to the
// plain Error string.
func (e *Error) Annotate(source string) string {
	if source == "" || e.Position < 0 || e.Position > len(source) {
		return e.Error()
	}
	start := e.Position - annotateWindow
	if start < 0 {
		start = 0
	}
	end := e.Position + annotateWindow
	if end > len(source) {
		end = len(source)
	}
	// Tabs would misalign the caret.
	window := strings.ReplaceAll(source[start:end], "\t", " ")
	var b strings.Builder
	b.WriteString(e.Error())
	b.WriteString("\n  ")
	b.WriteString(window)
	b.WriteString("\n  ")
	b.WriteString(strings.Repeat(" ", e.Position-start))
	b.WriteString("^")
	return b.String()
}

// ErrorList is an aggregate of errors raised together, used by the lexer to
// report every lexical error found in a single pass.
type ErrorList []*Error

// Error implements the error interface by joining the messages.
func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d errors: %s", len(l), strings.Join(msgs, "; "))
}

// Unwrap exposes the individual errors to errors.Is/As.
func (l ErrorList) Unwrap() []error {
	errs := make([]error, len(l))
	for i, e := range l {
		errs[i] = e
	}
	return errs
}

// Annotate renders every error in the list with caret context.
func (l ErrorList) Annotate(source string) string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Annotate(source)
	}
	return strings.Join(msgs, "\n")
}
