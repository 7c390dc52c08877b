// Package parser builds an Abstract Syntax Tree from a token sequence.
//
// The parser uses precedence climbing (a generalization of
// operator-precedence parsing): each recursion level carries a minimum
// precedence threshold, and a binary operator continues the current level
// only while it binds more tightly than the threshold. Right-associative
// operators are allowed to chain at equal precedence, producing
// right-nested trees (a^b^c parses as a^(b^c)).
//
// Function calls are recognized with a single token of lookahead: a
// variable token immediately followed by "(" is a call, anything else is a
// plain variable reference.
//
// Parsing stops at the first syntax error; later errors are usually
// consequences of the first, so there is no batching here, unlike the
// lexer.
package parser

import (
	"fmt"

	"github.com/sandrolain/gomathparse/pkg/operators"
	"github.com/sandrolain/gomathparse/pkg/types"
)

// DefaultMaxDepth bounds expression nesting so that pathological input
// fails with a structured error instead of overflowing the stack.
const DefaultMaxDepth = 512

// Option configures parser behavior.
type Option func(*Options)

// Options holds parser configuration.
type Options struct {
	// MaxDepth limits recursion depth. Zero or negative selects
	// DefaultMaxDepth.
	MaxDepth int
	// PermissiveEnd disables the trailing-token check after a complete
	// expression. Callers that parse a prefix of a longer sequence and
	// re-validate the remainder themselves request this mode.
	PermissiveEnd bool
}

// WithMaxDepth sets the maximum nesting depth.
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		o.MaxDepth = depth
	}
}

// WithPermissiveEnd disables the trailing-token check.
func WithPermissiveEnd() Option {
	return func(o *Options) {
		o.PermissiveEnd = true
	}
}

// Parser builds ASTs from token sequences. It carries cursor state during
// a call, so a Parser instance is not safe for concurrent use; Reset and
// Run must be treated as an atomic unit by callers sharing an instance.
type Parser struct {
	tokens []types.Token
	pos    int
	prec   operators.Precedence
	source string
	opts   Options
	depth  int
}

// New creates a parser with no input. Call Reset before Run.
func New(opts ...Option) *Parser {
	options := Options{MaxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&options)
	}
	if options.MaxDepth <= 0 {
		options.MaxDepth = DefaultMaxDepth
	}
	return &Parser{opts: options}
}

// Reset restarts the parser on a new token sequence with new precedence
// tables. source is the original expression text, used only to enrich
// error messages; it may be empty.
func (p *Parser) Reset(tokens []types.Token, prec operators.Precedence, source string) {
	p.tokens = tokens
	p.pos = 0
	p.prec = prec
	p.source = source
	p.depth = 0
}

// Parse is a shortcut to parse a single token sequence.
func Parse(tokens []types.Token, prec operators.Precedence, source string, opts ...Option) (*types.Expression, error) {
	p := New(opts...)
	p.Reset(tokens, prec, source)
	return p.Run()
}

// Run parses the token sequence into an Expression. The first syntax error
// encountered aborts the parse.
func (p *Parser) Run() (*types.Expression, error) {
	root, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if !p.opts.PermissiveEnd {
		if tok, ok := p.peek(); ok {
			return nil, p.errorf(types.ErrTrailingTokens, tok.Position,
				"unexpected %s %q after complete expression", tok.Kind, tok.Value)
		}
	}
	return types.NewExpression(root, p.source), nil
}

// Rest returns the tokens not consumed by the last Run. Meaningful only in
// permissive-end mode.
func (p *Parser) Rest() []types.Token {
	return p.tokens[p.pos:]
}

func (p *Parser) peek() (types.Token, bool) {
	if p.pos >= len(p.tokens) {
		return types.Token{}, false
	}
	return p.tokens[p.pos], true
}

// peekAhead looks n tokens past the current one.
func (p *Parser) peekAhead(n int) (types.Token, bool) {
	if p.pos+n >= len(p.tokens) {
		return types.Token{}, false
	}
	return p.tokens[p.pos+n], true
}

// eofPos is the position reported for unexpected-end errors.
func (p *Parser) eofPos() int {
	if p.source != "" {
		return len(p.source)
	}
	if n := len(p.tokens); n > 0 {
		last := p.tokens[n-1]
		return last.Position + len(last.Value)
	}
	return 0
}

func (p *Parser) errorf(code types.ErrorCode, pos int, format string, args ...any) *types.Error {
	return types.NewError(code, fmt.Sprintf(format, args...), pos)
}

// moreBinding reports whether an operator at the given level continues the
// current climb over threshold min. Right-associative operators chain at
// equal precedence.
func moreBinding(level int, rightAssoc bool, min int) bool {
	if level != min {
		return level > min
	}
	return rightAssoc
}

// parseExpression parses a full binary expression whose operators all bind
// more tightly than min.
func (p *Parser) parseExpression(min int) (*types.Node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.opts.MaxDepth {
		return nil, p.errorf(types.ErrDepthExceeded, p.currentPos(),
			"expression nesting exceeds %d levels", p.opts.MaxDepth)
	}

	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || tok.Kind != types.TokenOperator {
			return left, nil
		}
		level, known := p.prec.BinaryLevel(tok.Value)
		if !known || !moreBinding(level, p.prec.IsRightAssoc(tok.Value), min) {
			return left, nil
		}
		p.pos++
		// The right-hand side climbs with the current operator's level as
		// its threshold, so looser operators bubble back up here.
		right, err := p.parseExpression(level)
		if err != nil {
			return nil, err
		}
		left = types.NewBinary(tok.Value, left, right, tok.Position)
	}
}

func (p *Parser) currentPos() int {
	if tok, ok := p.peek(); ok {
		return tok.Position
	}
	return p.eofPos()
}

// parseUnary parses a chain of prefix operators over a primary. The
// operand threshold is the unary level minus one: binary operators at or
// above the unary's own level bind inside the operand, and a
// right-associative operator exactly one step below does too, which gives
// the conventional grouping -2^2 == -(2^2) with the default tables.
func (p *Parser) parseUnary() (*types.Node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, p.errorf(types.ErrUnexpectedEnd, p.eofPos(), "unexpected end of expression")
	}
	if tok.Kind != types.TokenOperator {
		return p.parsePrimary()
	}
	level, known := p.prec.UnaryLevel(tok.Value)
	if !known {
		return nil, p.errorf(types.ErrUnexpectedToken, tok.Position,
			"operator %q cannot start an expression", tok.Value)
	}
	p.pos++
	operand, err := p.parseExpression(level - 1)
	if err != nil {
		return nil, err
	}
	return types.NewUnary(tok.Value, operand, tok.Position), nil
}

// parsePrimary parses a constant, variable, function call, or
// parenthesized subexpression.
func (p *Parser) parsePrimary() (*types.Node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, p.errorf(types.ErrUnexpectedEnd, p.eofPos(), "unexpected end of expression")
	}
	switch tok.Kind {
	case types.TokenConstant:
		p.pos++
		return types.NewConstant(tok.Value, tok.Position), nil
	case types.TokenVariable:
		// One token of lookahead decides call versus variable reference.
		if next, ok := p.peekAhead(1); ok && next.Kind == types.TokenParenthesis && next.Value == "(" {
			return p.parseCall(tok)
		}
		p.pos++
		return types.NewVariable(tok.Value, tok.Position), nil
	case types.TokenParenthesis:
		if tok.Value != "(" {
			return nil, p.errorf(types.ErrUnexpectedToken, tok.Position,
				"unexpected %q, expected an expression", tok.Value)
		}
		p.pos++
		inner, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		end, ok := p.peek()
		if !ok || end.Kind != types.TokenParenthesis || end.Value != ")" {
			return nil, p.errorf(types.ErrBracketMismatch, tok.Position,
				"opening parenthesis is never closed")
		}
		p.pos++
		return inner, nil
	default:
		return nil, p.errorf(types.ErrUnexpectedToken, tok.Position,
			"unexpected %s %q, expected an expression", tok.Kind, tok.Value)
	}
}

// parseCall parses a function-call argument list. The current token is the
// function name and the next one is the opening parenthesis.
func (p *Parser) parseCall(name types.Token) (*types.Node, error) {
	p.pos += 2 // name and "("

	var args []*types.Node
	if tok, ok := p.peek(); ok && tok.Kind == types.TokenParenthesis && tok.Value == ")" {
		p.pos++
		return types.NewCall(name.Value, args, name.Position), nil
	}
	for {
		if _, ok := p.peek(); !ok {
			// Distinguish a dangling comma (missing argument) from a
			// missing closing parenthesis.
			if len(args) > 0 {
				return nil, p.errorf(types.ErrMalformedCall, p.eofPos(),
					"missing argument after \",\" in call to %s", name.Value)
			}
			return nil, p.errorf(types.ErrMalformedCall, p.eofPos(),
				"missing closing parenthesis in call to %s", name.Value)
		}
		arg, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		tok, ok := p.peek()
		switch {
		case !ok:
			return nil, p.errorf(types.ErrMalformedCall, p.eofPos(),
				"missing closing parenthesis in call to %s", name.Value)
		case tok.Kind == types.TokenComma:
			p.pos++
		case tok.Kind == types.TokenParenthesis && tok.Value == ")":
			p.pos++
			return types.NewCall(name.Value, args, name.Position), nil
		default:
			return nil, p.errorf(types.ErrMalformedCall, tok.Position,
				"unexpected %s %q in call to %s, expected \",\" or \")\"", tok.Kind, tok.Value, name.Value)
		}
	}
}
