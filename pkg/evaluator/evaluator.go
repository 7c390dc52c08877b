// Package evaluator walks an Abstract Syntax Tree and produces a numeric
// result.
//
// The evaluator resolves constant literals, looks up variables by
// presence (a variable legitimately bound to zero resolves to zero, it is
// never reported as undefined), applies operators through injected
// operator-function tables, and dispatches function calls against a user
// table overlaid on the built-in math functions.
//
// Evaluation is strict and eager: operands and arguments are evaluated
// left to right, and the first error aborts the walk.
package evaluator

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/sandrolain/gomathparse/pkg/functions"
	"github.com/sandrolain/gomathparse/pkg/operators"
	"github.com/sandrolain/gomathparse/pkg/types"
)

// DefaultMaxDepth bounds tree depth during evaluation, mirroring the
// parser's nesting guard for trees built programmatically.
const DefaultMaxDepth = 512

// Option configures evaluator behavior.
type Option func(*Options)

// Options holds evaluator configuration.
type Options struct {
	// Variables are the initial variable bindings.
	Variables map[string]float64
	// OperatorFuncs are the operator implementations. A zero value (both
	// tables nil) selects the standard arithmetic defaults.
	OperatorFuncs operators.Funcs
	// Functions are user functions, overlaid on the built-in table.
	Functions map[string]functions.Function
	// MaxDepth limits tree depth. Zero or negative selects DefaultMaxDepth.
	MaxDepth int
	// Debug enables per-node debug logging.
	Debug bool
	// Logger for structured logging. Defaults to slog.Default.
	Logger *slog.Logger
}

// WithVariable binds a single variable.
func WithVariable(name string, value float64) Option {
	return func(o *Options) {
		if o.Variables == nil {
			o.Variables = make(map[string]float64)
		}
		o.Variables[name] = value
	}
}

// WithVariables binds a group of variables.
func WithVariables(vars map[string]float64) Option {
	return func(o *Options) {
		if o.Variables == nil {
			o.Variables = make(map[string]float64, len(vars))
		}
		for k, v := range vars {
			o.Variables[k] = v
		}
	}
}

// WithOperatorFuncs sets the operator-function tables.
func WithOperatorFuncs(funcs operators.Funcs) Option {
	return func(o *Options) {
		o.OperatorFuncs = funcs
	}
}

// WithFunction registers a user function.
func WithFunction(name string, fn functions.Function) Option {
	return func(o *Options) {
		if o.Functions == nil {
			o.Functions = make(map[string]functions.Function)
		}
		o.Functions[name] = fn
	}
}

// WithFunctions registers a group of user functions.
func WithFunctions(fns map[string]functions.Function) Option {
	return func(o *Options) {
		if o.Functions == nil {
			o.Functions = make(map[string]functions.Function, len(fns))
		}
		for k, v := range fns {
			o.Functions[k] = v
		}
	}
}

// WithMaxDepth sets the maximum tree depth.
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		o.MaxDepth = depth
	}
}

// WithDebug enables or disables per-node debug logging.
func WithDebug(enabled bool) Option {
	return func(o *Options) {
		o.Debug = enabled
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// Evaluator evaluates parsed expressions. The binding maps are read-only
// during a call and may be shared across instances; mutating them
// concurrently with an in-flight evaluation is undefined.
type Evaluator struct {
	vars   map[string]float64
	ops    operators.Funcs
	fns    map[string]functions.Function
	opts   Options
	logger *slog.Logger
}

// New creates a new Evaluator.
func New(opts ...Option) *Evaluator {
	options := Options{
		MaxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.MaxDepth <= 0 {
		options.MaxDepth = DefaultMaxDepth
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	e := &Evaluator{opts: options, logger: options.Logger}
	e.Reset(options.Variables, options.OperatorFuncs, options.Functions)
	return e
}

// Reset replaces the variable bindings, operator-function tables, and user
// function table. A zero Funcs (both tables nil) selects the arithmetic
// defaults; non-nil empty tables are honored as "no operators". A nil
// function map clears user functions (built-ins remain).
func (e *Evaluator) Reset(vars map[string]float64, ops operators.Funcs, fns map[string]functions.Function) {
	if vars == nil {
		vars = make(map[string]float64)
	}
	e.vars = vars
	if ops.Unary == nil && ops.Binary == nil {
		ops = operators.DefaultFuncs()
	}
	e.ops = ops
	e.fns = fns
}

// Evaluate walks the expression tree and returns the numeric result.
func (e *Evaluator) Evaluate(expr *types.Expression) (float64, error) {
	if expr == nil || expr.AST() == nil {
		return 0, types.NewError(types.ErrUnexpectedEnd, "empty expression", -1)
	}
	return e.evalNode(expr.AST(), 0)
}

// EvaluateNode walks a bare subtree. Hosts composing trees themselves can
// use it directly.
func (e *Evaluator) EvaluateNode(root *types.Node) (float64, error) {
	if root == nil {
		return 0, types.NewError(types.ErrUnexpectedEnd, "empty expression", -1)
	}
	return e.evalNode(root, 0)
}

func (e *Evaluator) evalNode(n *types.Node, depth int) (float64, error) {
	if depth > e.opts.MaxDepth {
		return 0, types.NewError(types.ErrDepthExceeded,
			"expression nesting exceeds evaluation depth limit", n.Position)
	}
	if e.opts.Debug {
		e.logger.Debug("eval node", "kind", n.Kind.String(), "value", n.Value, "pos", n.Position)
	}

	switch n.Kind {
	case types.NodeConstant:
		return e.evalConstant(n)
	case types.NodeVariable:
		// Presence check, never truthiness: zero is a valid binding.
		v, ok := e.vars[n.Value]
		if !ok {
			return 0, types.NewError(types.ErrUndefinedVariable,
				"undefined variable "+strconv.Quote(n.Value), n.Position).WithToken(n.Value)
		}
		return v, nil
	case types.NodeUnary:
		fn, ok := e.ops.Unary[n.Value]
		if !ok {
			return 0, types.NewError(types.ErrUnknownOperator,
				"no unary implementation for operator "+strconv.Quote(n.Value), n.Position).WithToken(n.Value)
		}
		operand, err := e.evalNode(n.Operand, depth+1)
		if err != nil {
			return 0, err
		}
		return fn(operand), nil
	case types.NodeBinary:
		fn, ok := e.ops.Binary[n.Value]
		if !ok {
			return 0, types.NewError(types.ErrUnknownOperator,
				"no binary implementation for operator "+strconv.Quote(n.Value), n.Position).WithToken(n.Value)
		}
		// Left before right: required whenever operator functions have
		// side effects.
		left, err := e.evalNode(n.Left, depth+1)
		if err != nil {
			return 0, err
		}
		right, err := e.evalNode(n.Right, depth+1)
		if err != nil {
			return 0, err
		}
		return fn(left, right), nil
	case types.NodeCall:
		return e.evalCall(n, depth)
	default:
		return 0, types.NewError(types.ErrUnexpectedToken,
			"invalid AST node kind "+n.Kind.String(), n.Position)
	}
}

func (e *Evaluator) evalCall(n *types.Node, depth int) (float64, error) {
	fn, ok := e.fns[n.Value]
	if !ok {
		fn, ok = functions.Builtin(n.Value)
	}
	if !ok {
		return 0, types.NewError(types.ErrUndefinedFunction,
			"undefined function "+strconv.Quote(n.Value), n.Position).WithToken(n.Value)
	}
	args := make([]float64, len(n.Args))
	for i, arg := range n.Args {
		v, err := e.evalNode(arg, depth+1)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	result, err := fn(args...)
	if err != nil {
		if structured, ok := err.(*types.Error); ok {
			if structured.Position < 0 {
				structured.Position = n.Position
			}
			return 0, structured
		}
		return 0, types.NewError(types.ErrFunctionDomain,
			"function "+n.Value+" failed", n.Position).WithCause(err)
	}
	return result, nil
}

// evalConstant parses the preserved literal text. Go's ParseFloat rejects
// bare hexadecimal mantissas, so 0x/0X forms go through ParseUint.
func (e *Evaluator) evalConstant(n *types.Node) (float64, error) {
	s := n.Value
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		u, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return 0, types.NewError(types.ErrInvalidLiteral,
				"invalid hexadecimal literal "+strconv.Quote(s), n.Position).WithToken(s).WithCause(err)
		}
		return float64(u), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, types.NewError(types.ErrInvalidLiteral,
			"invalid numeric literal "+strconv.Quote(s), n.Position).WithToken(s).WithCause(err)
	}
	return v, nil
}

// Evaluate is a shortcut to evaluate an expression with the given options.
func Evaluate(expr *types.Expression, opts ...Option) (float64, error) {
	return New(opts...).Evaluate(expr)
}
