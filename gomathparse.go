// Package gomathparse provides a configurable arithmetic-expression engine.
//
// Expressions are solved in three stages: a trie-based lexer, a
// precedence-climbing parser and a tree-walking evaluator. Every stage is
// configurable: the operator set, the precedence tables, the operator
// semantics, the variable bindings and the callable functions can all be
// replaced at runtime.
//
// # Quick Start
//
//	// Simple evaluation
//	result, err := gomathparse.Solve("2+3*4")
//
//	// Reusable solver with bindings
//	s := gomathparse.NewSolver()
//	s.AddVariable("x", 3)
//	result, err := s.Solve("sin(x)^2")
//
//	// Custom operator semantics
//	s.SetPrecedence(operators.Precedence{Binary: map[string]int{"^": 2, "+": 1, "-": 1}})
//	s.SetOperatorFunctions(myFuncs)
//
// # Caching
//
// A Solver keeps three LRU caches keyed by source text: token streams,
// parsed expressions and results. Configuration setters invalidate
// exactly the caches their change affects: a new operator set drops
// everything, a new precedence table drops parses and results, new
// variables or functions drop results only.
//
// # More Information
//
// For detailed documentation, see:
//   - Lexer: github.com/sandrolain/gomathparse/pkg/lexer
//   - Parser: github.com/sandrolain/gomathparse/pkg/parser
//   - Evaluator: github.com/sandrolain/gomathparse/pkg/evaluator
//   - Operators: github.com/sandrolain/gomathparse/pkg/operators
package gomathparse

import (
	"fmt"
	"sync"

	"github.com/sandrolain/gomathparse/pkg/cache"
	"github.com/sandrolain/gomathparse/pkg/evaluator"
	"github.com/sandrolain/gomathparse/pkg/functions"
	"github.com/sandrolain/gomathparse/pkg/lexer"
	"github.com/sandrolain/gomathparse/pkg/operators"
	"github.com/sandrolain/gomathparse/pkg/parser"
	"github.com/sandrolain/gomathparse/pkg/types"
)

// Version returns the current version of the engine.
func Version() string {
	return "v0.1.0-dev"
}

// DefaultCacheCapacity is the per-cache entry limit used when no
// WithCacheCapacity option is given.
const DefaultCacheCapacity = 256

// Option configures a Solver.
type Option func(*Solver)

// WithCacheCapacity sets the capacity of each of the three solver caches.
func WithCacheCapacity(capacity int) Option {
	return func(s *Solver) {
		s.cacheCapacity = capacity
	}
}

// WithParserOptions passes options through to the underlying parser.
func WithParserOptions(opts ...parser.Option) Option {
	return func(s *Solver) {
		s.parserOpts = append(s.parserOpts, opts...)
	}
}

// WithEvaluatorOptions passes options through to the underlying evaluator.
// Bindings set this way are part of the solver's initial state and are
// restored by ResetToInitialState.
func WithEvaluatorOptions(opts ...evaluator.Option) Option {
	return func(s *Solver) {
		s.evalOpts = append(s.evalOpts, opts...)
	}
}

// Solver composes the lexer, parser and evaluator behind a single
// configurable entry point, with per-stage result caching.
//
// Safe for concurrent use; every method holds the solver lock so a
// configuration change and the solves around it are serialized.
type Solver struct {
	mu sync.Mutex

	ops  []string
	trie *operators.Trie
	prec operators.Precedence

	vars    map[string]float64
	opFuncs operators.Funcs
	funcs   map[string]functions.Function

	lex  *lexer.Lexer
	par  *parser.Parser
	eval *evaluator.Evaluator

	tokenCache  *cache.Cache[[]types.Token]
	astCache    *cache.Cache[*types.Expression]
	resultCache *cache.Cache[float64]

	cacheCapacity int
	parserOpts    []parser.Option
	evalOpts      []evaluator.Option
}

// NewSolver creates a Solver with the default operator set, precedence
// tables, operator functions and builtin math functions.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{
		cacheCapacity: DefaultCacheCapacity,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lex = lexer.New()
	s.par = parser.New(s.parserOpts...)
	s.eval = evaluator.New(s.evalOpts...)
	s.resetLocked()
	return s
}

// resetLocked restores the initial configuration and fresh caches. The
// initial state is the defaults overlaid with any bindings carried by the
// evaluator options given at construction.
// Must be called with s.mu held (or before the solver is shared).
func (s *Solver) resetLocked() {
	s.ops = operators.DefaultOperators()
	s.trie = operators.NewTrie(s.ops)
	s.prec = operators.DefaultPrecedence()

	var seed evaluator.Options
	for _, opt := range s.evalOpts {
		opt(&seed)
	}
	s.vars = make(map[string]float64, len(seed.Variables))
	for name, value := range seed.Variables {
		s.vars[name] = value
	}
	if seed.OperatorFuncs.Unary != nil || seed.OperatorFuncs.Binary != nil {
		s.opFuncs = seed.OperatorFuncs.Clone()
	} else {
		s.opFuncs = operators.DefaultFuncs()
	}
	s.funcs = make(map[string]functions.Function, len(seed.Functions))
	for name, fn := range seed.Functions {
		s.funcs[name] = fn
	}
	s.tokenCache = cache.New[[]types.Token](s.cacheCapacity)
	s.astCache = cache.New[*types.Expression](s.cacheCapacity)
	s.resultCache = cache.New[float64](s.cacheCapacity)
}

// ResetToInitialState restores all configuration to the initial state and
// clears every cache. Variable, operator-function and function bindings
// carried by evaluator options given at construction are re-applied.
func (s *Solver) ResetToInitialState() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// Solve tokenizes, parses and evaluates source, returning the numeric
// result. The first error from any stage wins.
func (s *Solver) Solve(source string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resultCache.GetOrCompute(source, func() (float64, error) {
		expr, err := s.parseLocked(source)
		if err != nil {
			return 0, err
		}
		return s.evaluateLocked(expr)
	})
}

// Tokenize runs only the lexing stage against the current operator set.
func (s *Solver) Tokenize(source string) ([]types.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokenizeLocked(source)
}

// Parse runs lexing and parsing against the current configuration,
// returning the compiled expression without evaluating it.
func (s *Solver) Parse(source string) (*types.Expression, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.parseLocked(source)
}

// Evaluate evaluates an already-parsed expression against the current
// variable bindings, operator functions and function registry.
func (s *Solver) Evaluate(expr *types.Expression) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evaluateLocked(expr)
}

func (s *Solver) tokenizeLocked(source string) ([]types.Token, error) {
	return s.tokenCache.GetOrCompute(source, func() ([]types.Token, error) {
		s.lex.ResetWithTrie(source, s.trie)
		return s.lex.Run()
	})
}

func (s *Solver) parseLocked(source string) (*types.Expression, error) {
	return s.astCache.GetOrCompute(source, func() (*types.Expression, error) {
		tokens, err := s.tokenizeLocked(source)
		if err != nil {
			return nil, err
		}
		s.par.Reset(tokens, s.prec, source)
		return s.par.Run()
	})
}

func (s *Solver) evaluateLocked(expr *types.Expression) (float64, error) {
	s.eval.Reset(s.vars, s.opFuncs, s.funcs)
	return s.eval.Evaluate(expr)
}

// AddVariable binds a single variable. Invalidates cached results.
func (s *Solver) AddVariable(name string, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vars[name] = value
	s.resultCache.Clear()
}

// SetVariables replaces the whole variable-binding map.
// Invalidates cached results. A nil map clears all bindings.
func (s *Solver) SetVariables(vars map[string]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vars = map[string]float64{}
	for name, value := range vars {
		s.vars[name] = value
	}
	s.resultCache.Clear()
}

// AddFunction registers a callable function, shadowing any builtin with
// the same name. Invalidates cached results.
func (s *Solver) AddFunction(name string, fn functions.Function) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.funcs[name] = fn
	s.resultCache.Clear()
}

// SetFunctions replaces the custom function registry. Builtins remain
// available for names not present in the map. Invalidates cached results.
func (s *Solver) SetFunctions(fns map[string]functions.Function) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.funcs = map[string]functions.Function{}
	for name, fn := range fns {
		s.funcs[name] = fn
	}
	s.resultCache.Clear()
}

// SetOperators replaces the recognized operator set and rebuilds the
// matching trie. Tokenization depends on it, so every cache is dropped.
func (s *Solver) SetOperators(ops []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = append([]string(nil), ops...)
	s.trie = operators.NewTrie(s.ops)
	s.tokenCache.Clear()
	s.astCache.Clear()
	s.resultCache.Clear()
}

// SetPrecedence replaces the precedence tables. Parse trees depend on
// them, so the expression and result caches are dropped; tokens survive.
func (s *Solver) SetPrecedence(prec operators.Precedence) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prec = prec.Clone()
	s.astCache.Clear()
	s.resultCache.Clear()
}

// SetOperatorFunctions replaces the operator semantics tables. A zero
// Funcs restores the arithmetic defaults; explicitly empty non-nil tables
// remove every operator implementation. Invalidates cached results.
func (s *Solver) SetOperatorFunctions(funcs operators.Funcs) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opFuncs = funcs.Clone()
	s.resultCache.Clear()
}

// Operators returns a copy of the current operator set.
func (s *Solver) Operators() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ops...)
}

// Solve is a convenience function that solves an expression with the
// default configuration in a single call.
//
// For repeated evaluations or custom configuration, use NewSolver.
//
// Example:
//
//	result, err := gomathparse.Solve("2+3*4")
func Solve(source string) (float64, error) {
	expr, err := Parse(source)
	if err != nil {
		return 0, err
	}
	return evaluator.Evaluate(expr)
}

// Parse compiles an expression with the default operator set and
// precedence tables for repeated evaluation.
//
// The compiled expression is immutable and safe for concurrent use.
func Parse(source string) (*types.Expression, error) {
	tokens, err := lexer.Tokenize(source, operators.DefaultOperators())
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens, operators.DefaultPrecedence(), source)
}

// MustParse is like Parse but panics if the expression cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(source string) *types.Expression {
	expr, err := Parse(source)
	if err != nil {
		panic(fmt.Sprintf("gomathparse: Parse(%q): %v", source, err))
	}
	return expr
}
