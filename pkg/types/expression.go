package types

import "sort"

// Expression represents a compiled arithmetic expression.
//
// An Expression can be evaluated multiple times, possibly against different
// variable bindings, by passing it to the evaluator. The tree it wraps is
// immutable, so an Expression is safe for concurrent use by multiple
// goroutines.
type Expression struct {
	ast    *Node
	source string
}

// NewExpression creates a new Expression from a root node.
func NewExpression(ast *Node, source string) *Expression {
	return &Expression{
		ast:    ast,
		source: source,
	}
}

// AST returns the root node of the expression.
func (e *Expression) AST() *Node {
	return e.ast
}

// Source returns the original source text of the expression. It may be
// empty when the expression was parsed from a bare token sequence.
func (e *Expression) Source() string {
	return e.source
}

// String returns a fully-parenthesized re-serialization of the expression.
func (e *Expression) String() string {
	if e.ast == nil {
		return ""
	}
	return e.ast.String()
}

// Vars returns the sorted set of variable names referenced by the
// expression. Hosts can use it to validate bindings before evaluating.
func (e *Expression) Vars() []string {
	seen := make(map[string]bool)
	e.ast.Walk(func(n *Node) bool {
		if n.Kind == NodeVariable {
			seen[n.Value] = true
		}
		return true
	})
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
