// Package types defines the core type system for gomathparse.
//
// This package contains type definitions for:
//   - Token: Lexical tokens with source positions
//   - Node: Abstract Syntax Tree nodes (tagged union)
//   - Expression: Compiled expressions ready for evaluation
//   - Error types: Structured errors with codes and positions
package types

import "strings"

// NodeKind identifies the kind of an AST node.
type NodeKind uint8

const (
	// NodeNone is the zero value; it never appears in a well-formed tree.
	NodeNone NodeKind = iota

	// NodeConstant is a numeric literal leaf. Value holds the literal text
	// exactly as written in the source (hex and scientific forms included),
	// parsed into a number only at evaluation time.
	NodeConstant
	// NodeVariable is a variable reference leaf. Value holds the name.
	NodeVariable
	// NodeUnary applies the operator in Value to Operand.
	NodeUnary
	// NodeBinary applies the operator in Value to Left and Right.
	NodeBinary
	// NodeCall invokes the function named by Value on Args, in order.
	NodeCall
)

// String returns a human-readable name for the node kind.
func (k NodeKind) String() string {
	switch k {
	case NodeConstant:
		return "constant"
	case NodeVariable:
		return "variable"
	case NodeUnary:
		return "unary"
	case NodeBinary:
		return "binary"
	case NodeCall:
		return "call"
	default:
		return "none"
	}
}

// Node represents a node in the Abstract Syntax Tree.
//
// A Node is a tagged union: Kind selects which payload fields are
// meaningful. Trees are built bottom-up by the parser and are immutable
// afterwards; each node is owned exclusively by its parent.
type Node struct {
	Kind     NodeKind
	Value    string  // literal text, variable name, operator, or function name
	Position int     // byte position of the originating token
	Operand  *Node   // NodeUnary only
	Left     *Node   // NodeBinary only
	Right    *Node   // NodeBinary only
	Args     []*Node // NodeCall only
}

// NewConstant creates a constant literal node.
func NewConstant(literal string, pos int) *Node {
	return &Node{Kind: NodeConstant, Value: literal, Position: pos}
}

// NewVariable creates a variable reference node.
func NewVariable(name string, pos int) *Node {
	return &Node{Kind: NodeVariable, Value: name, Position: pos}
}

// NewUnary creates a unary operator node.
func NewUnary(operator string, operand *Node, pos int) *Node {
	return &Node{Kind: NodeUnary, Value: operator, Operand: operand, Position: pos}
}

// NewBinary creates a binary operator node.
func NewBinary(operator string, left, right *Node, pos int) *Node {
	return &Node{Kind: NodeBinary, Value: operator, Left: left, Right: right, Position: pos}
}

// NewCall creates a function call node.
func NewCall(name string, args []*Node, pos int) *Node {
	return &Node{Kind: NodeCall, Value: name, Args: args, Position: pos}
}

// String returns a fully-parenthesized re-serialization of the subtree.
// Re-parsing the result yields a structurally equivalent tree.
func (n *Node) String() string {
	var b strings.Builder
	n.format(&b)
	return b.String()
}

func (n *Node) format(b *strings.Builder) {
	switch n.Kind {
	case NodeConstant, NodeVariable:
		b.WriteString(n.Value)
	case NodeUnary:
		b.WriteByte('(')
		b.WriteString(n.Value)
		n.Operand.format(b)
		b.WriteByte(')')
	case NodeBinary:
		b.WriteByte('(')
		n.Left.format(b)
		b.WriteString(n.Value)
		n.Right.format(b)
		b.WriteByte(')')
	case NodeCall:
		b.WriteString(n.Value)
		b.WriteByte('(')
		for i, arg := range n.Args {
			if i > 0 {
				b.WriteByte(',')
			}
			arg.format(b)
		}
		b.WriteByte(')')
	default:
		b.WriteString("<invalid>")
	}
}

// Equal reports whether two subtrees are structurally equivalent.
// Positions are ignored; structural content defines meaning.
func (n *Node) Equal(m *Node) bool {
	if n == nil || m == nil {
		return n == m
	}
	if n.Kind != m.Kind || n.Value != m.Value {
		return false
	}
	switch n.Kind {
	case NodeUnary:
		return n.Operand.Equal(m.Operand)
	case NodeBinary:
		return n.Left.Equal(m.Left) && n.Right.Equal(m.Right)
	case NodeCall:
		if len(n.Args) != len(m.Args) {
			return false
		}
		for i := range n.Args {
			if !n.Args[i].Equal(m.Args[i]) {
				return false
			}
		}
	}
	return true
}

// Walk calls fn for every node of the subtree in depth-first, left-to-right
// order. Walking stops early if fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	switch n.Kind {
	case NodeUnary:
		return n.Operand.Walk(fn)
	case NodeBinary:
		return n.Left.Walk(fn) && n.Right.Walk(fn)
	case NodeCall:
		for _, arg := range n.Args {
			if !arg.Walk(fn) {
				return false
			}
		}
	}
	return true
}
