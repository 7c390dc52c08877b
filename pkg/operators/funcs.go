package operators

import "math"

// UnaryFunc implements the semantics of an operator in prefix position.
type UnaryFunc func(x float64) float64

// BinaryFunc implements the semantics of an operator in infix position.
type BinaryFunc func(left, right float64) float64

// Funcs maps operator strings to their implementations. The evaluator
// dispatches through these tables; an operator present in the precedence
// configuration but absent here is an unknown-operator evaluation error.
type Funcs struct {
	Unary  map[string]UnaryFunc
	Binary map[string]BinaryFunc
}

// Clone returns a copy of the tables sharing the function values. Nil
// tables stay nil: a zero Funcs means "use the defaults", while non-nil
// empty tables mean "no operators", and a copy must keep that distinction.
func (f Funcs) Clone() Funcs {
	var c Funcs
	if f.Unary != nil {
		c.Unary = make(map[string]UnaryFunc, len(f.Unary))
		for k, v := range f.Unary {
			c.Unary[k] = v
		}
	}
	if f.Binary != nil {
		c.Binary = make(map[string]BinaryFunc, len(f.Binary))
		for k, v := range f.Binary {
			c.Binary[k] = v
		}
	}
	return c
}

// defaultFuncs implements standard arithmetic. Constructed once, never
// mutated; DefaultFuncs hands out copies of the maps.
var defaultFuncs = Funcs{
	Unary: map[string]UnaryFunc{
		"-": func(x float64) float64 { return -x },
	},
	Binary: map[string]BinaryFunc{
		"+": func(l, r float64) float64 { return l + r },
		"-": func(l, r float64) float64 { return l - r },
		"*": func(l, r float64) float64 { return l * r },
		"/": func(l, r float64) float64 { return l / r },
		"%": math.Mod,
		"^": math.Pow,
	},
}

// DefaultFuncs returns the standard arithmetic operator functions.
func DefaultFuncs() Funcs {
	return defaultFuncs.Clone()
}
