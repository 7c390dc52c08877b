package operators

// Precedence holds the precedence configuration consulted by the parser.
// Higher values bind more tightly. The zero value is an empty table; use
// DefaultPrecedence for the standard arithmetic levels.
//
// A Precedence is read-only during a parse; callers that mutate a shared
// table concurrently with parsing must synchronize or work on a Clone.
type Precedence struct {
	// Unary maps operator strings usable in prefix position to a level.
	Unary map[string]int
	// Binary maps operator strings usable in infix position to a level.
	Binary map[string]int
	// RightAssoc marks binary operators that chain right-to-left at equal
	// precedence, e.g. "^" so that a^b^c parses as a^(b^c).
	RightAssoc map[string]bool
}

// BinaryLevel returns the precedence level of op in infix position.
func (p Precedence) BinaryLevel(op string) (int, bool) {
	level, ok := p.Binary[op]
	return level, ok
}

// UnaryLevel returns the precedence level of op in prefix position.
func (p Precedence) UnaryLevel(op string) (int, bool) {
	level, ok := p.Unary[op]
	return level, ok
}

// IsRightAssoc reports whether op chains right-to-left.
func (p Precedence) IsRightAssoc(op string) bool {
	return p.RightAssoc[op]
}

// Clone returns a deep copy of the precedence tables.
func (p Precedence) Clone() Precedence {
	c := Precedence{
		Unary:      make(map[string]int, len(p.Unary)),
		Binary:     make(map[string]int, len(p.Binary)),
		RightAssoc: make(map[string]bool, len(p.RightAssoc)),
	}
	for k, v := range p.Unary {
		c.Unary[k] = v
	}
	for k, v := range p.Binary {
		c.Binary[k] = v
	}
	for k, v := range p.RightAssoc {
		c.RightAssoc[k] = v
	}
	return c
}

// defaultOperators is the standard arithmetic operator set.
var defaultOperators = []string{"+", "-", "*", "/", "%", "^"}

// DefaultOperators returns the standard operator set {+ - * / % ^}.
func DefaultOperators() []string {
	ops := make([]string, len(defaultOperators))
	copy(ops, defaultOperators)
	return ops
}

// defaultPrecedence holds the standard levels. Never mutated after init;
// DefaultPrecedence hands out copies.
var defaultPrecedence = Precedence{
	Unary: map[string]int{
		"-": 4,
	},
	Binary: map[string]int{
		"^": 3,
		"*": 2,
		"/": 2,
		"%": 2,
		"+": 1,
		"-": 1,
	},
	RightAssoc: map[string]bool{
		"^": true,
	},
}

// DefaultPrecedence returns a copy of the standard precedence tables:
// unary {-:4}; binary {^:3, *:2, /:2, %:2, +:1, -:1}; right-assoc {^}.
func DefaultPrecedence() Precedence {
	return defaultPrecedence.Clone()
}
