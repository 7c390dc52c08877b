package operators

import "testing"

func TestTrieLongestMatch(t *testing.T) {
	trie := NewTrie([]string{"+", "++", "+=", "<", "<=", "<<", "<<=", "*"})

	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"single char", "+1", "+", true},
		{"prefers longer over prefix", "++1", "++", true},
		{"two char", "+=x", "+=", true},
		{"three char wins over two", "<<=x", "<<=", true},
		{"two char wins over one", "<=x", "<=", true},
		{"stops at longest present", "<x", "<", true},
		{"no match", "@", "", false},
		{"empty input", "", "", false},
		{"match must start at position zero", "x+", "", false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := trie.Match(test.input)
			if ok != test.ok || got != test.want {
				t.Errorf("Match(%q) = (%q, %v), want (%q, %v)", test.input, got, ok, test.want, test.ok)
			}
		})
	}
}

func TestTrieMaxLen(t *testing.T) {
	if got := NewTrie([]string{"+", "<<=", "*"}).MaxLen(); got != 3 {
		t.Errorf("MaxLen() = %d, want 3", got)
	}
	if got := NewTrie(nil).MaxLen(); got != 0 {
		t.Errorf("MaxLen() of empty trie = %d, want 0", got)
	}
}

func TestTrieIgnoresEmptyOperator(t *testing.T) {
	trie := NewTrie([]string{"", "+"})
	if _, ok := trie.Match("x"); ok {
		t.Error("empty operator must never match")
	}
	if got, ok := trie.Match("+"); !ok || got != "+" {
		t.Errorf("Match(%q) = (%q, %v), want (%q, true)", "+", got, ok, "+")
	}
}

func TestDefaultPrecedenceTables(t *testing.T) {
	prec := DefaultPrecedence()

	binary := map[string]int{"^": 3, "*": 2, "/": 2, "%": 2, "+": 1, "-": 1}
	for op, want := range binary {
		got, ok := prec.BinaryLevel(op)
		if !ok || got != want {
			t.Errorf("BinaryLevel(%q) = (%d, %v), want (%d, true)", op, got, ok, want)
		}
	}
	if got, ok := prec.UnaryLevel("-"); !ok || got != 4 {
		t.Errorf("UnaryLevel(-) = (%d, %v), want (4, true)", got, ok)
	}
	if _, ok := prec.UnaryLevel("*"); ok {
		t.Error("UnaryLevel(*) should not be defined")
	}
	if !prec.IsRightAssoc("^") {
		t.Error("^ must be right-associative by default")
	}
	if prec.IsRightAssoc("-") {
		t.Error("- must not be right-associative")
	}
}

func TestPrecedenceCloneIsIndependent(t *testing.T) {
	a := DefaultPrecedence()
	b := a.Clone()
	b.Binary["^"] = 9
	b.RightAssoc["-"] = true

	if got, _ := a.BinaryLevel("^"); got != 3 {
		t.Errorf("mutating the clone changed the original: BinaryLevel(^) = %d", got)
	}
	if a.IsRightAssoc("-") {
		t.Error("mutating the clone changed the original associativity table")
	}
}

func TestDefaultFuncs(t *testing.T) {
	funcs := DefaultFuncs()

	if got := funcs.Binary["%"](7, 3); got != 1 {
		t.Errorf("7 %% 3 = %g, want 1", got)
	}
	if got := funcs.Binary["^"](2, 10); got != 1024 {
		t.Errorf("2 ^ 10 = %g, want 1024", got)
	}
	if got := funcs.Unary["-"](5); got != -5 {
		t.Errorf("unary -5 = %g, want -5", got)
	}

	clone := funcs.Clone()
	clone.Binary["+"] = func(l, r float64) float64 { return 0 }
	if got := funcs.Binary["+"](2, 2); got != 4 {
		t.Errorf("mutating the clone changed the original: 2 + 2 = %g", got)
	}
}

func TestFuncsCloneNilTables(t *testing.T) {
	if c := (Funcs{}).Clone(); c.Unary != nil || c.Binary != nil {
		t.Errorf("clone of zero Funcs = %+v, want nil tables", c)
	}
	empty := Funcs{
		Unary:  map[string]UnaryFunc{},
		Binary: map[string]BinaryFunc{},
	}
	if c := empty.Clone(); c.Unary == nil || c.Binary == nil {
		t.Error("clone of explicitly empty tables must keep them non-nil")
	}
}
