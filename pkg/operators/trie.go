// Package operators holds the configuration that parameterizes the three
// engine stages: the operator set (as a prefix trie for the lexer),
// character classification tables, precedence levels, and the operator
// function tables used by the evaluator.
package operators

// Trie is a value-storing prefix tree over operator strings, suitable for
// lexing variable-width operators. Walking the trie from a stream position
// and remembering the last terminal node found yields the longest operator
// starting there.
//
// A Trie is immutable after construction and safe for concurrent reads.
type Trie struct {
	root trieNode
	max  int // length in bytes of the longest operator
}

type trieNode struct {
	children map[byte]*trieNode
	value    string // full operator string matched along this path
	terminal bool
}

// NewTrie builds a prefix trie over the given operator strings. Empty
// strings are ignored.
func NewTrie(operators []string) *Trie {
	t := &Trie{}
	for _, op := range operators {
		if op == "" {
			continue
		}
		cursor := &t.root
		for i := 0; i < len(op); i++ {
			b := op[i]
			if cursor.children == nil {
				cursor.children = make(map[byte]*trieNode)
			}
			child, ok := cursor.children[b]
			if !ok {
				child = &trieNode{}
				cursor.children[b] = child
			}
			cursor = child
		}
		cursor.terminal = true
		cursor.value = op
		if len(op) > t.max {
			t.max = len(op)
		}
	}
	return t
}

// Match finds the longest configured operator that prefixes s. It returns
// the operator string and true, or "" and false when no operator starts at
// this position.
func (t *Trie) Match(s string) (string, bool) {
	cursor := &t.root
	best := ""
	found := false
	for i := 0; i < len(s) && i < t.max; i++ {
		child, ok := cursor.children[s[i]]
		if !ok {
			break
		}
		cursor = child
		if cursor.terminal {
			best = cursor.value
			found = true
		}
	}
	return best, found
}

// MaxLen returns the byte length of the longest configured operator. The
// lexer's trie walk at any position is bounded by this value.
func (t *Trie) MaxLen() int {
	return t.max
}
