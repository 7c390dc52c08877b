package operators

// Character classification for the lexer hot path. A single table lookup
// per byte replaces per-character pattern evaluation.

type charClass uint16

const (
	ClassSpace charClass = 1 << iota
	ClassDigit
	ClassHexDigit
	ClassIdentStart
	ClassIdentPart
	ClassParen
	ClassSign
	ClassExponent
)

// classes maps every byte value to its class bitmask.
var classes [256]charClass

func init() {
	for _, b := range []byte(" \t\n\r\v\f") {
		classes[b] |= ClassSpace
	}
	for b := byte('0'); b <= '9'; b++ {
		classes[b] |= ClassDigit | ClassHexDigit | ClassIdentPart
	}
	for b := byte('a'); b <= 'f'; b++ {
		classes[b] |= ClassHexDigit
	}
	for b := byte('A'); b <= 'F'; b++ {
		classes[b] |= ClassHexDigit
	}
	for b := byte('a'); b <= 'z'; b++ {
		classes[b] |= ClassIdentStart | ClassIdentPart
	}
	for b := byte('A'); b <= 'Z'; b++ {
		classes[b] |= ClassIdentStart | ClassIdentPart
	}
	classes['_'] |= ClassIdentStart | ClassIdentPart
	classes['('] |= ClassParen
	classes[')'] |= ClassParen
	classes['+'] |= ClassSign
	classes['-'] |= ClassSign
	classes['e'] |= ClassExponent
	classes['E'] |= ClassExponent
}

// Is reports whether byte b belongs to class c.
func Is(b byte, c charClass) bool {
	return classes[b]&c != 0
}

// IsSpace reports whether b is a whitespace byte.
func IsSpace(b byte) bool { return classes[b]&ClassSpace != 0 }

// IsDigit reports whether b is a decimal digit.
func IsDigit(b byte) bool { return classes[b]&ClassDigit != 0 }

// IsHexDigit reports whether b is a hexadecimal digit.
func IsHexDigit(b byte) bool { return classes[b]&ClassHexDigit != 0 }

// IsIdentStart reports whether b can start an identifier.
func IsIdentStart(b byte) bool { return classes[b]&ClassIdentStart != 0 }

// IsIdentPart reports whether b can continue an identifier.
func IsIdentPart(b byte) bool { return classes[b]&ClassIdentPart != 0 }

// IsParen reports whether b is "(" or ")".
func IsParen(b byte) bool { return classes[b]&ClassParen != 0 }

// IsSign reports whether b is "+" or "-".
func IsSign(b byte) bool { return classes[b]&ClassSign != 0 }

// IsExponent reports whether b is an exponent marker ("e" or "E").
func IsExponent(b byte) bool { return classes[b]&ClassExponent != 0 }
