// Package scale models the 24 key identities of the Camelot wheel.
//
// A Scale is a pair (Index, Kind): Index is a rotational position in
// [0, Size) and Kind is Minor ("A") or Major ("B"). Humans write scales
// with a 1-based index, so Scale{Index: 11, Kind: Minor} prints as "12A".
//
// Scales are immutable comparable values; Flip and Shift return new
// values and never mutate their input.
package scale

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Size is the number of positions on the wheel.
const Size = 12

// Sentinel errors returned by Parse.
var (
	// ErrBadNotation indicates text that is not "<index><A|B>".
	ErrBadNotation = errors.New("scale: bad notation")

	// ErrIndexOutOfRange indicates a 1-based index outside [1, Size].
	ErrIndexOutOfRange = errors.New("scale: index out of range")
)

// Kind is the category of a scale.
type Kind uint8

const (
	// Minor is written "A".
	Minor Kind = iota
	// Major is written "B".
	Major
)

// Flip returns the other kind.
func (k Kind) Flip() Kind {
	if k == Minor {
		return Major
	}

	return Minor
}

// Valid reports whether k is Minor or Major.
func (k Kind) Valid() bool { return k == Minor || k == Major }

// String returns "A" for Minor and "B" for Major.
func (k Kind) String() string {
	switch k {
	case Minor:
		return "A"
	case Major:
		return "B"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Scale identifies one point on the wheel.
type Scale struct {
	Index int
	Kind  Kind
}

// New returns the scale at the given 0-based index, wrapped onto the wheel.
func New(index int, kind Kind) Scale {
	return Scale{Index: Mod(index, Size), Kind: kind}
}

// Mod returns the normalized nonnegative remainder ((n mod m) + m) mod m.
func Mod(n, m int) int {
	return ((n % m) + m) % m
}

// Flip toggles the kind and keeps the index. Flip(Flip(s)) == s.
func Flip(s Scale) Scale {
	return Scale{Index: s.Index, Kind: s.Kind.Flip()}
}

// Shift advances the index by amount modulo Size and keeps the kind.
func Shift(s Scale, amount int) Scale {
	return Scale{Index: Mod(s.Index+amount, Size), Kind: s.Kind}
}

// Valid reports whether s is one of the enumerated scales.
func (s Scale) Valid() bool {
	return s.Index >= 0 && s.Index < Size && s.Kind.Valid()
}

// String renders the 1-based wheel notation, e.g. "12A".
func (s Scale) String() string {
	return strconv.Itoa(s.Index+1) + s.Kind.String()
}

// All returns the full state space ordered 1A, 1B, 2A, 2B, ..., 12B.
func All() []Scale {
	out := make([]Scale, 0, 2*Size)
	for i := 0; i < Size; i++ {
		out = append(out, Scale{Index: i, Kind: Minor}, Scale{Index: i, Kind: Major})
	}

	return out
}

// Parse reads wheel notation such as "12A" or "1b".
func Parse(text string) (Scale, error) {
	t := strings.TrimSpace(text)
	if len(t) < 2 {
		return Scale{}, fmt.Errorf("%w: %q", ErrBadNotation, text)
	}

	var kind Kind
	switch t[len(t)-1] {
	case 'A', 'a':
		kind = Minor
	case 'B', 'b':
		kind = Major
	default:
		return Scale{}, fmt.Errorf("%w: %q", ErrBadNotation, text)
	}

	n, err := strconv.Atoi(t[:len(t)-1])
	if err != nil {
		return Scale{}, fmt.Errorf("%w: %q", ErrBadNotation, text)
	}
	if n < 1 || n > Size {
		return Scale{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, n)
	}

	return Scale{Index: n - 1, Kind: kind}, nil
}
