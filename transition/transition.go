// Package transition defines the fixed catalog of rules that move between
// scales on the Camelot wheel.
//
// A Transition is a tagged variant: Op selects the rule and Amount carries
// the index offset of ChangeIndex. Apply is the single dispatch point that
// interprets a Transition against a source scale.
//
// Rules (source kind A = minor, B = major):
//
//	Vertical         flip kind, keep index
//	Diagonal         flip kind; +1 from B, -1 from A
//	MajorToMinor     flip kind; +3 from A, -3 from B
//	FlatToMinor      flip kind; +4 from A, -4 from B
//	ChangeIndex(k)   keep kind, shift index by k
package transition

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/camelot/scale"
)

// Sentinel errors for catalog construction and lookup.
var (
	// ErrUndefinedTransition indicates a rule that has no result for the given source.
	ErrUndefinedTransition = errors.New("transition: undefined for source scale")

	// ErrUnknownTransition indicates a name that matches no rule.
	ErrUnknownTransition = errors.New("transition: unknown transition")

	// ErrEmptyCatalog indicates a catalog without any rule.
	ErrEmptyCatalog = errors.New("transition: catalog is empty")

	// ErrDuplicateTransition indicates the same rule listed twice.
	ErrDuplicateTransition = errors.New("transition: duplicate transition")
)

// Op selects a rule.
type Op uint8

const (
	// Vertical swaps kind and keeps the index.
	Vertical Op = iota
	// Diagonal swaps kind and steps one position along the wheel.
	Diagonal
	// MajorToMinor swaps kind with a three-position offset.
	MajorToMinor
	// FlatToMinor swaps kind with a four-position offset.
	FlatToMinor
	// ChangeIndex keeps the kind and shifts the index by Amount.
	ChangeIndex
)

var opNames = [...]string{
	Vertical:     "Vertical",
	Diagonal:     "Diagonal",
	MajorToMinor: "MajorToMinor",
	FlatToMinor:  "FlatToMinor",
	ChangeIndex:  "ChangeIndex",
}

// String returns the rule name.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}

	return "Op(" + strconv.Itoa(int(o)) + ")"
}

// Transition is one catalog entry. Amount is meaningful only for ChangeIndex.
type Transition struct {
	Op     Op
	Amount int
}

// Of returns a parameterless transition.
func Of(op Op) Transition { return Transition{Op: op} }

// Shift returns ChangeIndex(amount).
func Shift(amount int) Transition { return Transition{Op: ChangeIndex, Amount: amount} }

// Catalog returns the ten rules every scale supports, in their canonical order.
func Catalog() []Transition {
	return []Transition{
		Of(Vertical),
		Of(Diagonal),
		Of(MajorToMinor),
		Of(FlatToMinor),
		Shift(1),
		Shift(2),
		Shift(7),
		Shift(-1),
		Shift(-2),
		Shift(-7),
	}
}

// String renders the rule, e.g. "Diagonal" or "ChangeIndex(-7)".
func (t Transition) String() string {
	if t.Op == ChangeIndex {
		return fmt.Sprintf("ChangeIndex(%+d)", t.Amount)
	}

	return t.Op.String()
}

// Parse is the inverse of String.
func Parse(name string) (Transition, error) {
	n := strings.TrimSpace(name)
	for op := Vertical; op < ChangeIndex; op++ {
		if n == op.String() {
			return Of(op), nil
		}
	}

	inner, ok := strings.CutPrefix(n, "ChangeIndex(")
	if ok {
		inner, ok = strings.CutSuffix(inner, ")")
	}
	if !ok {
		return Transition{}, fmt.Errorf("%w: %q", ErrUnknownTransition, name)
	}
	amount, err := strconv.Atoi(inner)
	if err != nil {
		return Transition{}, fmt.Errorf("%w: %q", ErrUnknownTransition, name)
	}

	return Shift(amount), nil
}

// Apply returns the scale reached from s by t.
//
// Kind-dependent rules branch on s.Kind. A source scale with an invalid
// kind, or an unknown Op, yields ErrUndefinedTransition; callers building
// a graph must treat that as a construction defect.
func Apply(s scale.Scale, t Transition) (scale.Scale, error) {
	if !s.Kind.Valid() {
		return scale.Scale{}, fmt.Errorf("%w: %s on %s", ErrUndefinedTransition, t, s)
	}

	switch t.Op {
	case Vertical:
		return scale.Flip(s), nil
	case ChangeIndex:
		return scale.Shift(s, t.Amount), nil
	case Diagonal:
		return scale.Shift(scale.Flip(s), byKind(s.Kind, -1, 1)), nil
	case MajorToMinor:
		return scale.Shift(scale.Flip(s), byKind(s.Kind, 3, -3)), nil
	case FlatToMinor:
		return scale.Shift(scale.Flip(s), byKind(s.Kind, 4, -4)), nil
	default:
		return scale.Scale{}, fmt.Errorf("%w: %s on %s", ErrUndefinedTransition, t, s)
	}
}

// byKind picks the offset for a minor or a major source.
func byKind(k scale.Kind, minor, major int) int {
	if k == scale.Minor {
		return minor
	}

	return major
}

// Validate checks that catalog is non-empty, free of duplicates and of
// no-op shifts.
func Validate(catalog []Transition) error {
	if len(catalog) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[Transition]struct{}, len(catalog))
	for _, t := range catalog {
		if t.Op > ChangeIndex {
			return fmt.Errorf("%w: %s", ErrUnknownTransition, t)
		}
		if t.Op != ChangeIndex && t.Amount != 0 {
			return fmt.Errorf("%w: %s carries amount %d", ErrUnknownTransition, t, t.Amount)
		}
		if t.Op == ChangeIndex && scale.Mod(t.Amount, scale.Size) == 0 {
			return fmt.Errorf("%w: %s does not move", ErrUndefinedTransition, t)
		}
		if _, dup := seen[t]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateTransition, t)
		}
		seen[t] = struct{}{}
	}

	return nil
}
