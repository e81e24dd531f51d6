package transition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/camelot/scale"
	"github.com/katalvlaran/camelot/transition"
)

func sc(t *testing.T, text string) scale.Scale {
	t.Helper()
	s, err := scale.Parse(text)
	require.NoError(t, err)

	return s
}

func TestCatalog_Shape(t *testing.T) {
	cat := transition.Catalog()
	require.Len(t, cat, 10)
	require.NoError(t, transition.Validate(cat))

	names := make([]string, 0, len(cat))
	for _, tr := range cat {
		names = append(names, tr.String())
	}
	assert.Equal(t, []string{
		"Vertical", "Diagonal", "MajorToMinor", "FlatToMinor",
		"ChangeIndex(+1)", "ChangeIndex(+2)", "ChangeIndex(+7)",
		"ChangeIndex(-1)", "ChangeIndex(-2)", "ChangeIndex(-7)",
	}, names)
}

// Every rule must be total over the state space and stay inside it.
func TestApply_Closure(t *testing.T) {
	valid := make(map[scale.Scale]bool)
	for _, s := range scale.All() {
		valid[s] = true
	}
	for _, s := range scale.All() {
		for _, tr := range transition.Catalog() {
			got, err := transition.Apply(s, tr)
			require.NoError(t, err, "%s on %s", tr, s)
			assert.True(t, valid[got], "%s on %s left the wheel: %+v", tr, s, got)
		}
	}
}

func TestApply_Rules(t *testing.T) {
	cases := []struct {
		from string
		tr   transition.Transition
		want string
	}{
		{"8A", transition.Of(transition.Vertical), "8B"},
		{"8B", transition.Of(transition.Vertical), "8A"},
		{"8B", transition.Of(transition.Diagonal), "9A"},
		{"8A", transition.Of(transition.Diagonal), "7B"},
		{"1A", transition.Of(transition.Diagonal), "12B"},
		{"12B", transition.Of(transition.Diagonal), "1A"},
		{"8A", transition.Of(transition.MajorToMinor), "11B"},
		{"8B", transition.Of(transition.MajorToMinor), "5A"},
		{"8A", transition.Of(transition.FlatToMinor), "12B"},
		{"8B", transition.Of(transition.FlatToMinor), "4A"},
		{"2B", transition.Of(transition.FlatToMinor), "10A"},
		{"12A", transition.Shift(1), "1A"},
		{"1A", transition.Shift(-2), "11A"},
		{"5B", transition.Shift(7), "12B"},
		{"5B", transition.Shift(-7), "10B"},
	}
	for _, c := range cases {
		got, err := transition.Apply(sc(t, c.from), c.tr)
		require.NoError(t, err)
		assert.Equal(t, c.want, got.String(), "%s on %s", c.tr, c.from)
	}
}

func TestApply_Undefined(t *testing.T) {
	_, err := transition.Apply(scale.Scale{Index: 0, Kind: scale.Kind(9)}, transition.Of(transition.Diagonal))
	require.ErrorIs(t, err, transition.ErrUndefinedTransition)

	_, err = transition.Apply(sc(t, "1A"), transition.Transition{Op: transition.Op(42)})
	require.ErrorIs(t, err, transition.ErrUndefinedTransition)
}

func TestParse_RoundTrip(t *testing.T) {
	for _, tr := range transition.Catalog() {
		got, err := transition.Parse(tr.String())
		require.NoError(t, err)
		assert.Equal(t, tr, got)
	}
	for _, bad := range []string{"", "Sideways", "ChangeIndex(", "ChangeIndex(x)", "ChangeIndex"} {
		_, err := transition.Parse(bad)
		assert.ErrorIs(t, err, transition.ErrUnknownTransition, bad)
	}
}

func TestValidate(t *testing.T) {
	require.ErrorIs(t, transition.Validate(nil), transition.ErrEmptyCatalog)

	dup := []transition.Transition{transition.Shift(1), transition.Shift(1)}
	require.ErrorIs(t, transition.Validate(dup), transition.ErrDuplicateTransition)

	noop := []transition.Transition{transition.Shift(12)}
	require.ErrorIs(t, transition.Validate(noop), transition.ErrUndefinedTransition)

	bogus := []transition.Transition{{Op: transition.Op(42)}}
	require.ErrorIs(t, transition.Validate(bogus), transition.ErrUnknownTransition)

	assert.Equal(t, "Op(42)", transition.Op(42).String())
}
