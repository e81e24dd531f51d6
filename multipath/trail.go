package multipath

// trail is an immutable, append-only history. Pushing returns a new head
// that shares the receiver as its tail; a nil *trail is the empty history.
type trail struct {
	value string
	prev  *trail
	depth int
}

// push returns a history that ends with v.
func (t *trail) push(v string) *trail {
	return &trail{value: v, prev: t, depth: t.len() + 1}
}

// len returns the number of entries.
func (t *trail) len() int {
	if t == nil {
		return 0
	}

	return t.depth
}

// slice materializes the history oldest-first.
func (t *trail) slice() []string {
	out := make([]string, t.len())
	for cur, i := t, t.len()-1; cur != nil; cur, i = cur.prev, i-1 {
		out[i] = cur.value
	}

	return out
}
