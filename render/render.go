// Package render turns key wheel routes into display text.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/camelot/keygraph"
)

// Separator joins scales and transitions in a rendered route.
const Separator = " -> "

// Route renders r as its scales interleaved with the transitions taken,
// e.g. "12A -> Vertical -> 12B -> ChangeIndex(+1) -> 1B".
func Route(r keygraph.Route) string {
	var b strings.Builder
	for i, s := range r.Scales {
		if i > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(s.String())
		if i < len(r.Transitions) {
			b.WriteString(Separator)
			b.WriteString(r.Transitions[i].String())
		}
	}

	return b.String()
}

// Table writes one numbered, cost-annotated line per route.
func Table(w io.Writer, routes []keygraph.Route) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "#\tCOST\tROUTE"); err != nil {
		return err
	}
	for i, r := range routes {
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%s\n", i+1, r.Cost, Route(r)); err != nil {
			return err
		}
	}

	return tw.Flush()
}
