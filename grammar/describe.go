package grammar

import (
	"bufio"
	"fmt"
	"io"
)

// Describe writes a tab-separated dump of the ACTION and GOTO tables. One row
// per state; ACTION columns (terminals, sorted) come first, then a `|`
// separator, then the GOTO columns (non-terminals, sorted). Shift entries
// print as sN, reduces as rN, accept as acc; undefined entries stay blank.
// The dump is a debug aid and nothing in the parsing path reads it back.
func (t *ParsingTable) Describe(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "State\t")
	for _, sym := range t.terms {
		fmt.Fprintf(bw, "%v\t", sym)
	}
	fmt.Fprintf(bw, "|\t")
	for _, sym := range t.nonTerms {
		fmt.Fprintf(bw, "%v\t", sym)
	}
	fmt.Fprintf(bw, "\n")

	for state := 0; state < t.StateCount(); state++ {
		fmt.Fprintf(bw, "State %v\t", state)
		for _, sym := range t.terms {
			if act, ok := t.Action(state, sym); ok {
				switch act.Type {
				case ActionShift:
					fmt.Fprintf(bw, "s%v", act.State)
				case ActionReduce:
					fmt.Fprintf(bw, "r%v", act.Prod)
				case ActionAccept:
					fmt.Fprintf(bw, "acc")
				}
			}
			fmt.Fprintf(bw, "\t")
		}
		fmt.Fprintf(bw, "|\t")
		for _, sym := range t.nonTerms {
			if next, ok := t.GoTo(state, sym); ok {
				fmt.Fprintf(bw, "%v", next)
			}
			fmt.Fprintf(bw, "\t")
		}
		fmt.Fprintf(bw, "\n")
	}

	return bw.Flush()
}
