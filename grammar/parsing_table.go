package grammar

import (
	"fmt"
	"strings"
)

type ActionType int

const (
	ActionShift ActionType = iota
	ActionReduce
	ActionAccept
)

func (t ActionType) String() string {
	switch t {
	case ActionShift:
		return "shift"
	case ActionReduce:
		return "reduce"
	case ActionAccept:
		return "accept"
	}
	return "unknown"
}

// Action is one defined ACTION-table entry. State is meaningful for shifts,
// Prod for reduces. Undefined entries are represented by absence, not by a
// dedicated error variant.
type Action struct {
	Type  ActionType
	State int
	Prod  int
}

func (a Action) String() string {
	switch a.Type {
	case ActionShift:
		return fmt.Sprintf("shift %v", a.State)
	case ActionReduce:
		return fmt.Sprintf("reduce %v", a.Prod)
	}
	return "accept"
}

// ParsingTable holds the ACTION and GOTO tables of an SLR(1) grammar. Once
// generated it is immutable and safe for concurrent readers.
type ParsingTable struct {
	actions  []map[string]Action
	gotos    []map[string]int
	terms    []string
	nonTerms []string
}

// Action looks up ACTION[state, term]. The second return value reports
// whether the entry is defined; an undefined entry is a syntax error at parse
// time.
func (t *ParsingTable) Action(state int, term string) (Action, bool) {
	if state < 0 || state >= len(t.actions) {
		return Action{}, false
	}
	act, ok := t.actions[state][term]
	return act, ok
}

// GoTo looks up GOTO[state, nonTerm].
func (t *ParsingTable) GoTo(state int, nonTerm string) (int, bool) {
	if state < 0 || state >= len(t.gotos) {
		return 0, false
	}
	next, ok := t.gotos[state][nonTerm]
	return next, ok
}

func (t *ParsingTable) StateCount() int {
	return len(t.actions)
}

// InitialState returns the id of the start state. It is always 0; the method
// exists so drivers need not hard-code the convention.
func (t *ParsingTable) InitialState() int {
	return 0
}

type conflict struct {
	state    int
	sym      string
	existing Action
	incoming Action
	items    []string
}

// ConflictError reports every SLR(1) conflict found during table
// construction. Conflicts are grammar bugs: no precedence rules are applied
// and construction aborts.
type ConflictError struct {
	Conflicts []string
}

func (e *ConflictError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "the grammar is not SLR(1); %v conflict(s):", len(e.Conflicts))
	for _, c := range e.Conflicts {
		fmt.Fprintf(&b, "\n  %v", c)
	}
	return b.String()
}

type lrTableBuilder struct {
	g         *Grammar
	automaton *lr0Automaton
	follow    *followSet

	conflicts []*conflict
}

// GenParsingTable runs the full pipeline: FIRST/FOLLOW analysis, canonical
// collection, and ACTION/GOTO assembly. It fails if the grammar has a
// shift/reduce or reduce/reduce conflict.
func GenParsingTable(g *Grammar) (*ParsingTable, error) {
	b := &lrTableBuilder{
		g:         g,
		automaton: genLR0Automaton(g),
		follow:    NewAnalysis(g).follow,
	}
	return b.build()
}

func (b *lrTableBuilder) build() (*ParsingTable, error) {
	var nonTerms []string
	for _, nt := range b.g.NonTerminalSymbols() {
		if nt == SymbolAugStart {
			continue
		}
		nonTerms = append(nonTerms, nt)
	}

	ptab := &ParsingTable{
		actions:  make([]map[string]Action, len(b.automaton.states)),
		gotos:    make([]map[string]int, len(b.automaton.states)),
		terms:    b.g.TerminalSymbols(),
		nonTerms: nonTerms,
	}
	for i := range b.automaton.states {
		ptab.actions[i] = map[string]Action{}
		ptab.gotos[i] = map[string]int{}
	}

	for _, state := range b.automaton.states {
		for _, sym := range nextSymbols(b.g, state.items) {
			next := state.next[sym]
			if b.g.IsTerminal(sym) {
				b.writeAction(ptab, state, sym, Action{Type: ActionShift, State: next})
			} else {
				ptab.gotos[state.num][sym] = next
			}
		}

		for _, it := range state.items.items {
			if !it.reducible(b.g) {
				continue
			}
			if it.accepting(b.g) {
				b.writeAction(ptab, state, SymbolEOF, Action{Type: ActionAccept})
				continue
			}
			prod, _ := b.g.Production(it.prod)
			for _, a := range b.followOf(prod.LHS) {
				b.writeAction(ptab, state, a, Action{Type: ActionReduce, Prod: prod.ID})
			}
		}
	}

	if len(b.conflicts) > 0 {
		err := &ConflictError{}
		for _, c := range b.conflicts {
			err.Conflicts = append(err.Conflicts, b.describeConflict(c))
		}
		return nil, err
	}

	return ptab, nil
}

func (b *lrTableBuilder) followOf(nt string) []string {
	e := b.follow.set[nt]
	if e == nil {
		return nil
	}
	syms := sortedSymbols(e.symbols)
	if e.eof {
		syms = append(syms, SymbolEOF)
	}
	return syms
}

func (b *lrTableBuilder) writeAction(ptab *ParsingTable, state *lrState, sym string, act Action) {
	existing, ok := ptab.actions[state.num][sym]
	if ok {
		if existing == act {
			return
		}
		b.conflicts = append(b.conflicts, &conflict{
			state:    state.num,
			sym:      sym,
			existing: existing,
			incoming: act,
			items:    b.competingItems(state, sym, existing, act),
		})
		return
	}
	ptab.actions[state.num][sym] = act
}

// competingItems renders the items of the state that gave rise to the two
// actions, for the conflict report.
func (b *lrTableBuilder) competingItems(state *lrState, sym string, acts ...Action) []string {
	var descs []string
	for _, act := range acts {
		switch act.Type {
		case ActionShift:
			for _, it := range state.items.items {
				dotted, ok := it.dottedSymbol(b.g)
				if ok && dotted == sym {
					descs = append(descs, it.describe(b.g))
					break
				}
			}
		case ActionReduce:
			for _, it := range state.items.items {
				if it.prod == act.Prod && it.reducible(b.g) {
					descs = append(descs, it.describe(b.g))
					break
				}
			}
		case ActionAccept:
			descs = append(descs, item{prod: 0, dot: 1}.describe(b.g))
		}
	}
	return descs
}

func (b *lrTableBuilder) describeConflict(c *conflict) string {
	kind := "reduce/reduce"
	if c.existing.Type == ActionShift || c.incoming.Type == ActionShift {
		kind = "shift/reduce"
	}
	return fmt.Sprintf("%v conflict in state %v on %v: %v vs %v (items: %v)",
		kind, c.state, c.sym, c.existing, c.incoming, strings.Join(c.items, " / "))
}
