package grammar

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// SymbolEpsilon may appear as the sole right-hand-side symbol of a
	// production. Such productions are normalized to an empty RHS.
	SymbolEpsilon = "ε"

	// SymbolEOF is the end-of-input terminal. It is reserved: it may key the
	// ACTION table but never appears on a right-hand side.
	SymbolEOF = "$"

	// SymbolAugStart is the left-hand side of the augmented start production.
	SymbolAugStart = "S'"
)

type Production struct {
	ID  int
	LHS string
	RHS []string
}

func (p *Production) isEmpty() bool {
	return len(p.RHS) == 0
}

func (p *Production) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v →", p.LHS)
	if p.isEmpty() {
		fmt.Fprintf(&b, " %v", SymbolEpsilon)
		return b.String()
	}
	for _, sym := range p.RHS {
		fmt.Fprintf(&b, " %v", sym)
	}
	return b.String()
}

// Grammar is an immutable context-free grammar. All structural validation
// happens in NewGrammar; the analysis and table-construction passes assume a
// well-formed grammar and have no failure modes of their own.
type Grammar struct {
	prods     []*Production
	lhs2Prods map[string][]*Production
	terms     map[string]struct{}
	nonTerms  map[string]struct{}
	start     string
}

func NewGrammar(prods []*Production, terms []string, nonTerms []string, start string) (*Grammar, error) {
	g := &Grammar{
		lhs2Prods: map[string][]*Production{},
		terms:     map[string]struct{}{},
		nonTerms:  map[string]struct{}{},
		start:     start,
	}

	for _, t := range terms {
		if t == SymbolEpsilon || t == SymbolAugStart {
			return nil, fmt.Errorf("%v cannot be declared as a terminal symbol", t)
		}
		g.terms[t] = struct{}{}
	}
	g.terms[SymbolEOF] = struct{}{}
	for _, nt := range nonTerms {
		if nt == SymbolEpsilon || nt == SymbolEOF {
			return nil, fmt.Errorf("%v cannot be declared as a non-terminal symbol", nt)
		}
		if _, ok := g.terms[nt]; ok {
			return nil, fmt.Errorf("%v is declared as both a terminal and a non-terminal", nt)
		}
		g.nonTerms[nt] = struct{}{}
	}
	g.nonTerms[SymbolAugStart] = struct{}{}

	if _, ok := g.nonTerms[start]; !ok {
		return nil, fmt.Errorf("the start symbol %v is not a declared non-terminal", start)
	}

	if len(prods) == 0 {
		return nil, fmt.Errorf("a grammar needs at least the augmented start production")
	}
	for i, prod := range prods {
		if prod.ID != i {
			return nil, fmt.Errorf("production ids must be dense; production #%v has id %v", i, prod.ID)
		}
		if _, ok := g.nonTerms[prod.LHS]; !ok {
			return nil, fmt.Errorf("the LHS of production %v (%v) is not a non-terminal", prod.ID, prod)
		}

		rhs, err := normalizeRHS(prod)
		if err != nil {
			return nil, err
		}
		for _, sym := range rhs {
			if sym == SymbolEOF || sym == SymbolAugStart {
				return nil, fmt.Errorf("production %v (%v) uses the reserved symbol %v", prod.ID, prod, sym)
			}
			_, isTerm := g.terms[sym]
			_, isNonTerm := g.nonTerms[sym]
			if !isTerm && !isNonTerm {
				return nil, fmt.Errorf("production %v (%v) uses the undeclared symbol %v", prod.ID, prod, sym)
			}
		}

		p := &Production{
			ID:  prod.ID,
			LHS: prod.LHS,
			RHS: rhs,
		}
		g.prods = append(g.prods, p)
		g.lhs2Prods[p.LHS] = append(g.lhs2Prods[p.LHS], p)
	}

	aug := g.prods[0]
	if aug.LHS != SymbolAugStart {
		return nil, fmt.Errorf("production 0 must be the augmented start production %v → %v; got %v", SymbolAugStart, start, aug)
	}
	if len(aug.RHS) != 1 || aug.RHS[0] != start {
		return nil, fmt.Errorf("the RHS of the augmented start production must be exactly [%v]; got %v", start, aug)
	}
	if len(g.lhs2Prods[SymbolAugStart]) != 1 {
		return nil, fmt.Errorf("%v must have exactly one production", SymbolAugStart)
	}

	return g, nil
}

func normalizeRHS(prod *Production) ([]string, error) {
	for i, sym := range prod.RHS {
		if sym != SymbolEpsilon {
			continue
		}
		if i != 0 || len(prod.RHS) != 1 {
			return nil, fmt.Errorf("production %v (%v) may use %v only as its sole RHS symbol", prod.ID, prod, SymbolEpsilon)
		}
		return nil, nil
	}
	rhs := make([]string, len(prod.RHS))
	copy(rhs, prod.RHS)
	return rhs, nil
}

func (g *Grammar) Productions() []*Production {
	return g.prods
}

func (g *Grammar) Production(id int) (*Production, bool) {
	if id < 0 || id >= len(g.prods) {
		return nil, false
	}
	return g.prods[id], true
}

func (g *Grammar) ProductionsByLHS(lhs string) []*Production {
	return g.lhs2Prods[lhs]
}

func (g *Grammar) IsTerminal(sym string) bool {
	_, ok := g.terms[sym]
	return ok
}

func (g *Grammar) IsNonTerminal(sym string) bool {
	_, ok := g.nonTerms[sym]
	return ok
}

func (g *Grammar) StartSymbol() string {
	return g.start
}

// TerminalSymbols returns the declared terminals plus SymbolEOF in sorted
// order.
func (g *Grammar) TerminalSymbols() []string {
	return sortedSymbols(g.terms)
}

// NonTerminalSymbols returns the declared non-terminals plus SymbolAugStart
// in sorted order.
func (g *Grammar) NonTerminalSymbols() []string {
	return sortedSymbols(g.nonTerms)
}

func sortedSymbols(set map[string]struct{}) []string {
	syms := make([]string, 0, len(set))
	for sym := range set {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return syms
}
