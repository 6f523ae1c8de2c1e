package grammar

type firstEntry struct {
	symbols map[string]struct{}
	empty   bool
}

func newFirstEntry() *firstEntry {
	return &firstEntry{
		symbols: map[string]struct{}{},
	}
}

func (e *firstEntry) add(sym string) bool {
	if _, ok := e.symbols[sym]; ok {
		return false
	}
	e.symbols[sym] = struct{}{}
	return true
}

func (e *firstEntry) addEmpty() bool {
	if e.empty {
		return false
	}
	e.empty = true
	return true
}

func (e *firstEntry) mergeExceptEmpty(target *firstEntry) bool {
	if target == nil {
		return false
	}
	changed := false
	for sym := range target.symbols {
		if e.add(sym) {
			changed = true
		}
	}
	return changed
}

type firstSet struct {
	set map[string]*firstEntry
}

// entryBySymbol resolves FIRST(sym) for any grammar symbol: terminals map to
// themselves, ε maps to the empty-only entry, and non-terminals map to their
// computed entry.
func (fst *firstSet) entryBySymbol(g *Grammar, sym string) *firstEntry {
	if sym == SymbolEpsilon {
		e := newFirstEntry()
		e.addEmpty()
		return e
	}
	if g.IsTerminal(sym) {
		e := newFirstEntry()
		e.add(sym)
		return e
	}
	return fst.set[sym]
}

// entryOfString computes FIRST(α) with the all-nullable-prefix rule. The
// result is a fresh entry; the per-symbol entries are not mutated.
func (fst *firstSet) entryOfString(g *Grammar, syms []string) *firstEntry {
	entry := newFirstEntry()
	for _, sym := range syms {
		e := fst.entryBySymbol(g, sym)
		entry.mergeExceptEmpty(e)
		if e == nil || !e.empty {
			return entry
		}
	}
	entry.addEmpty()
	return entry
}

func genFirstSet(g *Grammar) *firstSet {
	fst := &firstSet{
		set: map[string]*firstEntry{},
	}
	for _, prod := range g.Productions() {
		if _, ok := fst.set[prod.LHS]; ok {
			continue
		}
		fst.set[prod.LHS] = newFirstEntry()
	}

	for {
		more := false
		for _, prod := range g.Productions() {
			acc := fst.set[prod.LHS]
			if genProdFirstEntry(g, fst, acc, prod) {
				more = true
			}
		}
		if !more {
			break
		}
	}

	return fst
}

func genProdFirstEntry(g *Grammar, fst *firstSet, acc *firstEntry, prod *Production) bool {
	if prod.isEmpty() {
		return acc.addEmpty()
	}

	changed := false
	for _, sym := range prod.RHS {
		if g.IsTerminal(sym) {
			if acc.add(sym) {
				changed = true
			}
			return changed
		}

		e := fst.set[sym]
		if acc.mergeExceptEmpty(e) {
			changed = true
		}
		if e == nil || !e.empty {
			return changed
		}
	}
	if acc.addEmpty() {
		changed = true
	}
	return changed
}
