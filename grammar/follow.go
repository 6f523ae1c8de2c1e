package grammar

type followEntry struct {
	symbols map[string]struct{}
	eof     bool
}

func newFollowEntry() *followEntry {
	return &followEntry{
		symbols: map[string]struct{}{},
	}
}

func (e *followEntry) add(sym string) bool {
	if _, ok := e.symbols[sym]; ok {
		return false
	}
	e.symbols[sym] = struct{}{}
	return true
}

func (e *followEntry) addEOF() bool {
	if e.eof {
		return false
	}
	e.eof = true
	return true
}

func (e *followEntry) merge(fst *firstEntry, flw *followEntry) bool {
	changed := false
	if fst != nil {
		for sym := range fst.symbols {
			if e.add(sym) {
				changed = true
			}
		}
	}
	if flw != nil {
		for sym := range flw.symbols {
			if e.add(sym) {
				changed = true
			}
		}
		if flw.eof && e.addEOF() {
			changed = true
		}
	}
	return changed
}

func (e *followEntry) has(sym string) bool {
	if sym == SymbolEOF {
		return e.eof
	}
	_, ok := e.symbols[sym]
	return ok
}

type followSet struct {
	set map[string]*followEntry
}

func genFollowSet(g *Grammar, first *firstSet) *followSet {
	flw := &followSet{
		set: map[string]*followEntry{},
	}
	for _, prod := range g.Productions() {
		if _, ok := flw.set[prod.LHS]; ok {
			continue
		}
		flw.set[prod.LHS] = newFollowEntry()
	}
	flw.set[SymbolAugStart].addEOF()

	// The change flag is global: a later production can feed an earlier one
	// within the same pass, so a pass only terminates the loop when nothing
	// at all grew.
	for {
		more := false
		for _, prod := range g.Productions() {
			for i, sym := range prod.RHS {
				e, ok := flw.set[sym]
				if !ok {
					continue
				}
				rest := first.entryOfString(g, prod.RHS[i+1:])
				if e.merge(rest, nil) {
					more = true
				}
				if rest.empty {
					if e.merge(nil, flw.set[prod.LHS]) {
						more = true
					}
				}
			}
		}
		if !more {
			break
		}
	}

	return flw
}
