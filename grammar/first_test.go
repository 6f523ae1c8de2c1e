package grammar

import "testing"

func TestFirst(t *testing.T) {
	tests := []struct {
		caption string
		g       func(t *testing.T) *Grammar
		sym     string
		symbols []string
		empty   bool
	}{
		{
			caption: "FIRST of a terminal is the terminal itself",
			g:       exprGrammar,
			sym:     "id",
			symbols: []string{"id"},
		},
		{
			caption: "FIRST of ε contains only ε",
			g:       exprGrammar,
			sym:     SymbolEpsilon,
			symbols: []string{},
			empty:   true,
		},
		{
			caption: "FIRST propagates through unit productions",
			g:       exprGrammar,
			sym:     "E",
			symbols: []string{"(", "id"},
		},
		{
			caption: "FIRST of the augmented start equals FIRST of the start symbol",
			g:       exprGrammar,
			sym:     SymbolAugStart,
			symbols: []string{"(", "id"},
		},
		{
			caption: "a nullable non-terminal has ε in FIRST",
			g:       nullableGrammar,
			sym:     "A",
			symbols: []string{"a"},
			empty:   true,
		},
		{
			caption: "a nullable prefix exposes the FIRST of later symbols",
			g:       nullableGrammar,
			sym:     "S",
			symbols: []string{"a", "b", "c"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			a := NewAnalysis(tt.g(t))
			symbols, empty := a.First(tt.sym)
			if !equalSymbols(symbols, tt.symbols) {
				t.Fatalf("unexpected FIRST(%v): want %v, got %v", tt.sym, tt.symbols, symbols)
			}
			if empty != tt.empty {
				t.Fatalf("unexpected nullability of %v: want %v, got %v", tt.sym, tt.empty, empty)
			}
		})
	}
}

func TestFirstOfString(t *testing.T) {
	tests := []struct {
		caption string
		g       func(t *testing.T) *Grammar
		syms    []string
		symbols []string
		empty   bool
	}{
		{
			caption: "a leading terminal ends the scan",
			g:       exprGrammar,
			syms:    []string{"+", "T"},
			symbols: []string{"+"},
		},
		{
			caption: "an empty string yields ε",
			g:       exprGrammar,
			syms:    nil,
			symbols: []string{},
			empty:   true,
		},
		{
			caption: "a nullable prefix accumulates later symbols",
			g:       nullableGrammar,
			syms:    []string{"A", "B"},
			symbols: []string{"a", "b"},
			empty:   true,
		},
		{
			caption: "a non-nullable tail blocks ε",
			g:       nullableGrammar,
			syms:    []string{"A", "B", "c"},
			symbols: []string{"a", "b", "c"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			a := NewAnalysis(tt.g(t))
			symbols, empty := a.FirstOfString(tt.syms)
			if !equalSymbols(symbols, tt.symbols) {
				t.Fatalf("unexpected FIRST(%v): want %v, got %v", tt.syms, tt.symbols, symbols)
			}
			if empty != tt.empty {
				t.Fatalf("unexpected nullability of %v: want %v, got %v", tt.syms, tt.empty, empty)
			}
		})
	}
}
