package grammar

import "testing"

// exprGrammar is the classic arithmetic-expression grammar. Most tests in
// this package use it because its FIRST/FOLLOW sets and canonical collection
// are small enough to verify by hand.
//
//	0  S' → E
//	1  E  → E + T
//	2  E  → T
//	3  T  → T * F
//	4  T  → F
//	5  F  → ( E )
//	6  F  → id
func exprGrammar(t *testing.T) *Grammar {
	t.Helper()
	g, err := NewGrammar(
		[]*Production{
			{ID: 0, LHS: SymbolAugStart, RHS: []string{"E"}},
			{ID: 1, LHS: "E", RHS: []string{"E", "+", "T"}},
			{ID: 2, LHS: "E", RHS: []string{"T"}},
			{ID: 3, LHS: "T", RHS: []string{"T", "*", "F"}},
			{ID: 4, LHS: "T", RHS: []string{"F"}},
			{ID: 5, LHS: "F", RHS: []string{"(", "E", ")"}},
			{ID: 6, LHS: "F", RHS: []string{"id"}},
		},
		[]string{"+", "*", "(", ")", "id"},
		[]string{"E", "T", "F"},
		"E",
	)
	if err != nil {
		t.Fatalf("failed to build the expression grammar: %v", err)
	}
	return g
}

// nullableGrammar exercises ε-productions and nullable prefixes.
//
//	0  S' → S
//	1  S  → A B c
//	2  A  → a
//	3  A  → ε
//	4  B  → b
//	5  B  → ε
func nullableGrammar(t *testing.T) *Grammar {
	t.Helper()
	g, err := NewGrammar(
		[]*Production{
			{ID: 0, LHS: SymbolAugStart, RHS: []string{"S"}},
			{ID: 1, LHS: "S", RHS: []string{"A", "B", "c"}},
			{ID: 2, LHS: "A", RHS: []string{"a"}},
			{ID: 3, LHS: "A", RHS: []string{SymbolEpsilon}},
			{ID: 4, LHS: "B", RHS: []string{"b"}},
			{ID: 5, LHS: "B", RHS: []string{SymbolEpsilon}},
		},
		[]string{"a", "b", "c"},
		[]string{"S", "A", "B"},
		"S",
	)
	if err != nil {
		t.Fatalf("failed to build the nullable grammar: %v", err)
	}
	return g
}

func equalSymbols(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
