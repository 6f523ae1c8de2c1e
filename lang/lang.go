// Package lang declares the grammar of the mini imperative language. The
// grammar is supplied programmatically; there is no surface syntax for
// grammar files.
package lang

import "minic/grammar"

// Terminal names used by the grammar. The driver's token mapping must
// produce exactly these strings.
const (
	TermIdentifier = "IDENTIFIER"
	TermNumber     = "NUMBER"
	TermSemicolon  = "SEMICOLON"
	TermAssignment = "ASSIGNMENT"
	TermIf         = "IF"
	TermElse       = "ELSE"
	TermWhile      = "WHILE"
	TermLeftParen  = "LEFT_PAREN"
	TermRightParen = "RIGHT_PAREN"
	TermLeftBrace  = "LEFT_BRACE"
	TermRightBrace = "RIGHT_BRACE"
)

// NewGrammar builds the language's grammar. Production 0 is the augmented
// start production; ids below match the ACTION/GOTO dump, so renumbering is
// an observable change.
func NewGrammar() (*grammar.Grammar, error) {
	prods := []*grammar.Production{
		{ID: 0, LHS: grammar.SymbolAugStart, RHS: []string{"Program"}},

		{ID: 1, LHS: "Program", RHS: []string{"Statements"}},
		{ID: 2, LHS: "Statements", RHS: []string{"Statement", "Statements"}},
		{ID: 3, LHS: "Statements", RHS: []string{grammar.SymbolEpsilon}},

		{ID: 4, LHS: "Statement", RHS: []string{"DeclStmt"}},
		{ID: 5, LHS: "Statement", RHS: []string{"AssignStmt"}},
		{ID: 6, LHS: "Statement", RHS: []string{"IfStmt"}},
		{ID: 7, LHS: "Statement", RHS: []string{"WhileStmt"}},
		{ID: 8, LHS: "Statement", RHS: []string{"Compute"}},

		{ID: 9, LHS: "DeclStmt", RHS: []string{"Type", TermIdentifier, TermSemicolon}},

		{ID: 10, LHS: "AssignStmt", RHS: []string{TermIdentifier, TermAssignment, TermNumber, TermSemicolon}},
		{ID: 11, LHS: "Compute", RHS: []string{TermIdentifier, TermAssignment, "Expr", TermSemicolon}},

		{ID: 12, LHS: "IfStmt", RHS: []string{TermIf, TermLeftParen, "Expr", TermRightParen, TermLeftBrace, "Statements", TermRightBrace, "ElsePart"}},
		{ID: 13, LHS: "ElsePart", RHS: []string{TermElse, TermLeftBrace, "Statements", TermRightBrace}},
		{ID: 14, LHS: "ElsePart", RHS: []string{grammar.SymbolEpsilon}},

		{ID: 15, LHS: "WhileStmt", RHS: []string{TermWhile, TermLeftParen, "Expr", TermRightParen, TermLeftBrace, "Statements", TermRightBrace}},

		{ID: 16, LHS: "Expr", RHS: []string{TermIdentifier, "OPERATOR", TermNumber}},

		{ID: 17, LHS: "OPERATOR", RHS: []string{"PLUS"}},
		{ID: 18, LHS: "OPERATOR", RHS: []string{"MINUS"}},
		{ID: 19, LHS: "OPERATOR", RHS: []string{"MUL"}},
		{ID: 20, LHS: "OPERATOR", RHS: []string{"DIV"}},
		{ID: 21, LHS: "OPERATOR", RHS: []string{"LT"}},
		{ID: 22, LHS: "OPERATOR", RHS: []string{"GT"}},
		{ID: 23, LHS: "OPERATOR", RHS: []string{"LEQ"}},
		{ID: 24, LHS: "OPERATOR", RHS: []string{"GEQ"}},
		{ID: 25, LHS: "OPERATOR", RHS: []string{"EQ"}},
		{ID: 26, LHS: "OPERATOR", RHS: []string{"NEQ"}},

		{ID: 27, LHS: "Type", RHS: []string{"int"}},
		{ID: 28, LHS: "Type", RHS: []string{"float"}},
		{ID: 29, LHS: "Type", RHS: []string{"bool"}},
	}

	terms := []string{
		TermIdentifier, TermNumber, TermSemicolon, TermAssignment,
		TermIf, TermElse, TermWhile,
		TermLeftParen, TermRightParen, TermLeftBrace, TermRightBrace,
		"PLUS", "MINUS", "MUL", "DIV",
		"LT", "GT", "LEQ", "GEQ", "EQ", "NEQ",
		"int", "float", "bool",
	}

	nonTerms := []string{
		"Program", "Statements", "Statement",
		"DeclStmt", "AssignStmt", "Compute",
		"IfStmt", "ElsePart", "WhileStmt",
		"Expr", "OPERATOR", "Type",
	}

	return grammar.NewGrammar(prods, terms, nonTerms, "Program")
}
