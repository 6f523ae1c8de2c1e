package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minic/lang"
	"minic/lexer"
)

func newTestParser(t *testing.T) (*Parser, *lexer.Lexer) {
	t.Helper()
	g, err := lang.NewGrammar()
	require.NoError(t, err)
	lex, err := lexer.NewLexer()
	require.NoError(t, err)
	p, err := NewParser(g, lex)
	require.NoError(t, err)
	return p, lex
}

// findNode returns the first node with the given symbol in depth-first
// order.
func findNode(n *Node, symbol string) *Node {
	if n == nil {
		return nil
	}
	if n.Symbol == symbol {
		return n
	}
	for _, child := range n.Children {
		if found := findNode(child, symbol); found != nil {
			return found
		}
	}
	return nil
}

func leafSymbols(n *Node) []string {
	var symbols []string
	for _, leaf := range n.Leaves() {
		symbols = append(symbols, leaf.Symbol)
	}
	return symbols
}

func leafValues(n *Node) []string {
	var values []string
	for _, leaf := range n.Leaves() {
		values = append(values, leaf.Value)
	}
	return values
}

func TestParseDeclStmt(t *testing.T) {
	p, _ := newTestParser(t)

	tree, err := p.Parse("int x ;")
	require.NoError(t, err)
	assert.Empty(t, p.SyntaxErrors())
	assert.Equal(t, "Program", tree.Symbol)

	decl := findNode(tree, "DeclStmt")
	require.NotNil(t, decl)
	assert.Equal(t, []string{"int", "IDENTIFIER", "SEMICOLON"}, leafSymbols(decl))
	assert.Equal(t, []string{"int", "x", ";"}, leafValues(decl))
}

func TestParseAssignStmt(t *testing.T) {
	p, _ := newTestParser(t)

	tree, err := p.Parse("x = 10 ;")
	require.NoError(t, err)
	assert.Empty(t, p.SyntaxErrors())

	assign := findNode(tree, "AssignStmt")
	require.NotNil(t, assign)
	assert.Equal(t, []string{"IDENTIFIER", "ASSIGNMENT", "NUMBER", "SEMICOLON"}, leafSymbols(assign))
	assert.Equal(t, []string{"x", "=", "10", ";"}, leafValues(assign))
}

func TestParseIfStmt(t *testing.T) {
	p, _ := newTestParser(t)

	tree, err := p.Parse("if ( x > 5 ) { y = y + 1 ; }")
	require.NoError(t, err)
	assert.Empty(t, p.SyntaxErrors())

	ifStmt := findNode(tree, "IfStmt")
	require.NotNil(t, ifStmt)

	expr := findNode(ifStmt, "Expr")
	require.NotNil(t, expr)
	assert.Equal(t, []string{"IDENTIFIER", "GT", "NUMBER"}, leafSymbols(expr))
	assert.Equal(t, []string{"x", ">", "5"}, leafValues(expr))

	compute := findNode(ifStmt, "Compute")
	require.NotNil(t, compute)
	assert.Equal(t, []string{"y", "=", "y", "+", "1", ";"}, leafValues(compute))

	elsePart := findNode(ifStmt, "ElsePart")
	require.NotNil(t, elsePart)
	assert.Empty(t, elsePart.Children)
}

func TestParseWhileStmt(t *testing.T) {
	p, _ := newTestParser(t)

	tree, err := p.Parse("while ( y < 10 ) { y = y * 2 ; }")
	require.NoError(t, err)
	assert.Empty(t, p.SyntaxErrors())

	whileStmt := findNode(tree, "WhileStmt")
	require.NotNil(t, whileStmt)

	expr := findNode(whileStmt, "Expr")
	require.NotNil(t, expr)
	assert.Equal(t, []string{"IDENTIFIER", "LT", "NUMBER"}, leafSymbols(expr))

	compute := findNode(whileStmt, "Compute")
	require.NotNil(t, compute)
	assert.Equal(t, []string{"y", "=", "y", "*", "2", ";"}, leafValues(compute))
}

func TestParseElsePart(t *testing.T) {
	p, _ := newTestParser(t)

	tree, err := p.Parse("if ( x > 5 ) { y = y + 1 ; } else { y = y - 1 ; }")
	require.NoError(t, err)
	assert.Empty(t, p.SyntaxErrors())

	elsePart := findNode(tree, "ElsePart")
	require.NotNil(t, elsePart)
	require.NotEmpty(t, elsePart.Children)
	assert.Equal(t, "ELSE", elsePart.Children[0].Symbol)

	compute := findNode(elsePart, "Compute")
	require.NotNil(t, compute)
	assert.Equal(t, []string{"y", "=", "y", "-", "1", ";"}, leafValues(compute))
}

// A missing identifier is reported at the semicolon's line; the driver
// resynchronizes past the semicolon and keeps parsing the statements that
// follow.
func TestParseRecoversFromMissingIdentifier(t *testing.T) {
	p, _ := newTestParser(t)

	tree, err := p.Parse("int ;\nint y ;")
	require.NoError(t, err)
	require.NotNil(t, tree)

	synErrs := p.SyntaxErrors()
	require.Len(t, synErrs, 1)
	assert.Equal(t, 1, synErrs[0].Line)
	assert.Equal(t, ";", synErrs[0].Lexeme)

	decl := findNode(tree, "DeclStmt")
	require.NotNil(t, decl)
	assert.Equal(t, []string{"int", "y", ";"}, leafValues(decl))
}

func TestParseRecoversAtEndOfInput(t *testing.T) {
	p, _ := newTestParser(t)

	tree, err := p.Parse("int ;")
	require.NoError(t, err)
	require.NotNil(t, tree)
	assert.Equal(t, "Program", tree.Symbol)
	assert.Len(t, p.SyntaxErrors(), 1)
}

func TestParseUnexpectedEndOfInput(t *testing.T) {
	p, _ := newTestParser(t)

	tree, err := p.Parse("int x")
	assert.Nil(t, tree)
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestParseEmptyInput(t *testing.T) {
	p, _ := newTestParser(t)

	// The empty program derives Program → Statements → ε.
	tree, err := p.Parse("")
	require.NoError(t, err)
	assert.Equal(t, "Program", tree.Symbol)
	assert.Empty(t, tree.Leaves())
}

// An in-order traversal of the accepted tree's leaves reproduces the token
// sequence, minus the $ sentinel.
func TestLeafRoundTrip(t *testing.T) {
	p, lex := newTestParser(t)
	src := "if ( x > 5 ) { y = y + 1 ; } while ( y < 10 ) { y = y * 2 ; }"

	tree, err := p.Parse(src)
	require.NoError(t, err)
	require.Empty(t, p.SyntaxErrors())

	tokens, err := lex.Tokenize(src)
	require.NoError(t, err)

	var lexemes []string
	for _, tok := range tokens {
		lexemes = append(lexemes, tok.Lexeme)
	}
	assert.Equal(t, lexemes, leafValues(tree))
}

// Syntax errors from an earlier Parse call do not leak into the next one.
func TestParseResetsSyntaxErrors(t *testing.T) {
	p, _ := newTestParser(t)

	_, err := p.Parse("int ;")
	require.NoError(t, err)
	require.Len(t, p.SyntaxErrors(), 1)

	_, err = p.Parse("int x ;")
	require.NoError(t, err)
	assert.Empty(t, p.SyntaxErrors())
}
