package driver

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"minic/grammar"
	"minic/lexer"
)

var (
	// ErrUnexpectedEOF is returned when the input runs out before the parser
	// reaches the accept action.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrRecoveryFailed is returned when panic-mode recovery exhausts the
	// parse stack without finding a viable state.
	ErrRecoveryFailed = errors.New("syntax error recovery failed")
)

// syncTerminals is the synchronizing set for panic-mode recovery.
var syncTerminals = map[string]struct{}{
	"SEMICOLON":       {},
	grammar.SymbolEOF: {},
}

// SyntaxError records one recoverable syntax error. The parser accumulates
// them and keeps going; callers inspect the list after Parse returns.
type SyntaxError struct {
	Line     int
	Lexeme   string
	Terminal string
	State    int
}

func (e *SyntaxError) String() string {
	return fmt.Sprintf("syntax error at line %v: unexpected token %#v", e.Line, e.Lexeme)
}

// TokenStream is the lexer-facing interface the driver consumes: one
// operation producing the full token sequence for a source string.
type TokenStream interface {
	Tokenize(src string) ([]lexer.Token, error)
}

// Parser is a table-driven shift/reduce parser. Construction builds the
// ACTION/GOTO tables from the grammar; the tables are immutable afterwards,
// so a single Parser may serve any number of sequential Parse calls, and
// distinct Parsers over the same grammar are fully independent.
type Parser struct {
	g       *grammar.Grammar
	ptab    *grammar.ParsingTable
	lex     TokenStream
	synErrs []*SyntaxError
}

func NewParser(g *grammar.Grammar, lex TokenStream) (*Parser, error) {
	ptab, err := grammar.GenParsingTable(g)
	if err != nil {
		return nil, err
	}
	return &Parser{
		g:    g,
		ptab: ptab,
		lex:  lex,
	}, nil
}

// Table exposes the generated parsing table, mainly for the table dump.
func (p *Parser) Table() *grammar.ParsingTable {
	return p.ptab
}

// SyntaxErrors returns the recoverable errors collected by the most recent
// Parse call.
func (p *Parser) SyntaxErrors() []*SyntaxError {
	return p.synErrs
}

// parseContext is the per-parse state. The two stacks grow and shrink
// together: stateStack always holds exactly one more entry than symStack.
type parseContext struct {
	tokens     []lexer.Token
	pos        int
	stateStack []int
	symStack   []*Node
}

func (c *parseContext) top() int {
	return c.stateStack[len(c.stateStack)-1]
}

func (c *parseContext) push(state int, node *Node) {
	c.stateStack = append(c.stateStack, state)
	c.symStack = append(c.symStack, node)
}

// pop removes n entries from both stacks and returns the popped symbols in
// their original left-to-right order.
func (c *parseContext) pop(n int) []*Node {
	if n == 0 {
		return nil
	}
	nodes := make([]*Node, n)
	copy(nodes, c.symStack[len(c.symStack)-n:])
	c.symStack = c.symStack[:len(c.symStack)-n]
	c.stateStack = c.stateStack[:len(c.stateStack)-n]
	return nodes
}

// Parse tokenizes src and runs the shift/reduce loop until the accept action
// or a fatal error. Recoverable syntax errors are logged, recorded, and
// parsed past via panic-mode recovery; the returned tree is whatever the
// driver eventually accepts.
func (p *Parser) Parse(src string) (*Node, error) {
	tokens, err := p.lex.Tokenize(src)
	if err != nil {
		return nil, err
	}
	tokens = append(tokens, lexer.Token{
		Type:   lexer.EOF,
		Lexeme: grammar.SymbolEOF,
		Line:   0,
	})

	p.synErrs = nil
	ctx := &parseContext{
		tokens:     tokens,
		stateStack: []int{p.ptab.InitialState()},
	}

	for ctx.pos < len(ctx.tokens) {
		tok := ctx.tokens[ctx.pos]
		term := TerminalName(tok)

		act, ok := p.ptab.Action(ctx.top(), term)
		if !ok {
			if err := p.recoverFromError(ctx, tok, term); err != nil {
				return nil, err
			}
			continue
		}

		switch act.Type {
		case grammar.ActionShift:
			ctx.push(act.State, &Node{Symbol: term, Value: tok.Lexeme})
			ctx.pos++
		case grammar.ActionReduce:
			prod, _ := p.g.Production(act.Prod)
			node := &Node{
				Symbol:   prod.LHS,
				Children: ctx.pop(len(prod.RHS)),
			}
			next, ok := p.ptab.GoTo(ctx.top(), prod.LHS)
			if !ok {
				return nil, fmt.Errorf("GOTO[%v, %v] is undefined after reducing by %v", ctx.top(), prod.LHS, prod)
			}
			ctx.push(next, node)
		case grammar.ActionAccept:
			if len(ctx.symStack) != 1 {
				return nil, fmt.Errorf("accepted with %v symbols left on the stack", len(ctx.symStack))
			}
			return ctx.symStack[0], nil
		}
	}

	return nil, ErrUnexpectedEOF
}

// recoverFromError implements panic-mode recovery: report, skip input to a
// synchronizing terminal, consume a synchronizing semicolon, then unwind the
// stacks to a state that can act on the next token.
//
// An undefined action on the $ sentinel is not recoverable: there is nothing
// left to skip to, and unwinding would only accept a truncated program.
func (p *Parser) recoverFromError(ctx *parseContext, tok lexer.Token, term string) error {
	synErr := &SyntaxError{
		Line:     tok.Line,
		Lexeme:   tok.Lexeme,
		Terminal: term,
		State:    ctx.top(),
	}
	p.synErrs = append(p.synErrs, synErr)
	log.Error("syntax error", "line", tok.Line, "token", tok.Lexeme, "state", ctx.top())

	if term == grammar.SymbolEOF {
		return ErrUnexpectedEOF
	}

	for ctx.pos < len(ctx.tokens) {
		if _, ok := syncTerminals[TerminalName(ctx.tokens[ctx.pos])]; ok {
			break
		}
		ctx.pos++
	}
	// A synchronizing semicolon closes the broken statement; parsing resumes
	// after it. The $ sentinel is never consumed.
	if TerminalName(ctx.tokens[ctx.pos]) != grammar.SymbolEOF {
		ctx.pos++
	}

	cur := TerminalName(ctx.tokens[ctx.pos])
	for len(ctx.stateStack) > 0 {
		if _, ok := p.ptab.Action(ctx.top(), cur); ok {
			log.Debug("recovered from syntax error", "state", ctx.top(), "next", ctx.tokens[ctx.pos].Lexeme)
			return nil
		}
		ctx.stateStack = ctx.stateStack[:len(ctx.stateStack)-1]
		if len(ctx.symStack) > 0 {
			ctx.symStack = ctx.symStack[:len(ctx.symStack)-1]
		}
	}

	return ErrRecoveryFailed
}
