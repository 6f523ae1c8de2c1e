package lexer

import (
	"fmt"
	"io"
	"strings"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
)

const (
	kindWhiteSpace   = "white_space"
	kindLineComment  = "line_comment"
	kindBlockComment = "block_comment"
	kindNumber       = "number"
	kindString       = "string"
	kindIdentifier   = "identifier"
	kindOperator     = "operator"
	kindDelimiter    = "delimiter"
)

func genLexSpec() *mlspec.LexSpec {
	return &mlspec.LexSpec{
		Name: "minic",
		Entries: []*mlspec.LexEntry{
			{
				Kind:    mlspec.LexKindName(kindWhiteSpace),
				Pattern: mlspec.LexPattern(`[\u{0009}\u{000A}\u{000D}\u{0020}]+`),
			},
			{
				Kind:    mlspec.LexKindName(kindLineComment),
				Pattern: mlspec.LexPattern(`//[^\u{000A}]*`),
			},
			{
				Kind:    mlspec.LexKindName(kindBlockComment),
				Pattern: mlspec.LexPattern(`/\*([^*]|\*[^/])*\*/`),
			},
			{
				Kind:    mlspec.LexKindName(kindNumber),
				Pattern: mlspec.LexPattern(`[0-9]+(\.[0-9]+)?`),
			},
			{
				Kind:    mlspec.LexKindName(kindString),
				Pattern: mlspec.LexPattern(`"(\\.|[^"\\])*"`),
			},
			{
				Kind:    mlspec.LexKindName(kindIdentifier),
				Pattern: mlspec.LexPattern(`[A-Za-z_][0-9A-Za-z_]*`),
			},
			{
				Kind:    mlspec.LexKindName(kindOperator),
				Pattern: mlspec.LexPattern(`\+\+|--|\+=|-=|\*=|/=|==|!=|<=|>=|&&|\|\||\+|-|\*|/|=|<|>|!`),
			},
			{
				Kind:    mlspec.LexKindName(kindDelimiter),
				Pattern: mlspec.LexPattern(`\(|\)|{|}|\[|\]|;|,|:|\.`),
			},
		},
	}
}

// Lexer scans mini-language source text into classified tokens. The lexical
// specification is compiled once per Lexer; Tokenize may then be called for
// any number of independent sources.
type Lexer struct {
	clspec *mlspec.CompiledLexSpec
}

func NewLexer() (*Lexer, error) {
	clspec, err, cErrs := mlcompiler.Compile(genLexSpec(), mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
	if err != nil {
		if len(cErrs) > 0 {
			var b strings.Builder
			writeCompileError(&b, cErrs[0])
			for _, cerr := range cErrs[1:] {
				fmt.Fprintf(&b, "\n")
				writeCompileError(&b, cerr)
			}
			return nil, fmt.Errorf("%v", b.String())
		}
		return nil, err
	}
	return &Lexer{
		clspec: clspec,
	}, nil
}

func writeCompileError(w io.Writer, cErr *mlcompiler.CompileError) {
	fmt.Fprintf(w, "%v: %v", cErr.Kind, cErr.Cause)
	if cErr.Detail != "" {
		fmt.Fprintf(w, ": %v", cErr.Detail)
	}
}

// Tokenize returns the full token sequence for src. Whitespace and comments
// are dropped; unrecognizable input surfaces as Unknown tokens rather than
// errors, so the parser's recovery gets a chance to resynchronize. The
// sequence carries no end-of-input sentinel; appending one is the parse
// driver's job.
func (l *Lexer) Tokenize(src string) ([]Token, error) {
	d, err := mldriver.NewLexer(mldriver.NewLexSpec(l.clspec), strings.NewReader(src))
	if err != nil {
		return nil, err
	}

	var tokens []Token
	for {
		tok, err := d.Next()
		if err != nil {
			return nil, err
		}
		if tok.EOF {
			return tokens, nil
		}
		if tok.Invalid {
			tokens = append(tokens, Token{
				Type:   Unknown,
				Lexeme: string(tok.Lexeme),
				Line:   tok.Row + 1,
			})
			continue
		}

		kindName := l.clspec.KindNames[tok.KindID].String()
		switch kindName {
		case kindWhiteSpace, kindLineComment, kindBlockComment:
			continue
		}

		tokens = append(tokens, Token{
			Type:   classify(kindName, string(tok.Lexeme)),
			Lexeme: string(tok.Lexeme),
			Line:   tok.Row + 1,
		})
	}
}

func classify(kind string, text string) TokenType {
	switch kind {
	case kindNumber:
		return Number
	case kindString:
		return String
	case kindIdentifier:
		if _, ok := Keywords[text]; ok {
			return Keyword
		}
		return Identifier
	case kindOperator:
		// A lone `=` is an assignment, not an operator; `==`, `+=` and
		// friends stay operators.
		if text == "=" {
			return Assignment
		}
		return Operator
	case kindDelimiter:
		return Delimiter
	}
	return Unknown
}
