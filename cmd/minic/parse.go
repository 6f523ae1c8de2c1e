package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"minic/driver"
	"minic/lang"
	"minic/lexer"
)

var parseFlags = struct {
	source *string
	tokens *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse",
		Short:   "Parse a text stream and print its syntax tree",
		Example: `  cat prog.mc | minic parse`,
		Args:    cobra.NoArgs,
		RunE:    runParse,
	}
	parseFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	parseFlags.tokens = cmd.Flags().Bool("tokens", false, "print the token stream before parsing")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	src, err := readSource(*parseFlags.source)
	if err != nil {
		return err
	}

	lex, err := lexer.NewLexer()
	if err != nil {
		return fmt.Errorf("cannot build the lexical specification: %w", err)
	}

	g, err := lang.NewGrammar()
	if err != nil {
		return fmt.Errorf("cannot build the grammar: %w", err)
	}

	p, err := driver.NewParser(g, lex)
	if err != nil {
		return fmt.Errorf("cannot generate the parsing table: %w", err)
	}

	if *parseFlags.tokens {
		tokens, err := lex.Tokenize(src)
		if err != nil {
			return err
		}
		for _, tok := range tokens {
			fmt.Fprintf(os.Stdout, "%v\n", tok)
		}
	}

	tree, err := p.Parse(src)
	if err != nil {
		return err
	}
	driver.PrintTree(os.Stdout, tree)

	if n := len(p.SyntaxErrors()); n > 0 {
		return fmt.Errorf("parsing finished with %v syntax error(s)", n)
	}
	return nil
}

func readSource(path string) (string, error) {
	if path == "" {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(src), nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot open the source file %v: %w", path, err)
	}
	return string(src), nil
}
