package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"minic/grammar"
	"minic/lang"
)

var showFlags = struct {
	output *string
	sets   *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "show",
		Short:   "Dump the generated ACTION/GOTO tables",
		Example: `  minic show -o slr_table.txt`,
		Args:    cobra.NoArgs,
		RunE:    runShow,
	}
	showFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	showFlags.sets = cmd.Flags().Bool("sets", false, "print the FIRST and FOLLOW sets before the tables")
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	g, err := lang.NewGrammar()
	if err != nil {
		return fmt.Errorf("cannot build the grammar: %w", err)
	}

	ptab, err := grammar.GenParsingTable(g)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if *showFlags.output != "" {
		f, err := os.Create(*showFlags.output)
		if err != nil {
			return fmt.Errorf("cannot create the output file %v: %w", *showFlags.output, err)
		}
		defer f.Close()
		w = f
	}

	if *showFlags.sets {
		writeSets(w, g)
	}

	return ptab.Describe(w)
}

func writeSets(w io.Writer, g *grammar.Grammar) {
	a := grammar.NewAnalysis(g)

	fmt.Fprintf(w, "FIRST sets:\n")
	for _, nt := range g.NonTerminalSymbols() {
		syms, empty := a.First(nt)
		if empty {
			syms = append(syms, grammar.SymbolEpsilon)
		}
		fmt.Fprintf(w, "  FIRST(%v) = { %v }\n", nt, strings.Join(syms, " "))
	}

	fmt.Fprintf(w, "FOLLOW sets:\n")
	for _, nt := range g.NonTerminalSymbols() {
		fmt.Fprintf(w, "  FOLLOW(%v) = { %v }\n", nt, strings.Join(a.Follow(nt), " "))
	}
	fmt.Fprintf(w, "\n")
}
