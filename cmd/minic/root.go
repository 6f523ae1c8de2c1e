package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minic/internal/logger"
)

var rootFlags = struct {
	verbose *bool
	noColor *bool
}{}

var rootCmd = &cobra.Command{
	Use:   "minic",
	Short: "Parse the mini imperative language with SLR(1) tables",
	Long: `minic builds SLR(1) parsing tables from the mini language's grammar at
startup and parses source text with them:
- Parses a text stream into a concrete syntax tree.
- Dumps the generated ACTION/GOTO tables for debugging the grammar.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(*rootFlags.verbose, *rootFlags.noColor)
	},
}

func init() {
	rootFlags.verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootFlags.noColor = rootCmd.PersistentFlags().Bool("no-color", false, "disable colored log output")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
