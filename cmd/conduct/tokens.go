package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"conduct/internal/diagfmt"
	"conduct/internal/inspect"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [flags] <file.go|->",
	Short: "Drive the lexical stage and print the token stream",
	Long:  `Tokens drives the host scanner over a Go source file and prints the resulting token stream`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokens(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	in, err := resolveInput(cmd, args[0])
	if err != nil {
		return err
	}
	drv, cleanup, err := newPipeline(cmd, in)
	if err != nil {
		return err
	}
	defer cleanup()

	var printErr error
	runErr := drv.RunLexer(inspect.TokenInspectorFunc(func(ts *inspect.TokenStream) {
		switch format {
		case "pretty":
			printErr = diagfmt.TokensPretty(os.Stdout, ts)
		case "json":
			printErr = diagfmt.TokensJSON(os.Stdout, ts)
		default:
			printErr = fmt.Errorf("unknown format: %s", format)
		}
	}))

	printDiagnostics(cmd, stageDiagnostics(drv, runErr), in.Content())
	if runErr != nil {
		return runErr
	}
	return printErr
}
