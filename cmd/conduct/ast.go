package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"conduct/internal/diagfmt"
	"conduct/internal/inspect"
)

var astCmd = &cobra.Command{
	Use:   "ast [flags] <file.go|->",
	Short: "Drive the pipeline to the syntax tree and print its outline",
	Long: `Ast drives the host pipeline through lexing and parsing and prints the
top-level items, their visibility and compiler directives`,
	Args: cobra.ExactArgs(1),
	RunE: runAst,
}

func init() {
	astCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runAst(cmd *cobra.Command, args []string) error {
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

	// Syntax tools still drive the lexical stage first; its token view
	// is simply not inspected.
	if runErr := drv.RunLexer(inspect.TokenInspectorFunc(func(*inspect.TokenStream) {})); runErr != nil {
		printDiagnostics(cmd, stageDiagnostics(drv, runErr), in.Content())
		return runErr
	}

	var printErr error
	runErr := drv.RunParser(inspect.SyntaxInspectorFunc(func(tree *inspect.SyntaxTree) {
		switch format {
		case "pretty":
			printErr = diagfmt.SyntaxPretty(os.Stdout, tree)
		case "json":
			printErr = diagfmt.SyntaxJSON(os.Stdout, tree)
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
