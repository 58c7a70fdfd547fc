package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"conduct/internal/diagfmt"
	"conduct/internal/inspect"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.go|->",
	Short: "Drive the full pipeline and print the resolved unit",
	Long: `Check drives the host pipeline through lexing, parsing and type
resolution, printing the resolved top-level objects and any diagnostics`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	if runErr := drv.RunLexer(inspect.TokenInspectorFunc(func(*inspect.TokenStream) {})); runErr != nil {
		printDiagnostics(cmd, stageDiagnostics(drv, runErr), in.Content())
		return runErr
	}
	if runErr := drv.RunParser(inspect.SyntaxInspectorFunc(func(*inspect.SyntaxTree) {})); runErr != nil {
		printDiagnostics(cmd, stageDiagnostics(drv, runErr), in.Content())
		return runErr
	}

	var printErr error
	runErr := drv.RunSemantic(inspect.SemanticInspectorFunc(func(u *inspect.SemanticUnit) {
		switch format {
		case "pretty":
			printErr = diagfmt.SemanticsPretty(os.Stdout, u)
		case "json":
			printErr = diagfmt.SemanticsJSON(os.Stdout, u)
		case "short":
			// Объекты не печатаем — только диагностика ниже.
		default:
			printErr = fmt.Errorf("unknown format: %s", format)
		}
	}))

	if format == "short" {
		if out := diagfmt.Short(stageDiagnostics(drv, runErr), false); out != "" {
			fmt.Fprintln(os.Stderr, out)
		}
	} else {
		printDiagnostics(cmd, stageDiagnostics(drv, runErr), in.Content())
	}
	if runErr != nil {
		return runErr
	}
	return printErr
}
