package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"conduct/internal/driver"
	"conduct/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "conduct",
	Short: "Drive the Go compiler front-end stage by stage",
	Long: `conduct bootstraps a compiler session over a single Go source file and
drives the host front-end (scanner, parser, type checker) exactly as far
as requested, printing the representation each stage produces`,
	SilenceUsage: true,
}

func main() {
	rootCmd.Version = version.Plain()

	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(astCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to report (0=default)")
	rootCmd.PersistentFlags().String("lang", "", "language version, e.g. go1.24 (default: toolchain)")
	rootCmd.PersistentFlags().Bool("no-manifest", false, "ignore any conduct.toml manifest")

	if err := rootCmd.Execute(); err != nil {
		var orderErr *driver.OrderError
		if errors.As(err, &orderErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
