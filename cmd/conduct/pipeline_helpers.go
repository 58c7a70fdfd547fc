package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"conduct/internal/diag"
	"conduct/internal/diagfmt"
	"conduct/internal/driver"
	"conduct/internal/observ"
	"conduct/internal/project"
	"conduct/internal/session"
	"conduct/internal/source"
)

// resolveInput builds the source.Input from the positional path, the
// persistent flags and an optional conduct.toml manifest found next to
// (or above) the input.
func resolveInput(cmd *cobra.Command, path string) (source.Input, error) {
	flags := cmd.Root().PersistentFlags()

	lang, err := flags.GetString("lang")
	if err != nil {
		return source.Input{}, fmt.Errorf("failed to get lang flag: %w", err)
	}
	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return source.Input{}, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	maxDiagnostics, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return source.Input{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	noManifest, err := flags.GetBool("no-manifest")
	if err != nil {
		return source.Input{}, fmt.Errorf("failed to get no-manifest flag: %w", err)
	}

	var defaults *source.Defaults
	if !noManifest && path != source.StdinPath {
		if manifestPath, ok := project.Locate(path); ok {
			manifest, loadErr := project.Load(manifestPath)
			if loadErr != nil {
				return source.Input{}, loadErr
			}
			defaults = &source.Defaults{
				GoVersion:      manifest.GoVersion,
				MaxDiagnostics: manifest.MaxDiagnostics,
			}
		}
	}

	return source.Resolve(source.Config{
		Path:           path,
		GoVersion:      lang,
		Quiet:          quiet,
		MaxDiagnostics: maxDiagnostics,
		Defaults:       defaults,
	})
}

// newPipeline bootstraps the session and wraps it in a driver, wiring
// the timer when --timings is set. The returned cleanup closes the
// session and prints the timing summary.
func newPipeline(cmd *cobra.Command, in source.Input) (*driver.Driver, func(), error) {
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get timings flag: %w", err)
	}

	sess, err := session.Bootstrap(in)
	if err != nil {
		return nil, nil, err
	}

	var timer *observ.Timer
	if timings {
		timer = observ.NewTimer()
	}
	drv := driver.New(sess, driver.Options{Timer: timer})

	cleanup := func() {
		sess.Close()
		if timer != nil && !in.Quiet() {
			fmt.Fprint(os.Stderr, timer.Summary())
		}
	}
	return drv, cleanup, nil
}

// printDiagnostics renders every recorded diagnostic to stderr.
func printDiagnostics(cmd *cobra.Command, diags []diag.Diagnostic, src []byte) {
	if len(diags) == 0 {
		return
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		colorFlag = "auto"
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	diagfmt.Pretty(os.Stderr, diags, src, diagfmt.PrettyOpts{
		Color:   useColor,
		Context: 2,
	})
}

// stageDiagnostics extracts the diagnostics to show for a finished run:
// the stage error's own findings, or the accumulated warnings when the
// run succeeded.
func stageDiagnostics(drv *driver.Driver, err error) []diag.Diagnostic {
	var stageErr *driver.StageError
	if errors.As(err, &stageErr) {
		return stageErr.Diagnostics
	}
	return drv.Diagnostics()
}
