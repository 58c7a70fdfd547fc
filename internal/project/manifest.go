// Package project loads the optional conduct.toml manifest that supplies
// per-project defaults for the input resolver and the CLI.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file name looked up next to (or above) the input.
const ManifestName = "conduct.toml"

// Manifest carries the defaults a project may declare:
//
//	[input]
//	go_version = "go1.24"
//
//	[diagnostics]
//	max = 200
type Manifest struct {
	GoVersion      string
	MaxDiagnostics int
}

type manifestFile struct {
	Input struct {
		GoVersion string `toml:"go_version"`
	} `toml:"input"`
	Diagnostics struct {
		Max int `toml:"max"`
	} `toml:"diagnostics"`
}

// Load parses a conduct.toml manifest. Unknown sections are ignored so
// manifests can carry settings for other tools.
func Load(path string) (*Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	m := &Manifest{}
	if meta.IsDefined("input", "go_version") {
		m.GoVersion = strings.TrimSpace(cfg.Input.GoVersion)
	}
	if meta.IsDefined("diagnostics", "max") {
		if cfg.Diagnostics.Max <= 0 {
			return nil, fmt.Errorf("%s: [diagnostics].max must be positive, got %d", path, cfg.Diagnostics.Max)
		}
		m.MaxDiagnostics = cfg.Diagnostics.Max
	}
	return m, nil
}

// Locate searches for a manifest starting at the directory of the input
// path and walking up to the filesystem root. It returns the manifest
// path and true when found.
func Locate(inputPath string) (string, bool) {
	dir := filepath.Dir(inputPath)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
