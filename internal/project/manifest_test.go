package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[input]
go_version = "go1.24"

[diagnostics]
max = 42
`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	want := &Manifest{GoVersion: "go1.24", MaxDiagnostics: 42}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("manifest mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPartialAndUnknownSections(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[input]
go_version = " go1.22 "

[othertool]
setting = true
`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if m.GoVersion != "go1.22" {
		t.Fatalf("go version not trimmed: %q", m.GoVersion)
	}
	if m.MaxDiagnostics != 0 {
		t.Fatalf("unset max should stay zero, got %d", m.MaxDiagnostics)
	}
}

func TestLoadRejectsNonPositiveMax(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[diagnostics]
max = 0
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for max = 0")
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[input\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLocateWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[input]\ngo_version = \"go1.24\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	input := filepath.Join(nested, "main.go")
	if err := os.WriteFile(input, []byte("package main\n"), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}

	found, ok := Locate(input)
	if !ok {
		t.Fatalf("expected manifest to be found")
	}
	if found != filepath.Join(root, ManifestName) {
		t.Fatalf("wrong manifest: got %q", found)
	}
}

func TestLocateMissing(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "main.go")
	if _, ok := Locate(input); ok {
		t.Fatalf("unexpected manifest found for %s", input)
	}
}
