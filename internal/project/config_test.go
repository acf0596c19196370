package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"maplint/internal/diag"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
max-diagnostics = 25
disabled = ["LINT1002"]

[output]
format = "json"
color = "never"
path-mode = "basename"
show-notes = false
show-fixes = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxDiagnostics != 25 {
		t.Errorf("max-diagnostics = %d, want 25", cfg.MaxDiagnostics)
	}
	if cfg.Output.Format != "json" || cfg.Output.Color != "never" || cfg.Output.PathMode != "basename" {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Output.ShowNotes || !cfg.Output.ShowFixes {
		t.Errorf("output flags = %+v", cfg.Output)
	}

	disabled := cfg.DisabledCodes()
	if !disabled[diag.LintResultMapUnitFn] {
		t.Error("expected LINT1002 disabled")
	}
	if disabled[diag.LintOptionMapUnitFn] {
		t.Error("LINT1001 should stay enabled")
	}
}

func TestLoadPartialManifestKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `max-diagnostics = 5`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxDiagnostics != 5 {
		t.Errorf("max-diagnostics = %d, want 5", cfg.MaxDiagnostics)
	}
	if def := Default().Output; cfg.Output != def {
		t.Errorf("output = %+v, want defaults %+v", cfg.Output, def)
	}
}

func TestLoadRejectsBadManifests(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"unknown key", "max-dignostics = 5", "unknown keys"},
		{"unknown lint", `disabled = ["LINT9999"]`, `unknown lint "LINT9999"`},
		{"non-lint code", `disabled = ["IO4000"]`, `unknown lint "IO4000"`},
		{"bad format", "[output]\nformat = \"yaml\"", "unknown output format"},
		{"bad color", "[output]\ncolor = \"sometimes\"", "unknown color mode"},
		{"negative limit", "max-diagnostics = -1", "must not be negative"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tc.content)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.errPart) {
				t.Fatalf("err = %v, want containing %q", err, tc.errPart)
			}
		})
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "max-diagnostics = 7")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := FindManifest(nested)
	if err != nil || !ok {
		t.Fatalf("FindManifest = %q, %v, %v", path, ok, err)
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %q, want manifest in %q", path, root)
	}

	cfg, err := LoadFromDir(nested)
	if err != nil {
		t.Fatalf("LoadFromDir: %v", err)
	}
	if cfg.MaxDiagnostics != 7 {
		t.Errorf("max-diagnostics = %d, want 7", cfg.MaxDiagnostics)
	}
}

func TestLoadFromDirWithoutManifest(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFromDir: %v", err)
	}
	if def := Default(); cfg.MaxDiagnostics != def.MaxDiagnostics || cfg.Output != def.Output {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}
