package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"maplint/internal/diag"
)

// ManifestName is the configuration file looked up from the working
// directory towards the filesystem root.
const ManifestName = "maplint.toml"

// OutputConfig controls how diagnostics are rendered.
type OutputConfig struct {
	Format    string `toml:"format"`    // "pretty", "json" or "short"
	Color     string `toml:"color"`     // "auto", "always" or "never"
	PathMode  string `toml:"path-mode"` // "auto", "absolute", "relative", "basename"
	ShowNotes bool   `toml:"show-notes"`
	ShowFixes bool   `toml:"show-fixes"`
}

// Config is the parsed maplint.toml.
type Config struct {
	MaxDiagnostics int          `toml:"max-diagnostics"`
	Disabled       []string     `toml:"disabled"` // lint IDs like "LINT1001"
	Output         OutputConfig `toml:"output"`
}

// Default returns the configuration used when no manifest exists.
func Default() Config {
	return Config{
		MaxDiagnostics: 100,
		Output: OutputConfig{
			Format:    "pretty",
			Color:     "auto",
			PathMode:  "auto",
			ShowNotes: true,
			ShowFixes: true,
		},
	}
}

// FindManifest walks up from startDir to locate maplint.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads the manifest at path on top of defaults. Unknown keys are an
// error so typos do not silently disable anything.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(path); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFromDir finds and loads the nearest manifest above startDir, falling
// back to defaults when none exists.
func LoadFromDir(startDir string) (Config, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func (c Config) validate(path string) error {
	switch c.Output.Format {
	case "pretty", "json", "short":
	default:
		return fmt.Errorf("%s: unknown output format %q", path, c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%s: unknown color mode %q", path, c.Output.Color)
	}
	switch c.Output.PathMode {
	case "auto", "absolute", "relative", "basename":
	default:
		return fmt.Errorf("%s: unknown path mode %q", path, c.Output.PathMode)
	}
	if c.MaxDiagnostics < 0 {
		return fmt.Errorf("%s: max-diagnostics must not be negative", path)
	}
	for _, id := range c.Disabled {
		if _, ok := diag.LintCodeByID(id); !ok {
			return fmt.Errorf("%s: unknown lint %q", path, id)
		}
	}
	return nil
}

// DisabledCodes resolves the disabled IDs to codes. Call after Load, which
// already rejected unknown IDs.
func (c Config) DisabledCodes() map[diag.Code]bool {
	if len(c.Disabled) == 0 {
		return nil
	}
	out := make(map[diag.Code]bool, len(c.Disabled))
	for _, id := range c.Disabled {
		if code, ok := diag.LintCodeByID(id); ok {
			out[code] = true
		}
	}
	return out
}
