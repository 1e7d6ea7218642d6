// Package config loads jskw.toml, the per-project scanner settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"jskw/internal/driver"
	"jskw/internal/ident"
	"jskw/internal/token"
)

// FileName is the manifest name searched for upward from the working directory.
const FileName = "jskw.toml"

type Config struct {
	Scan   ScanConfig   `toml:"scan"`
	Cache  CacheConfig  `toml:"cache"`
	Output OutputConfig `toml:"output"`
}

type ScanConfig struct {
	Mode           string `toml:"mode"`
	DetectStrict   bool   `toml:"detect_strict"`
	Matcher        string `toml:"matcher"`
	CrossCheck     bool   `toml:"cross_check"`
	Jobs           int    `toml:"jobs"`
	NFC            bool   `toml:"nfc"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"` // пусто — $XDG_CACHE_HOME/jskw
}

type OutputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

// Default returns the settings used when no jskw.toml exists.
func Default() Config {
	return Config{
		Scan: ScanConfig{
			Mode:           token.ModeSloppy.String(),
			DetectStrict:   true,
			Matcher:        ident.VetoAutomaton.String(),
			MaxDiagnostics: 100,
		},
		Output: OutputConfig{Format: "pretty", Color: "auto"},
	}
}

// Find walks from startDir to the filesystem root looking for jskw.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load decodes path over the defaults; keys absent from the file keep
// their default values. A relative cache dir is resolved against the
// directory holding the file.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if d := cfg.Cache.Dir; d != "" && !filepath.IsAbs(d) {
		cfg.Cache.Dir = filepath.Join(filepath.Dir(path), d)
	}
	return cfg, nil
}

// Discover loads the nearest jskw.toml above startDir, or returns Default.
// The returned path is empty when no file was found.
func Discover(startDir string) (Config, string, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	if _, err := token.ParseMode(c.Scan.Mode); err != nil {
		return fmt.Errorf("[scan].mode: %w", err)
	}
	if _, err := ident.ParseVeto(c.Scan.Matcher); err != nil {
		return fmt.Errorf("[scan].matcher: %w", err)
	}
	if c.Scan.Jobs < 0 {
		return fmt.Errorf("[scan].jobs must be >= 0, got %d", c.Scan.Jobs)
	}
	switch c.Output.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("[output].format: unknown format %q (expected pretty|json)", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("[output].color: unknown value %q (expected auto|on|off)", c.Output.Color)
	}
	return nil
}

// DriverOptions converts the scan section. Cache and progress are wired by
// the caller.
func (c Config) DriverOptions() (driver.Options, error) {
	mode, err := token.ParseMode(c.Scan.Mode)
	if err != nil {
		return driver.Options{}, err
	}
	veto, err := ident.ParseVeto(c.Scan.Matcher)
	if err != nil {
		return driver.Options{}, err
	}
	return driver.Options{
		Mode:           mode,
		DetectStrict:   c.Scan.DetectStrict,
		Matcher:        veto,
		CrossCheck:     c.Scan.CrossCheck,
		MaxDiagnostics: c.Scan.MaxDiagnostics,
		NFC:            c.Scan.NFC,
		Jobs:           c.Scan.Jobs,
	}, nil
}
