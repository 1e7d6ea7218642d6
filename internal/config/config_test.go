package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jskw/internal/ident"
	"jskw/internal/token"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	p := filepath.Join(dir, FileName)
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	opts, err := cfg.DriverOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Mode != token.ModeSloppy || opts.Matcher != ident.VetoAutomaton || !opts.DetectStrict {
		t.Fatalf("defaults = %+v", opts)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	p := writeConfig(t, dir, `
[scan]
mode = "strict"
matcher = "combinator"
jobs = 3

[cache]
enabled = true
dir = ".cache"
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	opts, err := cfg.DriverOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Mode != token.ModeStrict || opts.Matcher != ident.VetoCombinator || opts.Jobs != 3 {
		t.Fatalf("opts = %+v", opts)
	}
	if !opts.DetectStrict || cfg.Scan.MaxDiagnostics != 100 || cfg.Output.Format != "pretty" {
		t.Fatal("unset keys lost their defaults")
	}
	if cfg.Cache.Dir != filepath.Join(dir, ".cache") {
		t.Fatalf("cache dir = %q", cfg.Cache.Dir)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	for name, body := range map[string]string{
		"mode":    "[scan]\nmode = \"loose\"\n",
		"matcher": "[scan]\nmatcher = \"regex\"\n",
		"format":  "[output]\nformat = \"xml\"\n",
		"unknown": "[scan]\nspeed = 11\n",
		"syntax":  "[scan\n",
	} {
		t.Run(name, func(t *testing.T) {
			p := writeConfig(t, t.TempDir(), body)
			if _, err := Load(p); err == nil || !strings.Contains(err.Error(), p) {
				t.Fatalf("err = %v", err)
			}
		})
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	p := writeConfig(t, root, "[scan]\nmode = \"strict\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, found, err := Discover(nested)
	if err != nil {
		t.Fatal(err)
	}
	if found != p || cfg.Scan.Mode != "strict" {
		t.Fatalf("found %q mode %q", found, cfg.Scan.Mode)
	}
}
