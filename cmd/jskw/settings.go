package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"jskw/internal/config"
	"jskw/internal/driver"
	"jskw/internal/ident"
	"jskw/internal/token"
)

// settings is the merged view of jskw.toml and command-line flags.
type settings struct {
	cfg        config.Config
	configPath string
	opts       driver.Options
	format     string
	color      bool
	timings    bool
}

// loadSettings reads the config file, then lets explicitly set flags win.
// Flags a command does not define are skipped.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	root := cmd.Root().PersistentFlags()
	path, err := root.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	var cfg config.Config
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, path, err = config.Discover(".")
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if f := flags.Lookup("mode"); f != nil && f.Changed {
		cfg.Scan.Mode = f.Value.String()
	}
	if f := flags.Lookup("matcher"); f != nil && f.Changed {
		cfg.Scan.Matcher = f.Value.String()
	}
	if f := flags.Lookup("format"); f != nil && f.Changed {
		cfg.Output.Format = strings.ToLower(f.Value.String())
	}
	if f := flags.Lookup("jobs"); f != nil && f.Changed {
		if cfg.Scan.Jobs, err = flags.GetInt("jobs"); err != nil {
			return nil, err
		}
	}
	if f := flags.Lookup("cross-check"); f != nil && f.Changed {
		if cfg.Scan.CrossCheck, err = flags.GetBool("cross-check"); err != nil {
			return nil, err
		}
	}
	if f := flags.Lookup("no-detect-strict"); f != nil && f.Changed {
		noDetect, err := flags.GetBool("no-detect-strict")
		if err != nil {
			return nil, err
		}
		cfg.Scan.DetectStrict = !noDetect
	}
	if f := flags.Lookup("nfc"); f != nil && f.Changed {
		if cfg.Scan.NFC, err = flags.GetBool("nfc"); err != nil {
			return nil, err
		}
	}
	if f := flags.Lookup("cache"); f != nil && f.Changed {
		if cfg.Cache.Enabled, err = flags.GetBool("cache"); err != nil {
			return nil, err
		}
	}
	if f := root.Lookup("max-diagnostics"); f.Changed {
		if cfg.Scan.MaxDiagnostics, err = root.GetInt("max-diagnostics"); err != nil {
			return nil, err
		}
	}
	if f := root.Lookup("color"); f.Changed {
		cfg.Output.Color = strings.ToLower(f.Value.String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts, err := cfg.DriverOptions()
	if err != nil {
		return nil, err
	}
	timings, err := root.GetBool("timings")
	if err != nil {
		return nil, err
	}

	s := &settings{
		cfg:        cfg,
		configPath: path,
		opts:       opts,
		format:     cfg.Output.Format,
		color:      useColor(cfg.Output.Color, os.Stdout),
		timings:    timings,
	}
	color.NoColor = !s.color
	return s, nil
}

func useColor(mode string, f *os.File) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}

// openCache returns nil when caching is disabled, unless force is set.
func (s *settings) openCache(force bool) (*driver.DiskCache, error) {
	if !s.cfg.Cache.Enabled && !force {
		return nil, nil
	}
	if s.cfg.Cache.Dir != "" {
		return driver.OpenDiskCacheAt(s.cfg.Cache.Dir)
	}
	return driver.OpenDiskCache("jskw")
}

func addModeFlags(cmd *cobra.Command) {
	cmd.Flags().String("mode", token.ModeSloppy.String(), "reservation mode (strict|sloppy)")
	cmd.Flags().String("matcher", ident.VetoAutomaton.String(), "reserved-word matcher (automaton|combinator)")
}
