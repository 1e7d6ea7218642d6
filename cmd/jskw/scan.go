package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"jskw/internal/diag"
	"jskw/internal/diagfmt"
	"jskw/internal/driver"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] [path...]",
	Short: "Scan JavaScript files for reserved words",
	Long: `Scan walks the given files and directories (default: the working
directory), classifies every word and reports reserved words used as
binding names. Exits with status 1 when a diagnostic at or above --fail-on
is reported.`,
	RunE: runScan,
}

var scanUI = uiModeAuto

func init() {
	addModeFlags(scanCmd)
	scanCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	scanCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	scanCmd.Flags().Bool("cache", false, "reuse results from the disk cache")
	scanCmd.Flags().Bool("clear-cache", false, "drop the disk cache before scanning")
	scanCmd.Flags().Var(&scanUI, "ui", "progress view (auto|on|off)")
	scanCmd.Flags().Bool("occurrences", false, "list every classified word")
	scanCmd.Flags().Bool("cross-check", false, "run both matchers and report disagreements")
	scanCmd.Flags().Bool("no-detect-strict", false, "ignore \"use strict\" directives")
	scanCmd.Flags().Bool("nfc", false, "normalize sources to NFC before scanning")
	scanCmd.Flags().String("fail-on", "error", "lowest severity that makes the exit status 1 (info|warning|error)")
	scanCmd.Flags().String("path-mode", "auto", "how to print file paths (auto|absolute|relative|basename)")
}

func runScan(cmd *cobra.Command, args []string) error {
	st, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"."}
	}

	pathModeValue, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	pathMode, ok := diagfmt.ParsePathMode(pathModeValue)
	if !ok {
		return fmt.Errorf("unknown path mode %q", pathModeValue)
	}
	occurrences, err := cmd.Flags().GetBool("occurrences")
	if err != nil {
		return fmt.Errorf("failed to get occurrences flag: %w", err)
	}
	failOnValue, err := cmd.Flags().GetString("fail-on")
	if err != nil {
		return fmt.Errorf("failed to get fail-on flag: %w", err)
	}
	failOn, err := diag.ParseSeverity(failOnValue)
	if err != nil {
		return err
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return fmt.Errorf("failed to get clear-cache flag: %w", err)
	}

	opts := st.opts
	if st.cfg.Cache.Enabled || clearCache {
		cache, err := st.openCache(clearCache)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		if clearCache {
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
		}
		if st.cfg.Cache.Enabled {
			opts.Cache = cache
		}
	}

	files, err := collectScripts(args)
	if err != nil {
		return err
	}

	var res *driver.ScanResult
	switch {
	case scanUI.useTUI(st.format, os.Stdout):
		res, err = runScanWithUI(cmd.Context(), "scanning", files, opts)
	case len(args) == 1 && isDir(args[0]):
		// один каталог: фаза discover попадает в тайминги
		res, err = driver.ScanDir(cmd.Context(), args[0], opts)
	default:
		res, err = driver.ScanPaths(cmd.Context(), files, opts)
	}
	if err != nil {
		return err
	}

	base, _ := os.Getwd()
	ropts := diagfmt.ReportOpts{
		Pretty: diagfmt.PrettyOpts{
			Color:     st.color,
			Context:   1,
			PathMode:  pathMode,
			BaseDir:   base,
			ShowNotes: true,
		},
		JSON: diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			BaseDir:          base,
			Max:              opts.MaxDiagnostics,
			IncludeNotes:     true,
		},
		Occurrences: occurrences,
		Timings:     st.timings,
	}

	out := cmd.OutOrStdout()
	switch st.format {
	case "json":
		err = diagfmt.ScanReportJSON(out, res, ropts)
	default:
		err = diagfmt.ScanReportPretty(out, res, ropts)
	}
	if err != nil {
		return err
	}
	if res.CountAtLeast(failOn) > 0 {
		return errFindings
	}
	return nil
}

// collectScripts expands directories into their script files. Files given
// explicitly are kept even without a script extension.
func collectScripts(args []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			// отсутствующий файл превращается в IO-диагностику при загрузке
			add(filepath.Clean(arg))
			continue
		}
		if !info.IsDir() {
			add(filepath.Clean(arg))
			continue
		}
		list, err := driver.ListFiles(arg)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", arg, err)
		}
		for _, p := range list {
			add(p)
		}
	}
	return files, nil
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
