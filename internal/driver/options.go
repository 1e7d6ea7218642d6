package driver

import (
	"fmt"

	"jskw/internal/ident"
	"jskw/internal/token"
)

// Options configure Classify and ScanDir.
type Options struct {
	// Mode is the starting mode for every file.
	Mode token.Mode
	// DetectStrict upgrades a file to strict mode when its directive
	// prologue contains "use strict".
	DetectStrict bool
	// Matcher selects the reserved-word veto: automaton or combinators.
	Matcher ident.Veto
	// CrossCheck runs both matchers on every word and reports disagreements.
	CrossCheck     bool
	MaxDiagnostics int
	// KeepTokens retains the full token stream in FileResult.Tokens.
	KeepTokens bool
	NFC        bool

	Jobs     int
	Cache    *DiskCache
	Progress ProgressSink
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 100
	}
	return o.MaxDiagnostics
}

// fingerprint covers every option that changes a FileResult.
func (o Options) fingerprint() string {
	return fmt.Sprintf("v%d|%s|%t|%s|%t|%d|%t",
		diskCacheSchemaVersion, o.Mode, o.DetectStrict, o.Matcher, o.CrossCheck, o.maxDiagnostics(), o.NFC)
}
