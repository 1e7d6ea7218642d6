package diagfmt

import (
	"fmt"
	"io"
	"sort"

	"jskw/internal/driver"
	"jskw/internal/observ"
	"jskw/internal/token"
)

// ReportOpts configures scan report rendering.
type ReportOpts struct {
	Pretty PrettyOpts
	JSON   JSONOpts
	// Occurrences lists every word found, not only the diagnostics.
	Occurrences bool
	Timings     bool
}

type OccurrenceJSON struct {
	Word     string       `json:"word"`
	Tier     string       `json:"tier"`
	Reserved bool         `json:"reserved"`
	Location LocationJSON `json:"location"`
}

type FileJSON struct {
	Path        string           `json:"path"`
	Mode        string           `json:"mode"`
	Cached      bool             `json:"cached,omitempty"`
	Occurrences []OccurrenceJSON `json:"occurrences,omitempty"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
}

type SummaryJSON struct {
	Files    int            `json:"files"`
	Words    int            `json:"words"`
	Reserved int            `json:"reserved"`
	Errors   int            `json:"errors"`
	ByWord   map[string]int `json:"by_word,omitempty"`
}

type ScanJSON struct {
	Files   []FileJSON     `json:"files"`
	Summary SummaryJSON    `json:"summary"`
	Timings *observ.Report `json:"timings,omitempty"`
}

// BuildScanJSON formats res without serializing it.
func BuildScanJSON(res *driver.ScanResult, opts ReportOpts) ScanJSON {
	out := ScanJSON{Files: make([]FileJSON, 0, len(res.Files)), Summary: summarize(res)}
	for i := range res.Files {
		f := &res.Files[i]
		fj := FileJSON{
			Path:        formatPath(f.Path, opts.JSON.PathMode, opts.JSON.BaseDir),
			Mode:        f.Mode.String(),
			Cached:      f.Cached,
			Diagnostics: BuildDiagnostics(f.Bag.Items(), res.FileSet, f.Path, opts.JSON),
		}
		if opts.Occurrences {
			fj.Occurrences = make([]OccurrenceJSON, len(f.Occurrences))
			for j, o := range f.Occurrences {
				fj.Occurrences[j] = OccurrenceJSON{
					Word:     o.Word.String(),
					Tier:     o.Tier.String(),
					Reserved: o.Reserved,
					Location: makeLocation(o.Span, res.FileSet, f.Path, opts.JSON),
				}
			}
		}
		out.Files = append(out.Files, fj)
	}
	if opts.Timings {
		t := res.Timing
		out.Timings = &t
	}
	return out
}

func summarize(res *driver.ScanResult) SummaryJSON {
	words, reserved, errs := res.Totals()
	s := SummaryJSON{Files: len(res.Files), Words: words, Reserved: reserved, Errors: errs}
	for i := range res.Files {
		for _, o := range res.Files[i].Occurrences {
			if o.Reserved {
				if s.ByWord == nil {
					s.ByWord = make(map[string]int)
				}
				s.ByWord[o.Word.String()]++
			}
		}
	}
	return s
}

// ScanReportJSON writes res as indented JSON.
func ScanReportJSON(w io.Writer, res *driver.ScanResult, opts ReportOpts) error {
	return writeJSON(w, BuildScanJSON(res, opts))
}

// ScanReportPretty writes diagnostics per file, optionally the word
// listing, and a one-line summary.
func ScanReportPretty(w io.Writer, res *driver.ScanResult, opts ReportOpts) error {
	p := newPalette(opts.Pretty.Color)
	for i := range res.Files {
		f := &res.Files[i]
		f.Bag.Sort()
		if err := Pretty(w, f.Bag.Items(), res.FileSet, f.Path, opts.Pretty); err != nil {
			return err
		}
		if !opts.Occurrences {
			continue
		}
		for _, o := range f.Occurrences {
			loc, _, _ := locate(o.Span, res.FileSet, f.Path, opts.Pretty)
			mark := p.dim.Sprint("not reserved")
			if o.Reserved {
				mark = p.warn.Sprint("reserved")
			}
			if _, err := fmt.Fprintf(w, "%s: %-12s %-22s %s\n", loc, o.Word, o.Tier, mark); err != nil {
				return err
			}
		}
	}

	s := summarize(res)
	words := make([]string, 0, len(s.ByWord))
	for word := range s.ByWord {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		if s.ByWord[words[i]] != s.ByWord[words[j]] {
			return s.ByWord[words[i]] > s.ByWord[words[j]]
		}
		return words[i] < words[j]
	})
	status := p.caret
	if s.Errors > 0 {
		status = p.err
	}
	line := fmt.Sprintf("%d files, %d words, %d reserved, %s", s.Files, s.Words, s.Reserved,
		status.Sprintf("%d errors", s.Errors))
	if len(words) > 0 {
		top := words[:min(len(words), 5)]
		line += " (top:"
		for _, word := range top {
			line += fmt.Sprintf(" %s=%d", word, s.ByWord[word])
		}
		line += ")"
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	if opts.Timings {
		if _, err := io.WriteString(w, res.Timing.Summary()); err != nil {
			return err
		}
	}
	return nil
}

// TableRow is one entry of the reserved-word table as rendered by `jskw table`.
type TableRow struct {
	Spelling string `json:"spelling"`
	Tier     string `json:"tier"`
	Sloppy   bool   `json:"reserved_sloppy"`
	Strict   bool   `json:"reserved_strict"`
}

func tableRows(words []token.Word) []TableRow {
	rows := make([]TableRow, len(words))
	for i, w := range words {
		rows[i] = TableRow{
			Spelling: w.String(),
			Tier:     w.Tier().String(),
			Sloppy:   w.ReservedIn(token.ModeSloppy),
			Strict:   w.ReservedIn(token.ModeStrict),
		}
	}
	return rows
}

// TableJSON writes words as a JSON array.
func TableJSON(w io.Writer, words []token.Word) error {
	return writeJSON(w, tableRows(words))
}

// TablePretty writes words as an aligned table.
func TablePretty(w io.Writer, words []token.Word, colorOn bool) error {
	p := newPalette(colorOn)
	yes := func(b bool) string {
		if b {
			return p.warn.Sprint("yes")
		}
		return p.dim.Sprint("no ")
	}
	if _, err := fmt.Fprintf(w, "%-12s %-22s %-6s %s\n", "SPELLING", "TIER", "SLOPPY", "STRICT"); err != nil {
		return err
	}
	for _, r := range tableRows(words) {
		if _, err := fmt.Fprintf(w, "%-12s %-22s %s    %s\n", r.Spelling, r.Tier, yes(r.Sloppy), yes(r.Strict)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d words\n", len(words))
	return err
}
