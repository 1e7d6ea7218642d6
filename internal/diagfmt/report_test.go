package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"jskw/internal/driver"
	"jskw/internal/token"
)

func TestScanReportJSON(t *testing.T) {
	res := scanOf(t, map[string]string{
		"a.js": "if (x) return null",
		"b.js": "var class;",
	}, driver.Options{})
	var buf bytes.Buffer
	if err := ScanReportJSON(&buf, res, ReportOpts{Occurrences: true}); err != nil {
		t.Fatal(err)
	}
	var got ScanJSON
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Summary.Files != 2 || got.Summary.Reserved != 5 || got.Summary.Errors != 1 {
		t.Fatalf("summary = %+v", got.Summary)
	}
	if got.Summary.ByWord["if"] != 1 || got.Summary.ByWord["class"] != 1 {
		t.Fatalf("by word = %v", got.Summary.ByWord)
	}
	a := got.Files[0]
	if a.Path != "a.js" || len(a.Occurrences) != 3 || a.Occurrences[2].Word != "null" || a.Occurrences[2].Tier != "literal" {
		t.Fatalf("file a = %+v", a)
	}
	if len(got.Files[1].Diagnostics) != 1 || got.Timings != nil {
		t.Fatalf("file b = %+v", got.Files[1])
	}
}

func TestScanReportPrettySummary(t *testing.T) {
	res := scanOf(t, map[string]string{"a.js": "if (a) if (b) return"}, driver.Options{})
	var buf bytes.Buffer
	if err := ScanReportPretty(&buf, res, ReportOpts{Occurrences: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "1 files, 3 words, 3 reserved, 0 errors (top: if=2 return=1)") {
		t.Fatalf("summary missing:\n%s", out)
	}
	if !strings.Contains(out, "a.js:1:1: if") {
		t.Fatalf("occurrence listing missing:\n%s", out)
	}
}

func TestTableRendering(t *testing.T) {
	entries := token.Members(token.TierFutureReservedStrict)
	var buf bytes.Buffer
	if err := TableJSON(&buf, entries); err != nil {
		t.Fatal(err)
	}
	var rows []TableRow
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 17 {
		t.Fatalf("rows = %d", len(rows))
	}
	for _, r := range rows {
		if !r.Strict {
			t.Fatalf("%s must be reserved in strict mode", r.Spelling)
		}
		if lax := r.Tier == "future-reserved-lax"; r.Sloppy != lax {
			t.Fatalf("%s sloppy=%v tier=%s", r.Spelling, r.Sloppy, r.Tier)
		}
	}

	buf.Reset()
	if err := TablePretty(&buf, entries, false); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(buf.String(), "17 words\n") {
		t.Fatalf("pretty table:\n%s", buf.String())
	}
}
