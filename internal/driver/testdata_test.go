package driver

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"jskw/internal/diag"
	"jskw/internal/source"
	"jskw/internal/token"
)

func TestScanRepositoryTestdata(t *testing.T) {
	dir := filepath.Join("..", "..", "testdata", "scripts")
	res, err := ScanDir(context.Background(), dir, Options{DetectStrict: true, CrossCheck: true})
	if err != nil {
		t.Fatal(err)
	}

	got := map[string][]diag.Code{}
	modes := map[string]token.Mode{}
	for i := range res.Files {
		f := &res.Files[i]
		name := filepath.Base(f.Path)
		got[name] = codes(f)
		modes[name] = f.Mode
	}
	want := map[string][]diag.Code{
		"broken.mjs": {diag.KwReservedBinding, diag.KwLiteralAsBinding},
		"sloppy.js":  {diag.KwStrictOnlyBinding, diag.KwStrictOnlyBinding},
		"strict.js":  {diag.KwReservedBinding, diag.KwReservedBinding},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("diagnostics mismatch (-want +got):\n%s", diff)
	}
	if modes["strict.js"] != token.ModeStrict || modes["sloppy.js"] != token.ModeSloppy {
		t.Fatalf("unexpected modes: %v", modes)
	}
	if _, _, errs := res.Totals(); errs != 4 {
		t.Fatalf("errors = %d, want 4", errs)
	}
}

func TestCountAtLeast(t *testing.T) {
	res, err := ScanDir(context.Background(), filepath.Join("..", "..", "testdata", "scripts"), Options{DetectStrict: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := res.CountAtLeast(diag.SevError); got != 4 {
		t.Fatalf("errors = %d, want 4", got)
	}
	if got := res.CountAtLeast(diag.SevWarning); got != 6 {
		t.Fatalf("warnings and errors = %d, want 6", got)
	}
}

func TestCountAtLeastSingleError(t *testing.T) {
	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.KwReservedBinding, source.Span{}, "reserved"))
	res := &ScanResult{Files: []FileResult{{Bag: bag}}}
	for _, sev := range []diag.Severity{diag.SevInfo, diag.SevWarning, diag.SevError} {
		if got := res.CountAtLeast(sev); got != 1 {
			t.Fatalf("CountAtLeast(%s) = %d, want 1", sev, got)
		}
	}
}
