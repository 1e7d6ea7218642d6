package driver

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"jskw/internal/diag"
	"jskw/internal/source"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func relPaths(t *testing.T, dir string, paths []string) []string {
	t.Helper()
	out := make([]string, len(paths))
	for i, p := range paths {
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			t.Fatal(err)
		}
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func TestListFiles(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"b.mjs":                "",
		"a.js":                 "",
		"sub/c.cjs":            "",
		"node_modules/skip.js": "",
		".git/hook.js":         "",
		"readme.txt":           "",
	})
	files, err := ListFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a.js", "b.mjs", "sub/c.cjs"}
	if diff := cmp.Diff(want, relPaths(t, dir, files)); diff != "" {
		t.Fatalf("files (-want +got):\n%s", diff)
	}
}

func TestListFilesHonorsGitignore(t *testing.T) {
	dir := writeTree(t, map[string]string{
		".gitignore":     "dist/\n*.min.js\n!keep.min.js\n",
		"app.js":         "",
		"app.min.js":     "",
		"keep.min.js":    "",
		"dist/bundle.js": "",
		"src/dist.js":    "",
		"src/lib.min.js": "",
	})
	files, err := ListFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"app.js", "keep.min.js", "src/dist.js"}
	if diff := cmp.Diff(want, relPaths(t, dir, files)); diff != "" {
		t.Fatalf("files (-want +got):\n%s", diff)
	}
}

func TestScanDirWithCache(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.js":  "var class = 1;",
		"b.mjs": "'use strict'; let x = yield;",
	})
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	var mu sync.Mutex
	var events []Event
	opts := Options{
		DetectStrict: true,
		Jobs:         2,
		Cache:        cache,
		Progress: func(ev Event) {
			mu.Lock()
			events = append(events, ev)
			mu.Unlock()
		},
	}

	first, err := ScanDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Files) != 2 || first.Files[0].Cached || first.Files[1].Cached {
		t.Fatalf("first scan: %+v", first.Files)
	}
	words, reserved, errs := first.Totals()
	if words != 4 || reserved != 4 || errs != 1 {
		t.Fatalf("totals = %d/%d/%d", words, reserved, errs)
	}
	if len(first.Timing.Phases) != 3 {
		t.Fatalf("timing phases = %+v", first.Timing.Phases)
	}

	second, err := ScanDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	for i := range second.Files {
		got, want := &second.Files[i], &first.Files[i]
		if !got.Cached {
			t.Fatalf("%s not served from cache", got.Path)
		}
		if diff := cmp.Diff(want.Occurrences, got.Occurrences); diff != "" {
			t.Fatalf("%s occurrences (-first +second):\n%s", got.Path, diff)
		}
		if diff := cmp.Diff(want.Bag.Items(), got.Bag.Items()); diff != "" {
			t.Fatalf("%s diagnostics (-first +second):\n%s", got.Path, diff)
		}
		if got.Mode != want.Mode {
			t.Fatalf("%s mode %s != %s", got.Path, got.Mode, want.Mode)
		}
	}

	cached := 0
	for _, ev := range events {
		if ev.Status == StatusCached {
			cached++
		}
	}
	if cached != 2 {
		t.Fatalf("cached events = %d", cached)
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	third, err := ScanDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.Files[0].Cached {
		t.Fatal("cache survived DropAll")
	}
}

func TestScanPathsLoadError(t *testing.T) {
	res, err := ScanPaths(context.Background(), []string{filepath.Join(t.TempDir(), "missing.js")}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	items := res.Files[0].Bag.Items()
	if len(items) != 1 || items[0].Code != diag.IOLoadFileError {
		t.Fatalf("diagnostics = %+v", items)
	}
	if !res.HasErrors() {
		t.Fatal("HasErrors = false")
	}
}

func TestScanDirCanceled(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.js": "x", "b.js": "y"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ScanDir(ctx, dir, Options{Jobs: 1}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestCacheKeyDependsOnOptions(t *testing.T) {
	fs := writeTree(t, map[string]string{"a.js": "x"})
	res, err := ScanPaths(context.Background(), []string{filepath.Join(fs, "a.js")}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	f := res.FileSet.Get(res.Files[0].FileID)
	if CacheKey(f, Options{}) == CacheKey(f, Options{DetectStrict: true}) {
		t.Fatal("options must change the cache key")
	}
	if CacheKey(f, Options{}) != CacheKey(f, Options{Jobs: 8}) {
		t.Fatal("jobs must not change the cache key")
	}
}

func TestCacheKeySeparatesModules(t *testing.T) {
	fs := source.NewFileSet()
	js := fs.Get(fs.AddVirtual("a.js", []byte("var yield;")))
	mjs := fs.Get(fs.AddVirtual("a.mjs", []byte("var yield;")))
	if CacheKey(js, Options{}) == CacheKey(mjs, Options{}) {
		t.Fatal("script and module with equal content must not share a cache entry")
	}
}
