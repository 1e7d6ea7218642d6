package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"

	"jskw/internal/diag"
	"jskw/internal/observ"
	"jskw/internal/source"
	"jskw/internal/trace"
)

// ScanResult aggregates a multi-file scan.
type ScanResult struct {
	FileSet *source.FileSet
	Files   []FileResult // same order as the input paths
	Timing  observ.Report
}

// Totals sums occurrences, reserved occurrences and error diagnostics.
func (r *ScanResult) Totals() (words, reserved, errs int) {
	for i := range r.Files {
		f := &r.Files[i]
		words += len(f.Occurrences)
		reserved += f.ReservedCount()
		errs += f.Bag.Count(diag.SevError)
	}
	return words, reserved, errs
}

// HasErrors reports whether any file produced an error diagnostic.
func (r *ScanResult) HasErrors() bool {
	for i := range r.Files {
		if r.Files[i].Bag.HasErrors() {
			return true
		}
	}
	return false
}

// CountAtLeast counts diagnostics of severity sev or worse across all files.
func (r *ScanResult) CountAtLeast(sev diag.Severity) int {
	n := 0
	for i := range r.Files {
		n += r.Files[i].Bag.Count(sev)
	}
	return n
}

var scriptExts = map[string]bool{".js": true, ".mjs": true, ".cjs": true}

// IsScript reports whether path has a JavaScript source extension.
func IsScript(path string) bool {
	return scriptExts[strings.ToLower(filepath.Ext(path))]
}

// ListFiles возвращает отсортированный список всех *.js, *.mjs, *.cjs файлов
// в директории. node_modules, скрытые каталоги и пути из .gitignore
// корня пропускаются.
func ListFiles(dir string) ([]string, error) {
	ignorer, err := loadGitignore(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == dir {
			return nil
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			name := d.Name()
			if name == "node_modules" || strings.HasPrefix(name, ".") || ignored(ignorer, rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsScript(path) && !ignored(ignorer, rel) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// loadGitignore compiles dir/.gitignore; nil when the file does not exist.
func loadGitignore(dir string) (*ignore.GitIgnore, error) {
	path := filepath.Join(dir, ".gitignore")
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return gi, nil
}

func ignored(gi *ignore.GitIgnore, rel string) bool {
	return gi != nil && gi.MatchesPath(rel)
}

// ScanDir classifies every script under dir in parallel.
func ScanDir(ctx context.Context, dir string, opts Options) (*ScanResult, error) {
	timer := observ.NewTimer()
	idx := timer.Begin("discover")
	files, err := ListFiles(dir)
	timer.End(idx, strconv.Itoa(len(files))+" files")
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	return scanPaths(ctx, files, opts, timer)
}

// ScanPaths classifies the given files in parallel, keeping their order.
func ScanPaths(ctx context.Context, paths []string, opts Options) (*ScanResult, error) {
	return scanPaths(ctx, paths, opts, observ.NewTimer())
}

func scanPaths(ctx context.Context, paths []string, opts Options, timer *observ.Timer) (*ScanResult, error) {
	ctx, root := trace.StartSpan(ctx, trace.ScopeDriver, "scan")
	defer root.End(strconv.Itoa(len(paths)) + " files")

	for _, p := range paths {
		opts.Progress.emit(p, StageLoad, StatusQueued)
	}

	// FileSet не потокобезопасен: загружаем последовательно
	idx := timer.Begin("load")
	fileSet := source.NewFileSet()
	fileIDs := make([]source.FileID, len(paths))
	loadErrors := make([]error, len(paths))
	for i, path := range paths {
		id, err := fileSet.LoadWith(path, source.LoadOptions{NFC: opts.NFC})
		if err != nil {
			loadErrors[i] = err
			continue
		}
		fileIDs[i] = id
	}
	timer.End(idx, "")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FileResult, len(paths))

	idx = timer.Begin("scan")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(paths))))
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if loadErr := loadErrors[i]; loadErr != nil {
				bag := diag.NewBag(opts.maxDiagnostics())
				bag.Add(diag.Newf(diag.IOLoadFileError, source.Span{}, "failed to load file: %v", loadErr))
				results[i] = FileResult{Path: path, Mode: opts.Mode, Bag: bag}
				opts.Progress.emit(path, StageLoad, StatusError)
				return nil
			}
			results[i] = *classifyCached(gctx, fileSet.Get(fileIDs[i]), opts)
			return nil
		})
	}
	err := g.Wait()
	timer.End(idx, "")
	if err != nil {
		return nil, err
	}
	return &ScanResult{FileSet: fileSet, Files: results, Timing: timer.Report()}, nil
}

func classifyCached(ctx context.Context, file *source.File, opts Options) *FileResult {
	opts.Progress.emit(file.Path, StageScan, StatusWorking)
	useCache := opts.Cache != nil && !opts.KeepTokens
	var key Digest
	if useCache {
		key = CacheKey(file, opts)
		var payload DiskPayload
		ok, err := opts.Cache.Get(key, &payload)
		if err == nil && ok {
			opts.Progress.emit(file.Path, StageScan, StatusCached)
			res := fromPayload(&payload, file.ID, opts.maxDiagnostics())
			res.Path = file.Path
			return res
		}
		if err != nil {
			trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache-miss", err.Error())
		}
	}

	res := Classify(ctx, file, opts)
	if useCache {
		if err := opts.Cache.Put(key, toPayload(res)); err != nil {
			res.Bag.Add(diag.Newf(diag.IOCacheError, source.Span{File: file.ID}, "cache write failed: %v", err))
		}
	}
	status := StatusDone
	if res.Bag.HasErrors() {
		status = StatusError
	}
	opts.Progress.emit(file.Path, StageScan, status)
	return res
}
