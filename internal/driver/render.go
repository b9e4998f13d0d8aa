// Package driver orchestrates batch rendering: it collects serialized
// document files, lays each one out in parallel, and writes, checks or
// returns the results.
package driver

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MakakWasTaken/biome/internal/diag"
	"github.com/MakakWasTaken/biome/internal/ir"
	"github.com/MakakWasTaken/biome/internal/printer"
	"github.com/MakakWasTaken/biome/internal/widthcheck"
)

// RenderOptions configures a batch render.
type RenderOptions struct {
	// Check leaves targets untouched; Changed reports whether a write
	// would alter them.
	Check bool
	// Stdout returns output in the results instead of writing targets.
	Stdout bool
	// Printer is the layout configuration for every file.
	Printer printer.Options
	// Jobs caps parallelism; <= 0 means GOMAXPROCS.
	Jobs int
	// MaxDiagnostics bounds each file's diagnostic bag; <= 0 means 100.
	MaxDiagnostics int
	// Cache, when non-nil, short-circuits layout for unchanged inputs.
	Cache *DiskCache
	// Progress, when non-nil, receives per-file stage events.
	Progress ProgressSink
}

// RenderResult captures the outcome for a single document file.
type RenderResult struct {
	// Path is the document file that was rendered.
	Path string
	// Target is the file the output belongs to (Path minus the
	// document suffix).
	Target string
	// Output is the rendered text.
	Output []byte
	// Changed reports whether Output differs from the target's current
	// content (or the target does not exist yet).
	Changed bool
	// Violations lists output lines wider than the budget.
	Violations []widthcheck.Violation
	// Bag holds diagnostics: decode errors and width notices.
	Bag *diag.Bag
	// Err is the fatal error for this file, if any.
	Err error
}

// DocSuffixes are the recognized document file extensions, checked in
// order. ".doc.json" must come before ".doc".
var DocSuffixes = []string{".doc.json", ".doc"}

// TargetPath strips the document suffix. It returns "" when path is not
// a document file.
func TargetPath(path string) string {
	for _, suffix := range DocSuffixes {
		if strings.HasSuffix(path, suffix) && len(path) > len(suffix) {
			return strings.TrimSuffix(path, suffix)
		}
	}
	return ""
}

// RenderPaths renders the document files found under paths (files are
// taken as-is, directories are walked recursively). Results come back in
// sorted path order regardless of scheduling.
func RenderPaths(ctx context.Context, paths []string, opts RenderOptions) ([]RenderResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := opts.Printer.Validate(); err != nil {
		return nil, err
	}

	files, err := collectDocFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("render: no document files found")
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]RenderResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageDecode, Status: StatusQueued})
		g.Go(func(i int, path string) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				results[i] = renderSingle(path, opts)
				return nil
			}
		}(i, path))
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func renderSingle(path string, opts RenderOptions) RenderResult {
	started := time.Now()
	res := RenderResult{Path: path, Target: TargetPath(path)}

	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 100
	}
	res.Bag = diag.NewBag(maxDiag)
	maxWidth := opts.Printer.WithDefaults().MaxWidth

	fail := func(stage Stage, err error) RenderResult {
		res.Err = err
		var decodeErr *ir.Error
		if errors.As(err, &decodeErr) {
			res.Bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     decodeErr.Code,
				Message:  decodeErr.Msg,
				Path:     path,
			})
		}
		emit(opts.Progress, Event{File: path, Stage: stage, Status: StatusError, Err: err, Elapsed: time.Since(started)})
		return res
	}

	emit(opts.Progress, Event{File: path, Stage: StageDecode, Status: StatusWorking})
	data, err := os.ReadFile(path)
	if err != nil {
		return fail(StageDecode, err)
	}

	key := RenderKey(data, opts.Printer)
	var payload DiskPayload
	hit, cacheErr := opts.Cache.Get(key, &payload)
	if cacheErr == nil && hit {
		res.Output = payload.Output
		res.Violations = payload.Violations
	} else {
		emit(opts.Progress, Event{File: path, Stage: StageLayout, Status: StatusWorking})
		root, _, err := ir.Decode(data, ir.DetectFormat(path))
		if err != nil {
			return fail(StageDecode, err)
		}
		printed, err := printer.Print(root, opts.Printer)
		if err != nil {
			return fail(StageLayout, err)
		}
		res.Output = printed.Output
		res.Violations = widthcheck.Scan(res.Output, maxWidth)

		// Cache write failures are not fatal; the render already succeeded.
		_ = opts.Cache.Put(key, &DiskPayload{
			Schema:     diskCacheSchemaVersion,
			Output:     res.Output,
			Violations: res.Violations,
		})
	}

	widthcheck.Collect(res.Bag, path, res.Violations, maxWidth)

	existing, readErr := os.ReadFile(res.Target)
	res.Changed = readErr != nil || !bytesEqual(existing, res.Output)

	if opts.Check || opts.Stdout || !res.Changed {
		emit(opts.Progress, Event{File: path, Stage: StageLayout, Status: StatusDone, Elapsed: time.Since(started)})
		return res
	}

	emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusWorking})
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(res.Target); statErr == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(res.Target, res.Output, mode.Perm()); err != nil {
		return fail(StageWrite, err)
	}
	emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusDone, Elapsed: time.Since(started)})
	return res
}

// ListDocFiles returns the sorted, deduplicated document files found under
// paths. It is the same collection RenderPaths performs.
func ListDocFiles(ctx context.Context, paths []string) ([]string, error) {
	return collectDocFiles(ctx, paths)
}

func collectDocFiles(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if d.IsDir() {
					return nil
				}
				if TargetPath(path) != "" {
					addFile(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		if TargetPath(p) != "" {
			addFile(p)
		}
	}

	sort.Strings(files)
	return files, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
