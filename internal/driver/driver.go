// Package driver orchestrates emission across many files: one print
// session per file, parallelism at whole-file granularity, the output
// cache, and the event stream the progress UI consumes.
package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"scribe/internal/ast"
	"scribe/internal/helpers"
	"scribe/internal/printer"
	"scribe/internal/resolver"
	"scribe/internal/source"
	"scribe/internal/srcmap"
	"scribe/internal/transform"
)

// SourceExt is the extension of lowered-language input files.
const SourceExt = ".src"

// Stage labels one step of a file's progress through the driver.
type Stage uint8

const (
	StagePrint Stage = iota
	StageCached
	StageDone
	StageFailed
)

var stageNames = [...]string{
	StagePrint:  "print",
	StageCached: "cached",
	StageDone:   "done",
	StageFailed: "failed",
}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "stage(?)"
}

// Event is one progress notification. Index and Total describe the batch
// position for progress rendering.
type Event struct {
	Path  string
	Index int
	Total int
	Stage Stage
	Err   error
}

// Observer receives events. It may be called from multiple goroutines and
// must be safe for concurrent use.
type Observer func(Event)

// Frontend builds the lowered tree for one loaded file into the given
// builder. The driver calls it once per file, never concurrently for the
// same builder.
type Frontend func(ctx context.Context, b *ast.Builder, file *source.File) (ast.NodeID, error)

// Options configures a Driver. The hook functions in Hooks are shared
// across files and must be stateless.
type Options struct {
	Printer  printer.Options
	Resolver resolver.Interface
	Helpers  *helpers.Registry
	Hooks    transform.Options
	Jobs     int
	Cache    *Cache
	Observer Observer
}

// FileResult is one emitted file.
type FileResult struct {
	Path     string
	Text     string
	Mappings []srcmap.Mapping
	Cached   bool
}

// Driver runs the emission backend over batches of files.
type Driver struct {
	opts     Options
	frontend Frontend
	printer  *printer.Printer
}

func New(frontend Frontend, opts Options) *Driver {
	return &Driver{
		opts:     opts,
		frontend: frontend,
		printer:  printer.New(opts.Printer, opts.Resolver, opts.Helpers),
	}
}

func (d *Driver) notify(ev Event) {
	if d.opts.Observer != nil {
		d.opts.Observer(ev)
	}
}

// EmitFile runs one file through the cache, the frontend, and one print
// session. Builder and transform context are created here and never
// shared, so every file pass is single-threaded by construction.
func (d *Driver) EmitFile(ctx context.Context, fileSet *source.FileSet, path string, fileID source.FileID) (FileResult, error) {
	file := fileSet.Get(fileID)
	if file == nil {
		return FileResult{}, fmt.Errorf("driver: unknown file %q", path)
	}

	key := EmitKey(file.Content, d.opts.Printer)
	if text, mappings, ok, err := d.opts.Cache.Get(key); err != nil {
		return FileResult{}, fmt.Errorf("driver: %s: %w", path, err)
	} else if ok {
		return FileResult{Path: path, Text: text, Mappings: mappings, Cached: true}, nil
	}

	b := ast.NewBuilder(ast.Hints{})
	root, err := d.frontend(ctx, b, file)
	if err != nil {
		return FileResult{}, fmt.Errorf("driver: %s: %w", path, err)
	}

	tctx := transform.NewContext(b, d.opts.Hooks)
	res, err := d.printer.PrintFile(tctx, file, root)
	if err != nil {
		return FileResult{}, fmt.Errorf("driver: %s: %w", path, err)
	}

	if err := d.opts.Cache.Put(key, res.Text, res.Mappings); err != nil {
		return FileResult{}, fmt.Errorf("driver: %s: %w", path, err)
	}
	return FileResult{Path: path, Text: res.Text, Mappings: res.Mappings}, nil
}

// EmitPaths emits every path in order. Files load serially into one file
// set, then emission runs in parallel with whole files as the unit of
// work; results keep the input ordering regardless of completion order.
func (d *Driver) EmitPaths(ctx context.Context, paths []string) ([]FileResult, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	fileSet := source.NewFileSet()
	fileIDs := make(map[string]source.FileID, len(paths))
	loadErrors := make(map[string]error, len(paths))
	for _, path := range paths {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := d.opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine owns a distinct index, so no mutex is needed.
	results := make([]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			d.notify(Event{Path: path, Index: i, Total: len(paths), Stage: StagePrint})
			if loadErr, failed := loadErrors[path]; failed {
				err := fmt.Errorf("driver: %s: %w", path, loadErr)
				d.notify(Event{Path: path, Index: i, Total: len(paths), Stage: StageFailed, Err: err})
				return err
			}

			res, err := d.EmitFile(gctx, fileSet, path, fileIDs[path])
			if err != nil {
				d.notify(Event{Path: path, Index: i, Total: len(paths), Stage: StageFailed, Err: err})
				return err
			}
			results[i] = res

			stage := StageDone
			if res.Cached {
				stage = StageCached
			}
			d.notify(Event{Path: path, Index: i, Total: len(paths), Stage: stage})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// EmitDir emits every input file under dir, in sorted path order.
func (d *Driver) EmitDir(ctx context.Context, dir string) ([]FileResult, error) {
	paths, err := ListFiles(dir)
	if err != nil {
		return nil, err
	}
	return d.EmitPaths(ctx, paths)
}

// ListFiles returns the sorted list of input files under dir.
func ListFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Sorted for a deterministic batch order.
	sort.Strings(files)
	return files, nil
}
