package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"qmlcheck/internal/check"
	"qmlcheck/internal/diag"
	"qmlcheck/internal/lexer"
	"qmlcheck/internal/parser"
	"qmlcheck/internal/qml"
	"qmlcheck/internal/source"
)

// ListFiles returns the sorted list of *.qml files CheckDir would
// process. The progress UI uses it to pre-populate its file table.
func ListFiles(dir string) ([]string, error) {
	return listQMLFiles(dir)
}

// listQMLFiles returns the sorted list of *.qml files under dir.
func listQMLFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".qml") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Deterministic order.
	sort.Strings(files)
	return files, nil
}

// parseOne lexes and parses a single loaded file into a document,
// collecting lexer and parser diagnostics into bag.
func parseOne(file *source.File, bag *diag.Bag, maxDiagnostics int) *qml.Document {
	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		maxErrors = check.DefaultMaxDiagnostics
	}

	reporter := (&lexer.ReporterAdapter{Bag: bag}).Reporter()
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	program := parser.ParseDocument(lx, parser.Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	})
	return qml.NewDocument(file, program)
}

// CheckDir checks every *.qml file under dir. The run has three phases:
// parallel parse, sequential snapshot assembly, parallel check. The
// snapshot and type environment are read-only during the check phase,
// so workers share them; each worker gets its own Context and Checker.
func CheckDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []CheckResult, error) {
	files, err := listQMLFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	env, err := qml.DefaultTypeEnv()
	if err != nil {
		return nil, nil, err
	}

	maxDiagnostics := opts.maxDiagnostics()

	// Preload everything up front; load failures become per-file I/O
	// diagnostics rather than aborting the run.
	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))

	for _, path := range files {
		opts.notify(StageLoad, path)
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Result indices are unique per goroutine, no mutex needed.
	results := make([]CheckResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)

			if loadErr, failed := loadErrors[path]; failed {
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
					"failed to load file: "+loadErr.Error()))
				results[i] = CheckResult{Path: path, Bag: bag}
				return nil
			}

			opts.notify(StageParse, path)
			fileID := fileIDs[path]
			doc := parseOne(fileSet.Get(fileID), bag, maxDiagnostics)
			results[i] = CheckResult{Path: path, FileID: fileID, Doc: doc, Bag: bag}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}

	// Snapshot assembly is sequential: insertion order defines component
	// resolution order.
	snapshot := qml.NewSnapshot()
	for i := range results {
		if results[i].Doc != nil {
			snapshot.Insert(results[i].Doc)
		}
	}
	if err := loadImportDirs(snapshot, fileSet, opts.ImportDirs, maxDiagnostics); err != nil {
		return fileSet, results, err
	}

	snapshotDigest := snapshotDigestOf(fileSet, results)

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i := range results {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res := &results[i]
			if res.Doc == nil {
				return nil
			}

			key := cacheKey(fileSet.Get(res.FileID).Hash, snapshotDigest, opts)
			if hit, err := loadCachedResult(opts.Cache, key, res); err == nil && hit {
				opts.notify(StageCached, res.Path)
				return nil
			}

			opts.notify(StageCheck, res.Path)
			checker := check.New(res.Doc, qml.NewContext(env, snapshot), check.Options{
				IgnoreTypeErrors:    opts.IgnoreUnknownTypes,
				CheckScriptBindings: opts.CheckScriptBindings,
				MaxDiagnostics:      maxDiagnostics,
			})
			for _, d := range checker.Run() {
				res.Bag.Add(d)
			}

			storeCachedResult(opts.Cache, key, res)
			opts.notify(StageDone, res.Path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}

	return fileSet, results, nil
}

// loadImportDirs parses documents from extra directories into the
// snapshot. They contribute components only; their diagnostics are
// dropped.
func loadImportDirs(snapshot *qml.Snapshot, fileSet *source.FileSet, dirs []string, maxDiagnostics int) error {
	for _, dir := range dirs {
		files, err := listQMLFiles(dir)
		if err != nil {
			return err
		}
		for _, path := range files {
			if _, already := fileSet.GetByPath(path); already {
				continue
			}
			fileID, err := fileSet.Load(path)
			if err != nil {
				continue
			}
			bag := diag.NewBag(maxDiagnostics)
			snapshot.Insert(parseOne(fileSet.Get(fileID), bag, maxDiagnostics))
		}
	}
	return nil
}
