package driver

import (
	"qmlcheck/internal/check"
	"qmlcheck/internal/diag"
	"qmlcheck/internal/qml"
	"qmlcheck/internal/source"
)

// CheckFile checks a single file. Sibling *.qml files in the same
// directory (and any ImportDirs) are parsed into the snapshot so
// component references resolve, but only the named file is checked.
// The disk cache is not consulted for single-file runs.
func CheckFile(path string, opts Options) (*source.FileSet, CheckResult, error) {
	env, err := qml.DefaultTypeEnv()
	if err != nil {
		return nil, CheckResult{}, err
	}

	maxDiagnostics := opts.maxDiagnostics()
	fileSet := source.NewFileSet()
	bag := diag.NewBag(maxDiagnostics)

	opts.notify(StageLoad, path)
	fileID, err := fileSet.Load(path)
	if err != nil {
		bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
			"failed to load file: "+err.Error()))
		return fileSet, CheckResult{Path: path, Bag: bag}, nil
	}

	opts.notify(StageParse, path)
	file := fileSet.Get(fileID)
	doc := parseOne(file, bag, maxDiagnostics)

	snapshot := qml.NewSnapshot()
	snapshot.Insert(doc)
	dirs := append([]string{file.Dir()}, opts.ImportDirs...)
	if err := loadImportDirs(snapshot, fileSet, dirs, maxDiagnostics); err != nil {
		return fileSet, CheckResult{Path: path, FileID: fileID, Doc: doc, Bag: bag}, err
	}

	opts.notify(StageCheck, path)
	checker := check.New(doc, qml.NewContext(env, snapshot), check.Options{
		IgnoreTypeErrors:    opts.IgnoreUnknownTypes,
		CheckScriptBindings: opts.CheckScriptBindings,
		MaxDiagnostics:      maxDiagnostics,
	})
	for _, d := range checker.Run() {
		bag.Add(d)
	}
	opts.notify(StageDone, path)

	return fileSet, CheckResult{Path: path, FileID: fileID, Doc: doc, Bag: bag}, nil
}
