package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// FileSet manages a collection of source files and resolves spans to
// line/column positions.
type FileSet struct {
	files   []File
	index   map[string]FileID // path -> id
	baseDir string
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0),
		index: make(map[string]FileID),
	}
}

// NewFileSetWithBase creates a FileSet with a base directory for
// relative path rendering.
func NewFileSetWithBase(baseDir string) *FileSet {
	return &FileSet{
		files:   make([]File, 0),
		index:   make(map[string]FileID),
		baseDir: baseDir,
	}
}

// BaseDir returns the base directory, falling back to the working
// directory when none was set.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fileSet.baseDir
}

// Add stores a file from normalized bytes, computes LineIdx and Hash, and
// returns a new FileID. A file with the same path gets a fresh ID; the
// index always points at the latest version.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	hash := sha256.Sum256(content)
	lineIdx := buildLineIndex(content)
	normalizedPath := normalizePath(path)

	lenFiles, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(lenFiles)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    normalizedPath,
		Content: content,
		LineIdx: lineIdx,
		Hash:    hash,
		Flags:   flags,
	})
	fileSet.index[normalizedPath] = id
	return id
}

// Load reads a file from disk, normalizes CRLF/BOM, and calls Add.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fileSet.Add(path, content, flags), nil
}

// AddVirtual adds an in-memory file (stdin, test, or generated).
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

// Get returns the file metadata for the given ID.
func (fileSet *FileSet) Get(id FileID) *File {
	return &fileSet.files[id]
}

// GetByPath returns the file for a path previously loaded into this set.
func (fileSet *FileSet) GetByPath(path string) (*File, bool) {
	if id, ok := fileSet.index[normalizePath(path)]; ok {
		return &fileSet.files[id], true
	}
	return nil, false
}

// Len returns the number of files in the set.
func (fileSet *FileSet) Len() int {
	return len(fileSet.files)
}

// Resolve converts a span into line and column positions.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fileSet.files[span.File]
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// GetLine returns the 1-based line from the file, without the trailing
// newline. Out-of-range line numbers yield an empty string.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}

	var start, end, lenLineIdx, lenContent uint32
	var err error
	lenLineIdx, err = safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	lenContent, err = safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}

	switch {
	case lineNum == 1:
		start = 0
	case (lineNum - 2) < lenLineIdx:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}

	if (lineNum - 1) < lenLineIdx {
		end = f.LineIdx[lineNum-1]
	} else {
		end = lenContent
	}

	if start >= lenContent {
		return ""
	}
	if end > lenContent {
		end = lenContent
	}

	return string(f.Content[start:end])
}

// Dir returns the directory of the file's path. Relative url targets in
// documents are resolved against it.
func (f *File) Dir() string {
	return filepath.Dir(f.Path)
}

// Text returns the source text covered by span.
func (f *File) Text(span Span) string {
	if span.Start >= span.End {
		return ""
	}
	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	if span.Start >= lenContent {
		return ""
	}
	end := span.End
	if end > lenContent {
		end = lenContent
	}
	return string(f.Content[span.Start:end])
}
