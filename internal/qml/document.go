package qml

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"qmlcheck/internal/ast"
	"qmlcheck/internal/source"
)

// Document is one parsed source file: the immutable AST root plus the
// file it came from. The path is used to resolve relative url targets.
type Document struct {
	File    *source.File
	Program *ast.Program
}

func NewDocument(file *source.File, program *ast.Program) *Document {
	return &Document{File: file, Program: program}
}

// Path returns the document's file path.
func (d *Document) Path() string {
	return d.File.Path
}

// Dir returns the directory containing the document.
func (d *Document) Dir() string {
	return filepath.Dir(d.File.Path)
}

// ComponentName returns the type name this document exports to other
// documents (capitalised basename without extension), or "" when the
// basename does not form a component name.
func (d *Document) ComponentName() string {
	base := filepath.Base(d.File.Path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(name)
	if !unicode.IsUpper(r) {
		return ""
	}
	return name
}

// Snapshot is the set of currently known parsed documents, used for
// cross-document component resolution. Read-only during checks.
type Snapshot struct {
	docs  map[string]*Document
	order []string
}

func NewSnapshot() *Snapshot {
	return &Snapshot{docs: make(map[string]*Document)}
}

// Insert adds or replaces a document by path.
func (s *Snapshot) Insert(doc *Document) {
	if doc == nil {
		return
	}
	path := doc.Path()
	if _, seen := s.docs[path]; !seen {
		s.order = append(s.order, path)
	}
	s.docs[path] = doc
}

// Get returns the document for a path, or nil.
func (s *Snapshot) Get(path string) *Document {
	if s == nil {
		return nil
	}
	return s.docs[path]
}

// Len returns the number of documents in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.docs)
}

// ComponentDocument finds the document exporting the given component
// name, in insertion order.
func (s *Snapshot) ComponentDocument(name string) *Document {
	if s == nil || name == "" {
		return nil
	}
	for _, path := range s.order {
		doc := s.docs[path]
		if doc.ComponentName() == name {
			return doc
		}
	}
	return nil
}
