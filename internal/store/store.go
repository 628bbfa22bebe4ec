// Package store reads and writes the on-disk context layout: the fixed
// project documents plus the hierarchical snapshot tree.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/notesmgr/notectx/internal/budget"
)

// DocumentKind names one of the fixed project documents.
type DocumentKind string

const (
	DocReadme       DocumentKind = "readme"
	DocArchitecture DocumentKind = "architecture"
	DocGlossary     DocumentKind = "glossary"
)

// DocumentKinds returns the fixed document kinds in assembly order.
func DocumentKinds() []DocumentKind {
	return []DocumentKind{DocReadme, DocArchitecture, DocGlossary}
}

// Document holds the content and metadata of one project document.
// Documents are immutable once loaded and reloaded on every request.
type Document struct {
	Kind    DocumentKind
	Path    string
	Content string
	Tokens  int
	ModTime time.Time
}

// Store resolves documents and snapshots against a filesystem:
//
//	<root>/README.md
//	<contextDir>/architecture.md
//	<contextDir>/glossary.md
//	<contextDir>/snapshots/<type>/<level>/*.md
//
// A relative contextDir resolves against root. The filesystem is abstracted
// so tests can run against an in-memory tree.
type Store struct {
	fs         afero.Fs
	root       string
	contextDir string
}

// New builds a Store over fsys rooted at root.
func New(fsys afero.Fs, root, contextDir string) *Store {
	if !filepath.IsAbs(contextDir) {
		contextDir = filepath.Join(root, contextDir)
	}
	return &Store{fs: fsys, root: root, contextDir: contextDir}
}

// Root returns the project root path.
func (s *Store) Root() string { return s.root }

// ContextDir returns the resolved context directory path.
func (s *Store) ContextDir() string { return s.contextDir }

// DocumentPath returns where the given document kind lives on disk. The
// readme belongs to the project root; the rest to the context directory.
func (s *Store) DocumentPath(kind DocumentKind) string {
	switch kind {
	case DocReadme:
		return filepath.Join(s.root, "README.md")
	case DocArchitecture:
		return filepath.Join(s.contextDir, "architecture.md")
	case DocGlossary:
		return filepath.Join(s.contextDir, "glossary.md")
	}
	return ""
}

// Document loads one project document. A missing file is not an error: ok is
// false and the caller decides how to represent the absence.
func (s *Store) Document(kind DocumentKind) (Document, bool, error) {
	path := s.DocumentPath(kind)
	if path == "" {
		return Document{}, false, fmt.Errorf("unknown document kind: %s", kind)
	}
	info, err := s.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Document{}, false, nil
		}
		return Document{}, false, fmt.Errorf("stat %s: %w", path, err)
	}
	b, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return Document{}, false, fmt.Errorf("read %s: %w", path, err)
	}
	content := string(b)
	return Document{
		Kind:    kind,
		Path:    path,
		Content: content,
		Tokens:  budget.Estimate(content),
		ModTime: info.ModTime(),
	}, true, nil
}
