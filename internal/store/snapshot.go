package store

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/notesmgr/notectx/internal/budget"
)

// SnapshotType partitions snapshots by subject.
type SnapshotType string

const (
	TypeGeneral        SnapshotType = "general"
	TypeArchitecture   SnapshotType = "architecture"
	TypeKnowledgeGraph SnapshotType = "knowledge_graph"
	TypeWorkflow       SnapshotType = "workflow"
)

// DefaultTypes returns the built-in snapshot types in priority order.
func DefaultTypes() []SnapshotType {
	return []SnapshotType{TypeGeneral, TypeArchitecture, TypeKnowledgeGraph, TypeWorkflow}
}

// HierarchyLevel partitions snapshots by depth.
type HierarchyLevel string

const (
	LevelSummary  HierarchyLevel = "summary"
	LevelStandard HierarchyLevel = "standard"
	LevelDetailed HierarchyLevel = "detailed"
)

// Levels returns the hierarchy levels in order of increasing depth.
func Levels() []HierarchyLevel {
	return []HierarchyLevel{LevelSummary, LevelStandard, LevelDetailed}
}

// Snapshot is the newest snapshot file under one (type, level) leaf.
type Snapshot struct {
	Type    SnapshotType
	Level   HierarchyLevel
	Path    string
	Content string
	Tokens  int
	ModTime time.Time
}

func (s *Store) snapshotDir(typ SnapshotType, level HierarchyLevel) string {
	return filepath.Join(s.contextDir, "snapshots", string(typ), string(level))
}

// LatestSnapshot returns the most recently modified *.md file under the
// (typ, level) leaf. ok is false when the leaf directory or any snapshot
// file is missing, which callers treat as "omit", not as an error.
// Modification-time ties resolve to the lexicographically first name, so
// repeated loads pick the same file.
func (s *Store) LatestSnapshot(typ SnapshotType, level HierarchyLevel) (*Snapshot, bool, error) {
	dir := s.snapshotDir(typ, level)
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read snapshot dir %s: %w", dir, err)
	}

	var best fs.FileInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		if best == nil || e.ModTime().After(best.ModTime()) {
			best = e
		}
	}
	if best == nil {
		return nil, false, nil
	}

	path := filepath.Join(dir, best.Name())
	b, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, false, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	content := string(b)
	return &Snapshot{
		Type:    typ,
		Level:   level,
		Path:    path,
		Content: content,
		Tokens:  budget.Estimate(content),
		ModTime: best.ModTime(),
	}, true, nil
}

// SnapshotTypes lists the snapshot type directories present in the store,
// sorted by name. Dot-directories are skipped. A missing snapshots root
// yields an empty list.
func (s *Store) SnapshotTypes() ([]SnapshotType, error) {
	dir := filepath.Join(s.contextDir, "snapshots")
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshots dir: %w", err)
	}
	var types []SnapshotType
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			types = append(types, SnapshotType(e.Name()))
		}
	}
	return types, nil
}

// SaveSnapshot writes content as a new timestamped snapshot under the
// (typ, level) leaf and returns its path. The leaf is created on demand.
func (s *Store) SaveSnapshot(typ SnapshotType, level HierarchyLevel, content string, now time.Time) (string, error) {
	dir := s.snapshotDir(typ, level)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir snapshot dir: %w", err)
	}
	name := fmt.Sprintf("%s_%s.md", typ, now.Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := afero.WriteFile(s.fs, path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}

// Scaffold creates the snapshot tree for the given types across all
// hierarchy levels. Existing directories are left alone.
func (s *Store) Scaffold(types []SnapshotType) error {
	for _, typ := range types {
		for _, level := range Levels() {
			dir := s.snapshotDir(typ, level)
			if err := s.fs.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
	}
	return nil
}
