// Package assemble orchestrates budget allocation, document loading,
// and truncation into the final context document.
package assemble

import (
	"fmt"
	"strings"
	"time"

	"github.com/notesmgr/notectx/internal/budget"
	"github.com/notesmgr/notectx/internal/store"
	"github.com/notesmgr/notectx/internal/truncate"
)

// DefaultProjectName labels the assembled document header.
const DefaultProjectName = "Notes Manager 2"

const timeLayout = "2006-01-02 15:04:05"

// Placeholders emitted verbatim, untruncated, when a document is absent.
const (
	readmePlaceholder       = "README not found"
	architecturePlaceholder = "Architecture document not found"
	glossaryPlaceholder     = "Glossary not found"
)

// DefaultTypePriority is the order snapshot types are rendered in when
// no focus area promotes one to the front.
func DefaultTypePriority() []store.SnapshotType {
	return []store.SnapshotType{
		store.TypeGeneral,
		store.TypeArchitecture,
		store.TypeKnowledgeGraph,
		store.TypeWorkflow,
	}
}

// DefaultPreserve maps each snapshot type to the section titles kept
// ahead of all other content when that snapshot is truncated.
func DefaultPreserve() map[store.SnapshotType][]string {
	return map[store.SnapshotType][]string{
		store.TypeGeneral:        {"Status Summary", "Active Components", "Current Challenges"},
		store.TypeArchitecture:   {"Architecture Overview", "Component Structure", "Technical Decisions"},
		store.TypeKnowledgeGraph: {"Graph Schema", "Entity Types", "Relationship Types"},
		store.TypeWorkflow:       {"User Workflows", "Data Processing Pipeline", "Note Management Procedures"},
	}
}

// HierarchyFor maps a detail level to the snapshot hierarchy level
// consulted for it. Unknown levels fall back to standard.
func HierarchyFor(detail budget.DetailLevel) store.HierarchyLevel {
	switch detail {
	case budget.DetailMinimal:
		return store.LevelSummary
	case budget.DetailComprehensive:
		return store.LevelDetailed
	default:
		return store.LevelStandard
	}
}

// Options configures an Assembler. Store is required; every other field
// falls back to a default when zero.
type Options struct {
	Store        *store.Store
	Allocator    *budget.Allocator
	TypePriority []store.SnapshotType
	Preserve     map[store.SnapshotType][]string
	ProjectName  string
	Now          func() time.Time
}

// Assembler builds token-budgeted context documents from a document
// store. Requests are independent; nothing is cached between calls.
type Assembler struct {
	store        *store.Store
	alloc        *budget.Allocator
	typePriority []store.SnapshotType
	preserve     map[store.SnapshotType][]string
	projectName  string
	now          func() time.Time
}

// New builds an Assembler from opts.
func New(opts Options) *Assembler {
	a := &Assembler{
		store:        opts.Store,
		alloc:        opts.Allocator,
		typePriority: opts.TypePriority,
		preserve:     opts.Preserve,
		projectName:  opts.ProjectName,
		now:          opts.Now,
	}
	if a.alloc == nil {
		a.alloc = budget.NewAllocator(nil)
	}
	if len(a.typePriority) == 0 {
		a.typePriority = DefaultTypePriority()
	}
	if a.preserve == nil {
		a.preserve = DefaultPreserve()
	}
	if a.projectName == "" {
		a.projectName = DefaultProjectName
	}
	if a.now == nil {
		a.now = time.Now
	}
	return a
}

// Request describes one assembly call.
type Request struct {
	Detail    budget.DetailLevel
	Focus     budget.FocusArea
	MaxTokens int
}

// Assemble renders the context document for req. Missing documents fall
// back to placeholder strings and missing snapshots are omitted, so the
// only errors are real read failures.
func (a *Assembler) Assemble(req Request) (string, error) {
	budgets := a.alloc.Allocate(req.Detail, req.Focus, req.MaxTokens)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s Project Context\n\n", a.projectName)
	fmt.Fprintf(&b, "*Context loaded at %s*\n\n", a.now().Format(timeLayout))

	readme, err := a.document(store.DocReadme, readmePlaceholder, budgets.Readme)
	if err != nil {
		return "", err
	}
	b.WriteString("## Project Overview\n\n" + readme + "\n\n")

	arch, err := a.document(store.DocArchitecture, architecturePlaceholder, budgets.Architecture)
	if err != nil {
		return "", err
	}
	b.WriteString("## Architecture\n\n" + arch + "\n\n")

	gloss, err := a.document(store.DocGlossary, glossaryPlaceholder, budgets.Glossary)
	if err != nil {
		return "", err
	}
	b.WriteString("## Glossary\n\n" + gloss + "\n\n")

	snaps, err := a.snapshotBlock(req.Detail, req.Focus, budgets.Snapshots)
	if err != nil {
		return "", err
	}
	b.WriteString(snaps)

	return b.String(), nil
}

// document loads one document and truncates it to its allowance. The
// placeholder for a missing document is returned as is, never truncated.
func (a *Assembler) document(kind store.DocumentKind, placeholder string, tokens int) (string, error) {
	doc, ok, err := a.store.Document(kind)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", kind, err)
	}
	if !ok {
		return placeholder, nil
	}
	return truncate.Text(doc.Content, tokens, nil), nil
}

// typeOrder returns the snapshot types to visit. A focus naming a
// snapshot type moves that type to the front; the rest keep their
// priority order.
func (a *Assembler) typeOrder(focus budget.FocusArea) []store.SnapshotType {
	promoted := store.SnapshotType(focus)
	for _, typ := range a.typePriority {
		if typ != promoted {
			continue
		}
		order := make([]store.SnapshotType, 0, len(a.typePriority))
		order = append(order, promoted)
		for _, t := range a.typePriority {
			if t != promoted {
				order = append(order, t)
			}
		}
		return order
	}
	return a.typePriority
}

// snapshotBlock renders the trailing snapshots part of the document.
// Each type's header is charged against the remaining snapshot budget
// before its content; the blank-line separators are not charged.
func (a *Assembler) snapshotBlock(detail budget.DetailLevel, focus budget.FocusArea, tokens int) (string, error) {
	level := HierarchyFor(detail)

	var b strings.Builder
	b.WriteString("# Project Snapshots\n\n")
	remaining := tokens

	for _, typ := range a.typeOrder(focus) {
		if remaining <= 0 {
			break
		}
		snap, ok, err := a.store.LatestSnapshot(typ, level)
		if err != nil {
			return "", fmt.Errorf("load %s snapshot: %w", typ, err)
		}
		if !ok {
			continue
		}
		header := fmt.Sprintf("## %s Snapshot\n\n", capitalize(string(typ)))
		headerTokens := budget.Estimate(header)
		if headerTokens > remaining {
			break
		}
		b.WriteString(header)
		remaining -= headerTokens

		content := truncate.Text(snap.Content, remaining, a.preserve[typ])
		b.WriteString(content + "\n\n")
		remaining -= budget.Estimate(content)
	}
	return b.String(), nil
}

// capitalize upper-cases the first rune and lower-cases the rest, so
// "knowledge_graph" renders as "Knowledge_graph".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:]))
}
