package assemble

import (
	"fmt"

	"github.com/notesmgr/notectx/internal/budget"
	"github.com/notesmgr/notectx/internal/store"
)

// SummaryEntry describes one discovered document or snapshot.
type SummaryEntry struct {
	Type        string `json:"type"`
	Path        string `json:"path"`
	LastUpdated string `json:"last_updated"`
}

// Summary is the structural view of what an assembly call would find:
// which documents exist and which snapshot types have a latest file at
// the hierarchy level the detail level implies.
type Summary struct {
	DetailLevel    string         `json:"detail_level"`
	HierarchyLevel string         `json:"hierarchy_level"`
	FocusArea      string         `json:"focus_area,omitempty"`
	Documents      []SummaryEntry `json:"documents"`
	Snapshots      []SummaryEntry `json:"snapshots"`
}

// Summarize reports which documents and snapshots an assembly call at
// the given detail level would consult. Missing pieces are simply left
// out of the listing.
func (a *Assembler) Summarize(detail budget.DetailLevel, focus budget.FocusArea) (Summary, error) {
	level := HierarchyFor(detail)
	s := Summary{
		DetailLevel:    string(detail),
		HierarchyLevel: string(level),
		FocusArea:      string(focus),
		Documents:      []SummaryEntry{},
		Snapshots:      []SummaryEntry{},
	}

	for _, kind := range store.DocumentKinds() {
		doc, ok, err := a.store.Document(kind)
		if err != nil {
			return Summary{}, fmt.Errorf("load %s: %w", kind, err)
		}
		if !ok {
			continue
		}
		s.Documents = append(s.Documents, SummaryEntry{
			Type:        string(kind),
			Path:        doc.Path,
			LastUpdated: doc.ModTime.Format(timeLayout),
		})
	}

	types, err := a.store.SnapshotTypes()
	if err != nil {
		return Summary{}, fmt.Errorf("list snapshot types: %w", err)
	}
	for _, typ := range types {
		snap, ok, err := a.store.LatestSnapshot(typ, level)
		if err != nil {
			return Summary{}, fmt.Errorf("load %s snapshot: %w", typ, err)
		}
		if !ok {
			continue
		}
		s.Snapshots = append(s.Snapshots, SummaryEntry{
			Type:        string(typ),
			Path:        snap.Path,
			LastUpdated: snap.ModTime.Format(timeLayout),
		})
	}
	return s, nil
}
