package graph

import (
	"context"
	"io"
	"time"
)

// Service is the set of operations a knowledge-graph backend exposes.
// Implementations report failures through the returned envelopes, never
// by panicking or by surfacing transport errors to callers directly.
type Service interface {
	CreateEntity(ctx context.Context, name, entityType string, observations []string) EntityResult
	CreateEntities(ctx context.Context, entities []Entity) EntitiesResult
	CreateRelationship(ctx context.Context, from, to, relationType string) RelationshipResult
	CreateRelationships(ctx context.Context, relationships []Relationship) RelationshipsResult
	SearchEntities(ctx context.Context, query string) SearchResult
	GetEntity(ctx context.Context, name string) EntityResult
	GetEntityRelationships(ctx context.Context, name string) NeighborhoodResult
	ExportSnapshot(ctx context.Context) SnapshotResult
	ImportSnapshot(ctx context.Context, snapshot SnapshotDocument) ImportResult
}

// DefaultEntityTypes returns the standard entity type table. The
// enumeration is open: backends warn about unknown values instead of
// rejecting them.
func DefaultEntityTypes() []string {
	return []string{
		"Document",
		"Concept",
		"Person",
		"Organization",
		"Project",
		"Task",
		"Decision",
		"Component",
		"Workflow",
	}
}

// DefaultRelationshipTypes returns the standard relationship type table.
func DefaultRelationshipTypes() []string {
	return []string{
		"contains",
		"references",
		"depends_on",
		"created_by",
		"part_of",
		"related_to",
		"precedes",
		"influences",
	}
}

// Config carries common knobs used by backends.
type Config struct {
	// Type tables consulted for validation warnings. Empty means the
	// defaults above.
	EntityTypes       []string
	RelationshipTypes []string
	// Warn receives non-blocking validation warnings. Defaults to stderr.
	Warn io.Writer
	// Now stamps exported snapshots. Defaults to time.Now.
	Now func() time.Time
}

// Factory builds a Service from the generic config above.
type Factory func(Config) Service

// Backend identifiers used across the CLI for selection.
const (
	BackendStub = "stub"
)

var backends = map[string]Factory{}

// Register registers a backend name with its factory.
func Register(name string, f Factory) { backends[name] = f }

// New creates a Service for the given backend if registered.
func New(name string, cfg Config) (Service, bool) {
	if f, ok := backends[name]; ok {
		return f(cfg), true
	}
	return nil, false
}

// init registers built-in backends.
func init() {
	Register(BackendStub, func(c Config) Service {
		return NewStub(c)
	})
}
