package graph

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// Stub is an in-process Service that fabricates the responses a real
// knowledge-graph service would return. It stores nothing between
// calls; its job is to honor the envelope contract.
type Stub struct {
	entityTypes       map[string]bool
	relationshipTypes map[string]bool
	warn              io.Writer
	now               func() time.Time
}

var _ Service = (*Stub)(nil)

// NewStub builds a stub backend, filling in defaults for any zero
// fields in cfg. Callers normally go through New(BackendStub, cfg).
func NewStub(cfg Config) *Stub {
	if cfg.Warn == nil {
		cfg.Warn = os.Stderr
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	entityTypes := cfg.EntityTypes
	if len(entityTypes) == 0 {
		entityTypes = DefaultEntityTypes()
	}
	relationshipTypes := cfg.RelationshipTypes
	if len(relationshipTypes) == 0 {
		relationshipTypes = DefaultRelationshipTypes()
	}
	return &Stub{
		entityTypes:       toSet(entityTypes),
		relationshipTypes: toSet(relationshipTypes),
		warn:              cfg.Warn,
		now:               cfg.Now,
	}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// CreateEntity validates the required fields, warns about unknown
// types, and acknowledges the entity.
func (s *Stub) CreateEntity(ctx context.Context, name, entityType string, observations []string) EntityResult {
	if name == "" {
		return EntityResult{Result: failure("entity name is required")}
	}
	if entityType == "" {
		return EntityResult{Result: failure("entity type is required")}
	}
	if !s.entityTypes[entityType] {
		fmt.Fprintf(s.warn, "⚠ Warning: entity type %q is not in standard types, adding anyway\n", entityType)
	}
	if observations == nil {
		observations = []string{}
	}
	return EntityResult{
		Result: success(fmt.Sprintf("Entity '%s' created successfully", name)),
		Entity: &Entity{Name: name, EntityType: entityType, Observations: observations},
	}
}

// CreateEntities accepts every entity that carries all required fields
// and skips the rest with a warning.
func (s *Stub) CreateEntities(ctx context.Context, entities []Entity) EntitiesResult {
	accepted := 0
	for _, entity := range entities {
		if entity.Name == "" || entity.EntityType == "" || entity.Observations == nil {
			fmt.Fprintf(s.warn, "⚠ Warning: entity missing required fields: %+v\n", entity)
			continue
		}
		accepted++
	}
	return EntitiesResult{
		Result:  success(fmt.Sprintf("Created %d entities", accepted)),
		Created: accepted,
	}
}

// CreateRelationship validates the endpoints, warns about unknown
// types, and acknowledges the edge.
func (s *Stub) CreateRelationship(ctx context.Context, from, to, relationType string) RelationshipResult {
	if from == "" {
		return RelationshipResult{Result: failure("relationship source is required")}
	}
	if to == "" {
		return RelationshipResult{Result: failure("relationship target is required")}
	}
	if relationType == "" {
		return RelationshipResult{Result: failure("relationship type is required")}
	}
	if !s.relationshipTypes[relationType] {
		fmt.Fprintf(s.warn, "⚠ Warning: relationship type %q is not in standard types, adding anyway\n", relationType)
	}
	return RelationshipResult{
		Result:       success(fmt.Sprintf("Relationship created: %s %s %s", from, relationType, to)),
		Relationship: &Relationship{From: from, To: to, RelationType: relationType},
	}
}

// CreateRelationships accepts every relationship that carries all
// required fields and skips the rest with a warning.
func (s *Stub) CreateRelationships(ctx context.Context, relationships []Relationship) RelationshipsResult {
	accepted := 0
	for _, rel := range relationships {
		if rel.From == "" || rel.To == "" || rel.RelationType == "" {
			fmt.Fprintf(s.warn, "⚠ Warning: relationship missing required fields: %+v\n", rel)
			continue
		}
		accepted++
	}
	return RelationshipsResult{
		Result:  success(fmt.Sprintf("Created %d relationships", accepted)),
		Created: accepted,
	}
}

// SearchEntities acknowledges the query with an empty result set.
func (s *Stub) SearchEntities(ctx context.Context, query string) SearchResult {
	return SearchResult{
		Result:  success(fmt.Sprintf("Search completed for '%s'", query)),
		Results: []Entity{},
	}
}

// GetEntity returns a placeholder entity under the requested name.
func (s *Stub) GetEntity(ctx context.Context, name string) EntityResult {
	if name == "" {
		return EntityResult{Result: failure("entity name is required")}
	}
	return EntityResult{
		Result: success(fmt.Sprintf("Retrieved entity '%s'", name)),
		Entity: &Entity{Name: name, EntityType: "Unknown", Observations: []string{}},
	}
}

// GetEntityRelationships returns an empty neighborhood for the entity.
func (s *Stub) GetEntityRelationships(ctx context.Context, name string) NeighborhoodResult {
	if name == "" {
		return NeighborhoodResult{Result: failure("entity name is required")}
	}
	return NeighborhoodResult{
		Result:        success(fmt.Sprintf("Retrieved relationships for entity '%s'", name)),
		Relationships: &Neighborhood{Outgoing: []Relationship{}, Incoming: []Relationship{}},
	}
}

// ExportSnapshot returns an empty snapshot stamped with the current time.
func (s *Stub) ExportSnapshot(ctx context.Context) SnapshotResult {
	return SnapshotResult{
		Result: success("Graph snapshot exported successfully"),
		Snapshot: &SnapshotDocument{
			Entities:      []Entity{},
			Relationships: []Relationship{},
			Timestamp:     s.now().Format(time.RFC3339),
		},
	}
}

// ImportSnapshot validates the snapshot shape and reports how many
// records it would have loaded.
func (s *Stub) ImportSnapshot(ctx context.Context, snapshot SnapshotDocument) ImportResult {
	// Payloads missing the entities or relationships keys decode to nil
	// slices, which is distinct from present-but-empty lists.
	if snapshot.Entities == nil || snapshot.Relationships == nil {
		return ImportResult{Result: failure("Invalid snapshot format")}
	}
	return ImportResult{
		Result:                success("Graph snapshot imported successfully"),
		EntitiesImported:      len(snapshot.Entities),
		RelationshipsImported: len(snapshot.Relationships),
	}
}
