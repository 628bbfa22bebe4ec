// Package graph models the knowledge-graph collaborator of the notes
// manager. Operations are defined on a Service port; the built-in stub
// backend returns canned envelopes so the CLI and the candidate tracker
// have something to talk to before a networked backend exists.
package graph

// Entity is a node in the knowledge graph.
type Entity struct {
	Name         string   `json:"name"`
	EntityType   string   `json:"entityType"`
	Observations []string `json:"observations"`
}

// Relationship is a directed edge between two entities.
type Relationship struct {
	From         string `json:"from"`
	To           string `json:"to"`
	RelationType string `json:"relationType"`
}

// SnapshotDocument is a portable dump of the whole graph.
type SnapshotDocument struct {
	Entities      []Entity       `json:"entities"`
	Relationships []Relationship `json:"relationships"`
	Timestamp     string         `json:"timestamp"`
}

// Result is the envelope every graph operation returns. Failures travel
// inside the envelope rather than as raised errors, so callers always
// have a response to render.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func success(message string) Result {
	return Result{Success: true, Message: message}
}

func failure(err string) Result {
	return Result{Success: false, Error: err}
}

// EntityResult carries a single entity alongside the envelope.
type EntityResult struct {
	Result
	Entity *Entity `json:"entity,omitempty"`
}

// EntitiesResult reports how many entities a batch create accepted.
type EntitiesResult struct {
	Result
	Created int `json:"entities_created"`
}

// RelationshipResult carries a single relationship alongside the envelope.
type RelationshipResult struct {
	Result
	Relationship *Relationship `json:"relationship,omitempty"`
}

// RelationshipsResult reports how many relationships a batch create accepted.
type RelationshipsResult struct {
	Result
	Created int `json:"relationships_created"`
}

// SearchResult lists the entities matching a query.
type SearchResult struct {
	Result
	Results []Entity `json:"results"`
}

// Neighborhood groups the edges touching one entity by direction.
type Neighborhood struct {
	Outgoing []Relationship `json:"outgoing"`
	Incoming []Relationship `json:"incoming"`
}

// NeighborhoodResult carries an entity's relationships alongside the envelope.
type NeighborhoodResult struct {
	Result
	Relationships *Neighborhood `json:"relationships,omitempty"`
}

// SnapshotResult carries an exported graph snapshot.
type SnapshotResult struct {
	Result
	Snapshot *SnapshotDocument `json:"snapshot,omitempty"`
}

// ImportResult reports how much of a snapshot was imported.
type ImportResult struct {
	Result
	EntitiesImported      int `json:"entities_imported"`
	RelationshipsImported int `json:"relationships_imported"`
}

// CandidateResult carries a tracked candidate alongside the envelope.
type CandidateResult struct {
	Result
	Candidate *Candidate `json:"candidate,omitempty"`
}
