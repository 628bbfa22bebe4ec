package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultPromotionThreshold is the number of recorded appearances a
// candidate needs before Promote will create it in the graph.
const DefaultPromotionThreshold = 2

// Candidate is a provisionally tracked entity accumulating evidence
// until it crosses the promotion threshold.
type Candidate struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	EntityType   string    `json:"entityType"`
	Observations []string  `json:"observations"`
	Sources      []string  `json:"sources"`
	Appearances  int       `json:"appearances"`
	FirstSeen    time.Time `json:"firstSeen"`
	LastSeen     time.Time `json:"lastSeen"`
}

// Tracker accumulates candidate entities and promotes them into a graph
// Service once they have appeared often enough. Not safe for concurrent
// use.
type Tracker struct {
	svc        Service
	threshold  int
	candidates map[string]*Candidate
	now        func() time.Time
	newID      func() string
}

// NewTracker builds a tracker promoting into svc. A threshold of zero
// or less falls back to DefaultPromotionThreshold.
func NewTracker(svc Service, threshold int) *Tracker {
	if threshold <= 0 {
		threshold = DefaultPromotionThreshold
	}
	return &Tracker{
		svc:        svc,
		threshold:  threshold,
		candidates: make(map[string]*Candidate),
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Track records one appearance of a candidate. Repeat sightings under
// the same name accumulate appearances, observations, and sources; the
// entity type recorded first wins.
func (t *Tracker) Track(name, entityType, observation, source string) CandidateResult {
	if name == "" {
		return CandidateResult{Result: failure("candidate name is required")}
	}
	c, ok := t.candidates[name]
	if !ok {
		c = &Candidate{
			ID:         t.newID(),
			Name:       name,
			EntityType: entityType,
			FirstSeen:  t.now(),
		}
		t.candidates[name] = c
	}
	c.Appearances++
	c.LastSeen = t.now()
	if observation != "" {
		c.Observations = append(c.Observations, observation)
	}
	if source != "" {
		c.Sources = append(c.Sources, source)
	}
	snapshot := *c
	return CandidateResult{
		Result:    success(fmt.Sprintf("Entity candidate '%s' tracked successfully", name)),
		Candidate: &snapshot,
	}
}

// Promote creates the named candidate in the graph once it has enough
// appearances, then drops it from the tracker. The candidate is kept
// when the creation fails so a later attempt can retry.
func (t *Tracker) Promote(ctx context.Context, name string) Result {
	c, ok := t.candidates[name]
	if !ok {
		return failure(fmt.Sprintf("no candidate tracked under '%s'", name))
	}
	if c.Appearances < t.threshold {
		return failure(fmt.Sprintf("candidate '%s' has %d of %d appearances required for promotion", name, c.Appearances, t.threshold))
	}
	created := t.svc.CreateEntity(ctx, c.Name, c.EntityType, c.Observations)
	if !created.Success {
		return created.Result
	}
	delete(t.candidates, name)
	return success(fmt.Sprintf("Entity candidate '%s' promoted to full status", name))
}

// Candidate returns the tracked candidate under name, if any.
func (t *Tracker) Candidate(name string) (*Candidate, bool) {
	c, ok := t.candidates[name]
	return c, ok
}

// Len reports how many candidates are currently tracked.
func (t *Tracker) Len() int { return len(t.candidates) }

// Threshold reports the appearance count required for promotion.
func (t *Tracker) Threshold() int { return t.threshold }
