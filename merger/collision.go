package merger

import "github.com/invoxy/spec-mesh/internal/severity"

// CollisionReport provides detailed analysis of collisions encountered
// during a merge run.
type CollisionReport struct {
	TotalCollisions  int
	ResolvedByRename int
	Overwrites       int
	Events           []CollisionEvent
}

// CollisionEvent represents a single collision occurrence with resolution
// details.
type CollisionEvent struct {
	// Section is the merged map the collision occurred in
	// ("paths", "components.schemas", "components.responses", ...).
	Section string
	// Key is the original colliding key.
	Key string
	// NewKey is the disambiguated key the entry was stored under.
	NewKey string
	// Source is the service whose entry collided.
	Source string
	// Resolution is "renamed" or "overwritten" (second-order collision).
	Resolution string
	Severity   severity.Severity
}

// NewCollisionReport creates an empty collision report.
func NewCollisionReport() *CollisionReport {
	return &CollisionReport{
		Events: make([]CollisionEvent, 0),
	}
}

// AddEvent adds a collision event to the report and updates counters.
func (r *CollisionReport) AddEvent(event CollisionEvent) {
	r.Events = append(r.Events, event)
	r.TotalCollisions++

	switch event.Resolution {
	case "renamed":
		r.ResolvedByRename++
	case "overwritten":
		r.Overwrites++
	}
}

// HasOverwrites returns true if any second-order collision overwrote an
// earlier entry.
func (r *CollisionReport) HasOverwrites() bool {
	return r.Overwrites > 0
}

// BySection returns events for a specific merged section.
func (r *CollisionReport) BySection(section string) []CollisionEvent {
	var filtered []CollisionEvent
	for _, event := range r.Events {
		if event.Section == section {
			filtered = append(filtered, event)
		}
	}
	return filtered
}
