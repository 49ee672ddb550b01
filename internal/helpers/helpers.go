// Package helpers holds the runtime-compatibility shims the printer injects
// before the first statement of an output file. Bodies are pluggable
// templates; the structural relationships between helpers (ordering, the
// metadata companion) are fixed.
package helpers

import (
	"sort"
)

// ID names one shim.
type ID uint8

const (
	// Extends links a derived class to its base at runtime.
	Extends ID = iota
	// Decorate applies class and member decorations.
	Decorate
	// Metadata emits reflective design-time metadata. Companion of
	// Decorate: it is only ever emitted alongside it.
	Metadata
	// Param applies parameter-level decorations.
	Param
	// Awaiter schedules suspend/resume for lowered asynchronous bodies.
	Awaiter
	// ExportStar re-exports another module's bindings in aggregate.
	ExportStar

	idCount
)

var idNames = [...]string{
	Extends:    "extends",
	Decorate:   "decorate",
	Metadata:   "metadata",
	Param:      "param",
	Awaiter:    "awaiter",
	ExportStar: "exportStar",
}

func (id ID) String() string {
	if int(id) < len(idNames) {
		return idNames[id]
	}
	return "helper(?)"
}

// Helper is one shim descriptor. Priority orders emission when several are
// due in the same file; Companion marks helpers that may only ride along
// with their primary.
type Helper struct {
	ID        ID
	Priority  int
	Companion bool
	Primary   ID // meaningful only when Companion is set
	Body      string
}

// Registry resolves helper IDs to descriptors. A zero registry is not
// usable; construct with NewRegistry.
type Registry struct {
	byID [idCount]Helper
}

// NewRegistry returns a registry holding the built-in helper bodies.
func NewRegistry() *Registry {
	r := &Registry{}
	for _, h := range builtins {
		r.byID[h.ID] = h
	}
	return r
}

// Override replaces the body text for id, keeping structure intact.
func (r *Registry) Override(id ID, body string) {
	if int(id) < len(r.byID) {
		r.byID[id].Body = body
	}
}

// Get returns the descriptor for id.
func (r *Registry) Get(id ID) Helper {
	return r.byID[id]
}

// Ordered returns the given helpers sorted by emission priority, with
// companions whose primary is absent dropped.
func (r *Registry) Ordered(ids []ID) []Helper {
	present := make(map[ID]bool, len(ids))
	for _, id := range ids {
		present[id] = true
	}
	out := make([]Helper, 0, len(ids))
	for _, id := range ids {
		h := r.byID[id]
		if h.Companion && !present[h.Primary] {
			continue
		}
		out = append(out, h)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	return out
}
