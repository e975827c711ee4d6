// Package registry is the process-wide catalog of job schemas, grouped by
// blueprint namespace. Registration happens once, during application startup,
// through a Builder; lookups run against the immutable Registry snapshot it
// produces. The freeze makes "registration happens before use" a structural
// guarantee instead of a convention, and removes any need for locking.
package registry

import (
	"sort"

	"github.com/tangle-network/ai-agent-sandbox-blueprint-sub000/pkg/jobs"
)

type key struct {
	namespace string
	id        uint8
}

// Builder accumulates schema registrations during the bootstrap phase.
// It is not safe for concurrent use; populate it from a single goroutine
// and call Build before handing the result out.
type Builder struct {
	namespaces map[string][]jobs.Schema
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{namespaces: make(map[string][]jobs.Schema)}
}

// Register adds a schema under a namespace. Registering the same
// (namespace, id) twice overwrites the earlier schema in place, keeping its
// original position in enumeration order; last registration wins.
func (b *Builder) Register(namespace string, schema jobs.Schema) {
	list := b.namespaces[namespace]
	for i, existing := range list {
		if existing.ID == schema.ID {
			list[i] = schema
			return
		}
	}
	b.namespaces[namespace] = append(list, schema)
}

// Build freezes the accumulated registrations into an immutable Registry.
// The builder remains usable afterwards; later registrations only affect
// later Build calls.
func (b *Builder) Build() *Registry {
	reg := &Registry{
		namespaces: make(map[string][]jobs.Schema, len(b.namespaces)),
		index:      make(map[key]jobs.Schema),
	}
	for namespace, list := range b.namespaces {
		frozen := make([]jobs.Schema, len(list))
		copy(frozen, list)
		reg.namespaces[namespace] = frozen
		for _, schema := range frozen {
			reg.index[key{namespace, schema.ID}] = schema
		}
	}
	return reg
}

// Registry is a frozen snapshot of job schemas. All methods are read-only and
// safe for concurrent use.
type Registry struct {
	namespaces map[string][]jobs.Schema
	index      map[key]jobs.Schema
}

// Lookup returns the schema registered under (namespace, id). The second
// return value is false when no such schema exists; callers must treat that
// as a hard stop: encoding against an absent schema is undefined.
func (r *Registry) Lookup(namespace string, id uint8) (jobs.Schema, bool) {
	schema, ok := r.index[key{namespace, id}]
	return schema, ok
}

// Jobs returns the schemas registered under a namespace in registration
// order. The slice is a copy; mutating it does not affect the registry.
func (r *Registry) Jobs(namespace string) []jobs.Schema {
	list := r.namespaces[namespace]
	out := make([]jobs.Schema, len(list))
	copy(out, list)
	return out
}

// Filter returns the schemas under a namespace for which keep returns true,
// preserving registration order. A nil predicate keeps everything.
func (r *Registry) Filter(namespace string, keep func(jobs.Schema) bool) []jobs.Schema {
	list := r.namespaces[namespace]
	out := make([]jobs.Schema, 0, len(list))
	for _, schema := range list {
		if keep == nil || keep(schema) {
			out = append(out, schema)
		}
	}
	return out
}

// Namespaces returns the sorted list of registered namespaces.
func (r *Registry) Namespaces() []string {
	names := make([]string, 0, len(r.namespaces))
	for name := range r.namespaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
