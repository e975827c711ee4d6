// Package blueprint exposes the job argument codec for the AI agent sandbox
// blueprint: a registry of job schemas grouped by blueprint namespace, and a
// deterministic encoder that turns form values into the ABI payload carried
// by an on-chain job submission.
//
// The embedding dashboard registers schemas once at startup (from the default
// catalog, manifests, or both), freezes the registry, and encodes arguments
// per submission:
//
//	reg := blueprint.DefaultRegistry()
//	schema, ok := reg.Lookup(catalog.Namespace, catalog.JobExecuteCommand)
//	if !ok {
//		// hard stop: never encode against an absent schema
//	}
//	payload, err := blueprint.EncodeJobArgs(schema, values, ctx)
package blueprint

import (
	"github.com/tangle-network/ai-agent-sandbox-blueprint-sub000/pkg/catalog"
	"github.com/tangle-network/ai-agent-sandbox-blueprint-sub000/pkg/encode"
	"github.com/tangle-network/ai-agent-sandbox-blueprint-sub000/pkg/jobs"
	"github.com/tangle-network/ai-agent-sandbox-blueprint-sub000/pkg/registry"
)

// Schema aliases the job schema model for convenience.
type Schema = jobs.Schema

// Field aliases the form-field schema.
type Field = jobs.Field

// ContextParam aliases the environment-injected parameter schema.
type ContextParam = jobs.ContextParam

// Encoder aliases the encoding strategy interface.
type Encoder = jobs.Encoder

// Registry aliases the frozen schema registry.
type Registry = registry.Registry

// NewBuilder returns an empty registry builder for bootstrap-time
// registration.
func NewBuilder() *registry.Builder {
	return registry.NewBuilder()
}

// DefaultRegistry builds a registry preloaded with the sandbox blueprint's
// job catalog.
func DefaultRegistry() *registry.Registry {
	return catalog.Default()
}

// EncodeJobArgs encodes one job submission's arguments. See encode.JobArgs.
func EncodeJobArgs(schema jobs.Schema, values map[string]any, context map[string]any) ([]byte, error) {
	return encode.JobArgs(schema, values, context)
}
