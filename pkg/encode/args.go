// Package encode turns a job schema plus loosely-typed form values into the
// fixed-word ABI payload the remote job decoder expects. The output must be
// bit-exact with that decoder's struct layout: parameter order and type tags
// are the entire wire contract.
package encode

import (
	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/tangle-network/ai-agent-sandbox-blueprint-sub000/pkg/jobs"
)

// JobArgs encodes the arguments for one job submission. It is a pure function
// of its three inputs: two calls with the same schema, values, and context
// always produce identical bytes.
//
// Schemas carrying their own Encoder bypass the declarative path entirely;
// everything else encodes context params first (in declared order), then wire
// fields (in declared order), each value coerced per its wire type. Errors
// from the ABI packer or a custom encoder propagate unwrapped.
func JobArgs(schema jobs.Schema, values map[string]any, context map[string]any) ([]byte, error) {
	return ForSchema(schema).Encode(values, context)
}

// ForSchema selects the encoder for a schema: its own Encoder when set,
// otherwise the schema-driven implementation.
func ForSchema(schema jobs.Schema) jobs.Encoder {
	if schema.Encoder != nil {
		return schema.Encoder
	}
	return schemaDriven{schema: schema}
}

type schemaDriven struct {
	schema jobs.Schema
}

func (e schemaDriven) Encode(values map[string]any, context map[string]any) ([]byte, error) {
	params := len(e.schema.ContextParams) + len(e.schema.Fields)
	args := make(abi.Arguments, 0, params)
	packed := make([]any, 0, params)

	for _, p := range e.schema.ContextParams {
		typ, err := abiType(p.WireType)
		if err != nil {
			return nil, err
		}
		args = append(args, abi.Argument{Name: p.WireName, Type: typ})
		// A nil context map, or a missing key, coerces exactly like a
		// missing form value for the same type.
		var raw any
		if context != nil {
			raw = context[p.WireName]
		}
		packed = append(packed, Coerce(p.WireType, raw))
	}

	for _, f := range e.schema.Fields {
		if f.WireType == "" {
			// UI-only field: never encoded, regardless of value.
			continue
		}
		typ, err := abiType(f.WireType)
		if err != nil {
			return nil, err
		}
		args = append(args, abi.Argument{Name: f.EncodedName(), Type: typ})
		var raw any
		if values != nil {
			raw = values[f.Name]
		}
		packed = append(packed, Coerce(f.WireType, raw))
	}

	return args.Pack(packed...)
}
