package jobs

// WireType is the closed enumeration of encodable parameter kinds. The tag
// decides both the coercion applied to raw form input and the ABI type the
// parameter packs as. An empty tag on a Field marks it UI-only: it never
// reaches the wire.
type WireType string

const (
	WireBool    WireType = "bool"
	WireUint8   WireType = "uint8"
	WireUint16  WireType = "uint16"
	WireUint32  WireType = "uint32"
	WireUint64  WireType = "uint64"
	WireUint128 WireType = "uint128"
	WireUint256 WireType = "uint256"
	WireAddress WireType = "address"
	WireString  WireType = "string"

	WireStringArray  WireType = "string[]"
	WireAddressArray WireType = "address[]"
)

// Known reports whether the tag belongs to the closed set above. Tags outside
// the set are still forwarded to the binary encoder verbatim (forward
// compatibility), but loaders that declare schemas from files reject them.
func (t WireType) Known() bool {
	switch t {
	case WireBool, WireUint8, WireUint16, WireUint32, WireUint64,
		WireUint128, WireUint256, WireAddress, WireString,
		WireStringArray, WireAddressArray:
		return true
	}
	return false
}

// Field maps one form-level input onto a wire parameter.
type Field struct {
	// Name is the key used to read the value from the form-value map.
	Name string `json:"name" yaml:"name"`
	// WireName overrides the encoded parameter name when the form's naming
	// convention differs from the remote schema's. Empty means Name.
	WireName string `json:"wireName,omitempty" yaml:"wireName"`
	// WireType is empty for UI-only fields, which are excluded from
	// encoding entirely regardless of value.
	WireType WireType `json:"wireType,omitempty" yaml:"wireType"`
	// Internal fields participate in encoding but are never surfaced in a
	// user-facing form; their value comes from the embedding application's
	// default-value producer.
	Internal bool `json:"internal,omitempty" yaml:"internal"`
}

// EncodedName returns the name the field encodes under.
func (f Field) EncodedName() string {
	if f.WireName != "" {
		return f.WireName
	}
	return f.Name
}

// ContextParam is a value injected by the calling environment rather than the
// form (a routing address, a target identifier). All context params encode
// before any fields, in declared order, with no exceptions.
type ContextParam struct {
	WireName string   `json:"wireName" yaml:"wireName"`
	WireType WireType `json:"wireType" yaml:"wireType"`
}

// Schema describes one callable job. Field order is append-only once
// published: the remote decoder's fixed struct layout is the entire wire
// contract, so any reorder is a breaking change coordinated out-of-band.
type Schema struct {
	// ID is unique within a namespace.
	ID uint8 `json:"id" yaml:"id"`
	// Name is a stable machine identifier.
	Name string `json:"name" yaml:"name"`

	Fields        []Field        `json:"fields,omitempty" yaml:"fields"`
	ContextParams []ContextParam `json:"contextParams,omitempty" yaml:"contextParams"`

	// Encoder, when set, replaces the schema-driven encoding path for this
	// job entirely. Used for argument shapes the flat field list cannot
	// express, such as nested tuples.
	Encoder Encoder `json:"-" yaml:"-"`
}

// WireFields returns the fields that participate in encoding, in declared
// order. UI-only fields (no wire type) are dropped.
func (s Schema) WireFields() []Field {
	out := make([]Field, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.WireType == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}
