package jobs

// Encoder turns a form-value map and an optional context map into the final
// argument payload. The schema-driven implementation lives in pkg/encode; a
// Schema may carry its own Encoder to bypass the declarative path.
//
// Implementations must be deterministic: identical inputs always produce
// identical bytes.
type Encoder interface {
	Encode(values map[string]any, context map[string]any) ([]byte, error)
}

// EncoderFunc adapts a plain function to the Encoder interface, mirroring
// http.HandlerFunc. Catalog registration typically uses this form.
type EncoderFunc func(values map[string]any, context map[string]any) ([]byte, error)

// Encode calls f.
func (f EncoderFunc) Encode(values map[string]any, context map[string]any) ([]byte, error) {
	return f(values, context)
}
