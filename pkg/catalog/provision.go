package catalog

import (
	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/tangle-network/ai-agent-sandbox-blueprint-sub000/pkg/encode"
	"github.com/tangle-network/ai-agent-sandbox-blueprint-sub000/pkg/jobs"
)

// resourceSpec matches the remote decoder's nested resource tuple. Field
// names must stay aligned with the tuple components below; the ABI packer
// resolves them by name.
type resourceSpec struct {
	CpuMillis   uint32
	MemoryMB    uint64
	TimeoutSecs uint64
}

var provisionArgs = abi.Arguments{
	{Name: "operator", Type: mustType("address", nil)},
	{Name: "runtime", Type: mustType("string", nil)},
	{Name: "resources", Type: mustType("tuple", []abi.ArgumentMarshaling{
		{Name: "cpuMillis", Type: "uint32"},
		{Name: "memoryMB", Type: "uint64"},
		{Name: "timeoutSecs", Type: "uint64"},
	})},
}

// encodeProvisionRuntime packs (operator, runtime, resources) where resources
// is the nested tuple. Individual members still go through the shared
// coercion table so missing form values degrade the same way they would on
// the schema-driven path.
func encodeProvisionRuntime(values map[string]any, context map[string]any) ([]byte, error) {
	var operator any
	if context != nil {
		operator = context["operator"]
	}
	spec := resourceSpec{
		CpuMillis:   encode.Coerce(jobs.WireUint32, values["cpuMillis"]).(uint32),
		MemoryMB:    encode.Coerce(jobs.WireUint64, values["memoryMB"]).(uint64),
		TimeoutSecs: encode.Coerce(jobs.WireUint64, values["timeoutSecs"]).(uint64),
	}
	return provisionArgs.Pack(
		encode.Coerce(jobs.WireAddress, operator),
		encode.Coerce(jobs.WireString, values["runtime"]),
		spec,
	)
}

func mustType(t string, components []abi.ArgumentMarshaling) abi.Type {
	typ, err := abi.NewType(t, "", components)
	if err != nil {
		panic(err)
	}
	return typ
}
