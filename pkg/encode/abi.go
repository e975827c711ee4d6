package encode

import (
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/tangle-network/ai-agent-sandbox-blueprint-sub000/pkg/jobs"
)

// The wire types double as go-ethereum ABI type strings, so the mapping is a
// parse with a cache rather than a hand-kept table. Tags outside the closed
// set are still handed to abi.NewType; if the ABI layer does not know them
// either, that failure surfaces as a binary-encoder rejection.
var abiTypes sync.Map // jobs.WireType -> abi.Type

func abiType(tag jobs.WireType) (abi.Type, error) {
	if cached, ok := abiTypes.Load(tag); ok {
		return cached.(abi.Type), nil
	}
	typ, err := abi.NewType(string(tag), "", nil)
	if err != nil {
		return abi.Type{}, fmt.Errorf("encode: wire type %q: %w", tag, err)
	}
	abiTypes.Store(tag, typ)
	return typ, nil
}
