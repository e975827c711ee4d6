package encode

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tangle-network/ai-agent-sandbox-blueprint-sub000/pkg/jobs"
)

// Coerce converts an arbitrary form value into the canonical representation
// the wire type requires. It is pure and total: missing or malformed input
// degrades to a deterministic default instead of failing, because coercion
// runs against in-progress form state on every keystroke. Completeness and
// range validation are a separate, explicit step owned by the form layer.
//
// Unknown tags pass the value through unchanged so forward-compatible types
// can reach the binary encoder without a coercion rule.
func Coerce(tag jobs.WireType, value any) any {
	switch tag {
	case jobs.WireBool:
		return truthy(value)
	case jobs.WireUint8:
		return uint8(toUint64(value))
	case jobs.WireUint16:
		return uint16(toUint64(value))
	case jobs.WireUint32:
		return uint32(toUint64(value))
	case jobs.WireUint64:
		return toUint64(value)
	case jobs.WireUint128, jobs.WireUint256:
		return toBig(value)
	case jobs.WireAddress:
		return toAddress(value)
	case jobs.WireString:
		return toString(value)
	case jobs.WireStringArray:
		return toStrings(value)
	case jobs.WireAddressArray:
		return toAddresses(value)
	default:
		return value
	}
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	case uint64:
		return v != 0
	case float64:
		return v != 0
	case float32:
		return v != 0
	default:
		return value != nil
	}
}

// toUint64 is the shared numeric coercion for the fixed-width unsigned tags.
// Narrower tags truncate the result; out-of-range input is the form
// validator's problem, not ours.
func toUint64(value any) uint64 {
	switch v := value.(type) {
	case uint64:
		return v
	case uint:
		return uint64(v)
	case uint8:
		return uint64(v)
	case uint16:
		return uint64(v)
	case uint32:
		return uint64(v)
	case int:
		if v < 0 {
			return 0
		}
		return uint64(v)
	case int64:
		if v < 0 {
			return 0
		}
		return uint64(v)
	case float64:
		if v < 0 {
			return 0
		}
		return uint64(v)
	case float32:
		if v < 0 {
			return 0
		}
		return uint64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		n, err := parseUintString(v)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// parseUintString reads form numbers as decimal, with an explicit 0x fast
// path for hex. Base auto-detection would turn a leading-zero entry like
// "030" into octal, which no form user means.
func parseUintString(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strip0x(s); ok {
		return strconv.ParseUint(rest, 16, 64)
	}
	return strconv.ParseUint(s, 10, 64)
}

func strip0x(s string) (string, bool) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:], true
	}
	return "", false
}

func toBig(value any) *big.Int {
	switch v := value.(type) {
	case *big.Int:
		if v == nil {
			return new(big.Int)
		}
		return v
	case string:
		trimmed := strings.TrimSpace(v)
		base := 10
		if rest, ok := strip0x(trimmed); ok {
			trimmed, base = rest, 16
		}
		n, ok := new(big.Int).SetString(trimmed, base)
		if !ok {
			return new(big.Int)
		}
		return n
	case float64:
		if v < 0 {
			return new(big.Int)
		}
		return new(big.Int).SetUint64(uint64(v))
	default:
		return new(big.Int).SetUint64(toUint64(value))
	}
}

func toAddress(value any) common.Address {
	switch v := value.(type) {
	case common.Address:
		return v
	case string:
		if trimmed := strings.TrimSpace(v); isAddressLiteral(trimmed) {
			return common.HexToAddress(trimmed)
		}
		return common.Address{}
	default:
		return common.Address{}
	}
}

// isAddressLiteral matches the canonical form only: a 0x prefix followed by
// exactly 40 hex digits. common.IsHexAddress alone treats the prefix as
// optional, which would let a bare 40-hex-digit line through the filter.
func isAddressLiteral(s string) bool {
	_, prefixed := strip0x(s)
	return prefixed && common.IsHexAddress(s)
}

func toString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case uint64:
		return strconv.FormatUint(v, 10)
	case int:
		return strconv.Itoa(v)
	default:
		return stringify(value)
	}
}

// toStrings passes sequences through element-wise; a single string is treated
// as a textarea payload and split on newlines, dropping blank lines.
func toStrings(value any) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, toString(item))
		}
		return out
	case string:
		return splitLines(v)
	default:
		return []string{}
	}
}

// toAddresses mirrors toStrings but additionally filters the textarea path:
// lines that are not 0x-prefixed 40-hex-digit addresses are silently dropped.
// Already-structured sequences pass through without filtering.
func toAddresses(value any) []common.Address {
	switch v := value.(type) {
	case nil:
		return []common.Address{}
	case []common.Address:
		return v
	case []string:
		out := make([]common.Address, 0, len(v))
		for _, item := range v {
			out = append(out, common.HexToAddress(strings.TrimSpace(item)))
		}
		return out
	case []any:
		out := make([]common.Address, 0, len(v))
		for _, item := range v {
			out = append(out, toAddress(item))
		}
		return out
	case string:
		out := []common.Address{}
		for _, line := range splitLines(v) {
			if isAddressLiteral(line) {
				out = append(out, common.HexToAddress(line))
			}
		}
		return out
	default:
		return []common.Address{}
	}
}

func stringify(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
