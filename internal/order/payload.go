package order

import (
	"fmt"
	"strings"

	"github.com/khmershop/labelbot/internal/common"
)

// Print-action payload schema, version 1:
//
//	v1|customer_name|phone|location|address|total_amount|payment_status|shipping_method
//
// Values are joined with '|'; a literal '|' or '\' inside a value is escaped
// with '\'. Decoding rejects unknown versions and any payload that does not
// split into exactly seven values, so a delimiter collision surfaces as a
// decode failure instead of silently misaligned fields.
const (
	payloadVersion    = "v1"
	payloadFieldCount = 7
)

// EncodePayload serializes the fields into an opaque action payload.
func EncodePayload(f Fields) string {
	parts := make([]string, 0, payloadFieldCount+1)
	parts = append(parts, payloadVersion)
	for _, v := range f.values() {
		parts = append(parts, escapeValue(v))
	}
	return strings.Join(parts, "|")
}

// DecodePayload is the inverse of EncodePayload.
func DecodePayload(s string) (Fields, error) {
	parts, err := splitPayload(s)
	if err != nil {
		return Fields{}, err
	}
	if parts[0] != payloadVersion {
		return Fields{}, fmt.Errorf("%w: unknown version %q", common.ErrPayloadDecode, parts[0])
	}
	if len(parts)-1 != payloadFieldCount {
		return Fields{}, fmt.Errorf("%w: got %d fields, want %d", common.ErrPayloadDecode, len(parts)-1, payloadFieldCount)
	}
	return fieldsFromValues(parts[1:]), nil
}

func escapeValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, "|", `\|`)
}

// splitPayload splits on unescaped '|' and resolves '\' escapes.
func splitPayload(s string) ([]string, error) {
	var parts []string
	var b strings.Builder
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '|':
			parts = append(parts, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	if escaped {
		return nil, fmt.Errorf("%w: dangling escape", common.ErrPayloadDecode)
	}
	return append(parts, b.String()), nil
}
