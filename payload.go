package cchooks

import (
	"bytes"
	"io"

	"github.com/tidwall/gjson"
)

// Payload is a read-only field view over the raw JSON object a hook
// invocation received on its input channel. It answers presence and value
// queries without materializing the document; contexts keep their Payload
// for the lifetime of the invocation, so accessors stay byte-faithful to
// the original input.
type Payload struct {
	raw []byte
}

// ReadPayload consumes the whole input channel and parses it as a JSON
// object. Anything else — empty input, malformed JSON, or a JSON value that
// is not an object (a string, an array, a double-encoded document) — fails
// with a ParseError.
func ReadPayload(r io.Reader) (Payload, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Payload{}, &ParseError{msg: "read hook input", err: err}
	}
	return ParsePayload(raw)
}

// ParsePayload parses raw bytes as a JSON object. See ReadPayload.
func ParsePayload(raw []byte) (Payload, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || !gjson.ValidBytes(trimmed) {
		return Payload{}, &ParseError{msg: "input must be a JSON object", err: ErrInvalidJSON}
	}
	if !gjson.ParseBytes(trimmed).IsObject() {
		return Payload{}, &ParseError{msg: "input must be a JSON object"}
	}
	return Payload{raw: trimmed}, nil
}

// HasField reports whether the path exists in the payload. A field set to
// JSON null still exists; validation is presence-only throughout this
// package.
func (p Payload) HasField(path string) bool {
	return gjson.GetBytes(p.raw, path).Exists()
}

// GetString returns the string value at path, or false if the path is
// absent or holds a non-string value.
func (p Payload) GetString(path string) (string, bool) {
	r := gjson.GetBytes(p.raw, path)
	if !r.Exists() || r.Type != gjson.String {
		return "", false
	}
	return r.String(), true
}

// GetBytes returns the raw JSON value at path, or false if absent. Strings
// keep their quotes; objects and arrays come back verbatim.
func (p Payload) GetBytes(path string) ([]byte, bool) {
	r := gjson.GetBytes(p.raw, path)
	if !r.Exists() {
		return nil, false
	}
	return []byte(r.Raw), true
}

// Raw returns the payload bytes as received, surrounding whitespace
// stripped.
func (p Payload) Raw() []byte { return p.raw }

// str returns the value at path coerced to a string. Absent paths and JSON
// null yield "". Accessors use this deliberately loose read: the validation
// layer guarantees presence only, never value types.
func (p Payload) str(path string) string {
	r := gjson.GetBytes(p.raw, path)
	if r.Type == gjson.Null {
		return ""
	}
	return r.String()
}

// boolean returns the value at path coerced to a bool ("true", 1, etc.
// count as true). Absent paths yield false.
func (p Payload) boolean(path string) bool {
	return gjson.GetBytes(p.raw, path).Bool()
}

// object returns the value at path as a map, or nil when the path is absent
// or holds a non-object value.
func (p Payload) object(path string) map[string]any {
	if m, ok := gjson.GetBytes(p.raw, path).Value().(map[string]any); ok {
		return m
	}
	return nil
}
