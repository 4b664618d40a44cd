package helpers

import (
	"bytes"
	"encoding/json"
)

// MarshalJson encodes v without HTML escaping, so the result can be
// embedded verbatim inside generated code.
func MarshalJson(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(v)
	return bytes.TrimRight(buf.Bytes(), "\n"), err
}
