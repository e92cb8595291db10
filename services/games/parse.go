package games

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

var (
	openingFence = regexp.MustCompile("^```(?:json)?\\s*")
	closingFence = regexp.MustCompile("\\s*```$")
)

// stripFences removes the markdown code fence the model sometimes wraps its
// answer in. Whitespace around the fence is ignored.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	text = openingFence.ReplaceAllString(text, "")
	text = closingFence.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// decodeReply turns a completion into the fields of its top-level JSON
// object. formatMessage is used when the text is not JSON at all.
func decodeReply(text, formatMessage string) (map[string]json.RawMessage, error) {
	if text == "" {
		return nil, &UpstreamEmptyError{}
	}

	cleaned := []byte(stripFences(text))
	if !json.Valid(cleaned) {
		var probe any
		err := json.Unmarshal(cleaned, &probe)
		return nil, &ResponseFormatError{Message: formatMessage, Cause: err}
	}
	if len(cleaned) == 0 || cleaned[0] != '{' {
		return nil, &InvalidSchemaError{Message: MsgInvalidStructure}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(cleaned, &fields); err != nil {
		return nil, &ResponseFormatError{Message: formatMessage, Cause: err}
	}
	return fields, nil
}

// field decodes fields[key] into dst. Missing keys and JSON null report
// present=false and leave dst untouched.
func field(fields map[string]json.RawMessage, key string, dst any) (present bool, err error) {
	raw, ok := fields[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return true, &InvalidSchemaError{Message: MsgInvalidStructure}
	}
	return true, nil
}
