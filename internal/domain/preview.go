package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	previewFieldCount = 3
	previewValueWidth = 40
)

// BuildPreview returns the first top-level keys of a JSON object in document
// order, with containers shown as "..." and scalars JSON-encoded and
// truncated. more is true when the object has additional keys.
func BuildPreview(document []byte) (fields []PreviewField, more bool, err error) {
	dec := json.NewDecoder(bytes.NewReader(document))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, false, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, false, nil
	}

	count := 0
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, false, err
		}
		key, _ := keyTok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, false, err
		}

		count++
		if count > previewFieldCount {
			continue
		}
		fields = append(fields, PreviewField{Key: key, Value: previewValue(value)})
	}
	return fields, count > previewFieldCount, nil
}

func previewValue(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return "..."
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return string(trimmed)
	}
	s := compact.String()
	if len([]rune(s)) > previewValueWidth {
		return fmt.Sprintf("%s...", string([]rune(s)[:previewValueWidth]))
	}
	return s
}
