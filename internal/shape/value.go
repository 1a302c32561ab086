package shape

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is the in-memory representation of a JSON object. Upstream
// payloads are decoded into ordered maps so that key insertion order
// survives the pipeline; the table and CSV renderers derive their column
// order from the first element's keys.
type Object = orderedmap.OrderedMap[string, any]

// NewObject creates an empty ordered JSON object.
func NewObject() *Object {
	return orderedmap.New[string, any]()
}

// DecodeJSON decodes a JSON document into the pipeline's value model:
// objects become *Object (insertion-ordered), arrays []any, numbers
// json.Number, and the remaining scalars their usual Go types.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	value, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	// Trailing garbage after the document is a malformed response.
	if dec.More() {
		return nil, fmt.Errorf("unexpected trailing data after JSON document")
	}
	return value, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	default:
		// string, json.Number, bool or nil
		return tok, nil
	}
}

func decodeObject(dec *json.Decoder) (*Object, error) {
	obj := NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, value)
	}
	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	arr := []any{}
	for dec.More() {
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}
	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// objectKeys returns the keys of v in insertion order if v is an object,
// or nil otherwise.
func objectKeys(v any) []string {
	obj, ok := v.(*Object)
	if !ok || obj == nil {
		return nil
	}
	keys := make([]string, 0, obj.Len())
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// asObject returns v as an ordered object, or nil if it is not one.
func asObject(v any) *Object {
	obj, ok := v.(*Object)
	if !ok {
		return nil
	}
	return obj
}
