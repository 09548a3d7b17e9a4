package resolve

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// OrderedObject is a JSON object that remembers the declaration order of
// its keys. Plain map[string]any unmarshaling loses that order, but the
// alias table and the exports tree both depend on it: "first entry
// whose key matches wins" only means something if insertion order
// survived parsing.
type OrderedObject struct {
	keys   []string
	values map[string]any
}

func (o OrderedObject) Len() int        { return len(o.keys) }
func (o OrderedObject) Keys() []string  { return o.keys }
func (o OrderedObject) Get(k string) (any, bool) {
	v, ok := o.values[k]
	return v, ok
}

func (o *OrderedObject) set(k string, v any) {
	if o.values == nil {
		o.values = map[string]any{}
	}
	if _, exists := o.values[k]; !exists {
		o.keys = append(o.keys, k)
	}
	o.values[k] = v
}

// UnmarshalJSON parses an object token by token with a json.Decoder so
// that key order is preserved through arbitrarily nested objects and
// arrays. Non-object JSON (string, number, array, null, bool) is
// rejected — callers that need to accept those shapes too should
// unmarshal into a StringOrObject instead.
func (o *OrderedObject) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return fmt.Errorf("resolve: expected JSON object, got %v", tok)
	}
	return o.parse(dec)
}

func (o *OrderedObject) parse(dec *json.Decoder) error {
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("resolve: expected object key, got %v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return err
		}
		o.set(key, val)
	}
	// consume the closing '}'
	_, err := dec.Token()
	return err
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			child := &OrderedObject{}
			if err := child.parse(dec); err != nil {
				return nil, err
			}
			return child, nil
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("resolve: unexpected delimiter %v", v)
		}
	default:
		return tok, nil
	}
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	var arr []any
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	// consume the closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// StringOrObject unmarshals a manifest field that npm packages
// sometimes write as a bare string and sometimes as an object — browser
// and exports are the two fields this resolver cares about.
type StringOrObject struct {
	Str   string
	Obj   OrderedObject
	IsObj bool
	IsSet bool
}

func (s *StringOrObject) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil
	}
	s.IsSet = true
	if trimmed[0] == '"' {
		return json.Unmarshal(b, &s.Str)
	}
	if trimmed[0] == '{' {
		s.IsObj = true
		return s.Obj.UnmarshalJSON(b)
	}
	return fmt.Errorf("resolve: field must be a string or object, got %s", trimmed)
}
