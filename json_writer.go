package cashbuddy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
)

// jsonObjectWriter builds a JSON object whose keys keep their insertion
// order. Its zero value is ready to use. The first failure sticks and is
// returned by MarshalJSON.
type jsonObjectWriter struct {
	fields []jsonField
	err    error
}

type jsonField struct {
	key   string
	value json.RawMessage
}

// Append adds key with the JSON encoding of value.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}
	w.fields = append(w.fields, jsonField{key: key, value: raw})
	return w
}

// Optional adds key only when value is not the zero value of its type.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if v := reflect.ValueOf(value); !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Append(key, value)
}

// Embed adds every field of the raw JSON object, in their order.
func (w *jsonObjectWriter) Embed(rawJSON []byte) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	dec := json.NewDecoder(bytes.NewReader(rawJSON))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		w.err = fmt.Errorf("cannot embed %s: not a JSON object", rawJSON)
		return w
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			w.err = fmt.Errorf("cannot embed %s: %w", rawJSON, err)
			return w
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			w.err = fmt.Errorf("cannot embed %s: %w", rawJSON, err)
			return w
		}
		w.fields = append(w.fields, jsonField{key: tok.(string), value: value})
	}
	return w
}

// EmbedFrom adds every field of the object v encodes to.
func (w *jsonObjectWriter) EmbedFrom(v any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal for embedding: %w", err)
		return w
	}
	return w.Embed(raw)
}

// MarshalJSON returns the object built so far.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range w.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(f.key)
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(f.value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WriteLine writes the object and a newline: one JSONL record.
func (w *jsonObjectWriter) WriteLine(out io.Writer) error {
	data, err := w.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = out.Write(append(data, '\n'))
	return err
}
