package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"slices"
)

// values is a string-keyed map that remembers insertion order of its
// top-level keys, so data written back to storage keeps the layout it was
// loaded with.
type values struct {
	keys []string
	m    map[string]any
}

func newValues() values {
	return values{m: make(map[string]any)}
}

func (v *values) set(key string, value any) {
	if _, ok := v.m[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.m[key] = value
}

func (v *values) delete(key string) {
	if _, ok := v.m[key]; !ok {
		return
	}
	delete(v.m, key)
	v.keys = slices.DeleteFunc(v.keys, func(k string) bool { return k == key })
}

// MarshalJSON encodes the map as a JSON object in key insertion order.
func (v values) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range v.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v.m[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// decodeValues parses a stored JSON object. Anything other than exactly one
// JSON object (including null) is reported as ErrCorruptSession. Numbers are
// kept as json.Number so they survive a round trip unchanged.
func decodeValues(data []byte) (values, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return values{}, errors.Join(ErrCorruptSession, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return values{}, errors.Join(ErrCorruptSession, errors.New("not a JSON object"))
	}

	v := newValues()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return values{}, errors.Join(ErrCorruptSession, err)
		}
		key, ok := tok.(string)
		if !ok {
			return values{}, errors.Join(ErrCorruptSession, errors.New("object key is not a string"))
		}
		var val any
		if err := dec.Decode(&val); err != nil {
			return values{}, errors.Join(ErrCorruptSession, err)
		}
		v.set(key, val)
	}

	if _, err := dec.Token(); err != nil {
		return values{}, errors.Join(ErrCorruptSession, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return values{}, errors.Join(ErrCorruptSession, errors.New("trailing data after object"))
	}

	return v, nil
}
