package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ExtraField is one unrecognized key/value pair captured during decode.
// The value keeps the raw wire bytes so it round-trips unchanged.
type ExtraField struct {
	Key   string
	Value json.RawMessage
}

// Extra holds a record's unrecognized fields in wire order.
type Extra []ExtraField

// Get returns the raw value for key and whether it is present.
func (e Extra) Get(key string) (json.RawMessage, bool) {
	for _, f := range e {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// decodeTagged scans one JSON object. Keys the assign func claims go to the
// typed fields; the rest are collected in wire order. A typed key always wins:
// it is never duplicated into the extras.
func decodeTagged(data []byte, assign func(key string, raw json.RawMessage) (bool, error)) (Extra, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var extra Extra
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}

		claimed, err := assign(key, raw)
		if err != nil {
			return nil, err
		}
		if !claimed {
			extra = append(extra, ExtraField{Key: key, Value: raw})
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return extra, nil
}

// taggedField pairs a wire key with its typed value for encoding.
type taggedField struct {
	key string
	val any
}

// encodeTagged serializes typed fields first, then the extras in captured
// order. An extra whose key collides with a typed name is dropped.
func encodeTagged(typed []taggedField, extra Extra) ([]byte, error) {
	names := make(map[string]struct{}, len(typed))
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, f := range typed {
		names[f.key] = struct{}{}
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, f.key, f.val); err != nil {
			return nil, err
		}
	}

	wrote := len(typed)
	for _, f := range extra {
		if _, dup := names[f.Key]; dup {
			continue
		}
		if wrote > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, f.Key, f.Value); err != nil {
			return nil, err
		}
		wrote++
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key string, val any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')

	if raw, ok := val.(json.RawMessage); ok {
		buf.Write(raw)
		return nil
	}
	v, err := json.Marshal(val)
	if err != nil {
		return err
	}
	buf.Write(v)
	return nil
}
