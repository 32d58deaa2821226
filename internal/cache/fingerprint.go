// Lenscape - Photography Social Network Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lenscape

package cache

import (
	"bytes"
	"encoding/base64"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
)

// FingerprintLength is the maximum length of a key produced by Fingerprint.
const FingerprintLength = 50

// Param is a single named request field.
type Param struct {
	Key   string
	Value interface{}
}

// Params is an ordered list of request fields. Order is significant:
// it is preserved exactly as supplied when fingerprinting.
type Params []Param

// ErrParamsNotObject is returned by ParseParams when the input is not a JSON object.
var ErrParamsNotObject = errors.New("params must be a JSON object")

// Fingerprint derives a cache key from a request category and its parameters.
//
// The parameters are serialized as a JSON object in the order given, prefixed
// with the category, base64 encoded and cut to FingerprintLength characters.
// Field order matters: {a,b} and {b,a} produce different keys. Because of the
// truncation, requests whose serialized form shares its first 37 bytes map to
// the same key.
func Fingerprint(category string, params Params) string {
	var b strings.Builder
	b.WriteString(category)
	b.WriteByte(':')
	writeParams(&b, params)

	encoded := base64.StdEncoding.EncodeToString([]byte(b.String()))
	if len(encoded) > FingerprintLength {
		return encoded[:FingerprintLength]
	}
	return encoded
}

// writeParams renders params as a JSON object preserving field order.
func writeParams(b *strings.Builder, params Params) {
	b.WriteByte('{')
	for i, p := range params {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(p.Key)
		if err != nil {
			key = []byte(fmt.Sprintf("%q", p.Key))
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(encodeValue(p.Value))
	}
	b.WriteByte('}')
}

// encodeValue serializes a parameter value, falling back to its quoted text form.
func encodeValue(v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		return []byte(fmt.Sprintf("%q", fmt.Sprint(v)))
	}
	return data
}

// Get returns the value for key and whether it was present.
func (p Params) Get(key string) (interface{}, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return nil, false
}

// Map returns the params as an unordered map for transports that need one.
func (p Params) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(p))
	for _, param := range p {
		m[param.Key] = param.Value
	}
	return m
}

// MarshalJSON renders params as a JSON object in their original order.
func (p Params) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	writeParams(&b, p)
	return []byte(b.String()), nil
}

// UnmarshalJSON decodes a JSON object keeping the order of its fields.
func (p *Params) UnmarshalJSON(data []byte) error {
	parsed, err := ParseParams(data)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParseParams decodes a JSON object into Params, preserving field order.
// Nested values are decoded into generic Go values. A JSON null yields nil params.
func ParseParams(data []byte) (Params, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	dec := stdjson.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read params: %w", err)
	}
	if delim, ok := tok.(stdjson.Delim); !ok || delim != '{' {
		return nil, ErrParamsNotObject
	}

	params := Params{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read param key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected param key %v", keyTok)
		}

		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("failed to decode param %q: %w", key, err)
		}
		params = append(params, Param{Key: key, Value: normalizeNumber(value)})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to close params object: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after params object")
	}

	return params, nil
}

// normalizeNumber converts a top-level json.Number to int64 or float64 so
// fingerprints match values supplied directly from Go.
func normalizeNumber(v interface{}) interface{} {
	n, ok := v.(stdjson.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
