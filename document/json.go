// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Parse decodes a single JSON document. Trailing data after the first value
// is an error.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("error decoding json document: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("error decoding json document: unexpected data after top-level value")
	}

	return FromAny(raw)
}

// FromAny converts plain Go values (as produced by encoding/json or built
// by hand) into a mutable document tree.
func FromAny(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return Clone(v), nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case json.Number:
		return Number(v), nil
	case float64:
		return Number(strconv.FormatFloat(v, 'f', -1, 64)), nil
	case float32:
		return Number(strconv.FormatFloat(float64(v), 'f', -1, 32)), nil
	case int:
		return Number(strconv.Itoa(v)), nil
	case int64:
		return Number(strconv.FormatInt(v, 10)), nil
	case uint64:
		return Number(strconv.FormatUint(v, 10)), nil
	case []any:
		arr := &Array{items: make([]Value, len(v))}
		for i, item := range v {
			child, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			arr.items[i] = child
		}
		return arr, nil
	case map[string]any:
		obj := &Object{fields: make(map[string]Value, len(v))}
		for k, item := range v {
			child, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			obj.fields[k] = child
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, raw)
	}
}

// ToAny converts v into plain Go values: map[string]any, []any, string,
// bool, json.Number and nil.
func ToAny(v Value) any {
	switch c := v.(type) {
	case *Object:
		out := make(map[string]any, len(c.fields))
		for k, child := range c.fields {
			out[k] = ToAny(child)
		}
		return out
	case *Array:
		out := make([]any, len(c.items))
		for i, child := range c.items {
			out[i] = ToAny(child)
		}
		return out
	case String:
		return string(c)
	case Bool:
		return bool(c)
	case Number:
		return json.Number(c)
	default:
		return nil
	}
}

func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !json.Valid([]byte(n)) {
		return nil, fmt.Errorf("invalid number literal %q", string(n))
	}
	return []byte(n), nil
}

func (o *Object) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.fields)
}

func (a *Array) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.items)
}
