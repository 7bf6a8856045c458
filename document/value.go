// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"encoding/json"
	"strconv"
)

// Kind identifies the variant held by a [Value].
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the lower-case JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a node of a settings document. The set of implementations is
// closed: only the types declared in this package satisfy it.
type Value interface {
	Kind() Kind
	isValue()
}

// Null is the JSON null literal. It is also what an interpolation token
// resolves to when the referenced variable is not set.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Number is a JSON number kept in its literal form, so integers wider than
// float64 precision survive a parse/marshal cycle.
type Number string

// String is a JSON string.
type String string

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}

// Int64 returns the number as an int64.
func (n Number) Int64() (int64, error) {
	return json.Number(n).Int64()
}

// Float64 returns the number as a float64.
func (n Number) Float64() (float64, error) {
	return json.Number(n).Float64()
}

// IsScalar reports whether v is neither an [*Array] nor an [*Object].
func IsScalar(v Value) bool {
	switch v.(type) {
	case *Array, *Object:
		return false
	default:
		return true
	}
}
