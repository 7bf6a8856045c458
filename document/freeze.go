// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

// Freeze makes v and every container reachable from it read-only and
// returns v. Children are frozen before their parent. Freezing an already
// frozen tree is a no-op.
//
// Input must be acyclic, which holds for anything built by [Parse].
func Freeze(v Value) Value {
	switch c := v.(type) {
	case *Object:
		if c.frozen {
			return v
		}
		for _, child := range c.fields {
			Freeze(child)
		}
		c.frozen = true
	case *Array:
		if c.frozen {
			return v
		}
		for _, child := range c.items {
			Freeze(child)
		}
		c.frozen = true
	}
	return v
}

// IsFrozen reports whether v rejects writes. Scalars are immutable and
// always report true.
func IsFrozen(v Value) bool {
	switch c := v.(type) {
	case *Object:
		return c.frozen
	case *Array:
		return c.frozen
	default:
		return true
	}
}

// Clone returns a mutable deep copy of v.
func Clone(v Value) Value {
	switch c := v.(type) {
	case *Object:
		out := &Object{fields: make(map[string]Value, len(c.fields))}
		for k, child := range c.fields {
			out.fields[k] = Clone(child)
		}
		return out
	case *Array:
		out := &Array{items: make([]Value, len(c.items))}
		for i, child := range c.items {
			out.items[i] = Clone(child)
		}
		return out
	default:
		return v
	}
}

// Map rebuilds v bottom-up, replacing every scalar leaf with fn(leaf).
// Arrays keep their positions and objects keep their keys; the result
// shares no container with v.
func Map(v Value, fn func(Value) Value) Value {
	switch c := v.(type) {
	case *Object:
		out := &Object{fields: make(map[string]Value, len(c.fields))}
		for k, child := range c.fields {
			out.fields[k] = Map(child, fn)
		}
		return out
	case *Array:
		out := &Array{items: make([]Value, len(c.items))}
		for i, child := range c.items {
			out.items[i] = Map(child, fn)
		}
		return out
	default:
		if r := fn(v); r != nil {
			return r
		}
		return Null{}
	}
}
