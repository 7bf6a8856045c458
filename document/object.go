// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"fmt"
	"maps"
	"slices"
)

// Object is a JSON object. The zero value is not usable; create objects
// with [NewObject].
type Object struct {
	fields map[string]Value
	frozen bool
}

// NewObject returns an empty, mutable object.
func NewObject() *Object {
	return &Object{fields: make(map[string]Value)}
}

func (*Object) Kind() Kind { return KindObject }
func (*Object) isValue()   {}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.fields[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.fields[key]
	return ok
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.fields)
}

// Keys returns the keys in lexical order.
func (o *Object) Keys() []string {
	return slices.Sorted(maps.Keys(o.fields))
}

// Set stores v under key, replacing any previous value.
func (o *Object) Set(key string, v Value) error {
	if o.frozen {
		return fmt.Errorf("%w: key %q", ErrFrozen, key)
	}
	if v == nil {
		v = Null{}
	}
	o.fields[key] = v
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (o *Object) Delete(key string) error {
	if o.frozen {
		return fmt.Errorf("%w: key %q", ErrFrozen, key)
	}
	delete(o.fields, key)
	return nil
}

// Assign copies every top-level key of src into o, replacing values that
// already exist. Nested containers are not combined: a key supplied by src
// replaces the previous value as a whole.
func (o *Object) Assign(src *Object) error {
	if o.frozen {
		return ErrFrozen
	}
	maps.Copy(o.fields, src.fields)
	return nil
}

// Frozen reports whether the object has been frozen.
func (o *Object) Frozen() bool {
	return o.frozen
}

// Range calls fn for every key in lexical order until fn returns false.
func (o *Object) Range(fn func(key string, v Value) bool) {
	for _, k := range o.Keys() {
		if !fn(k, o.fields[k]) {
			return
		}
	}
}
