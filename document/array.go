// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"fmt"
	"slices"
)

// Array is a JSON array.
type Array struct {
	items  []Value
	frozen bool
}

// NewArray returns a mutable array holding items. Nil items become [Null].
func NewArray(items ...Value) *Array {
	a := &Array{items: make([]Value, len(items))}
	for i, v := range items {
		if v == nil {
			v = Null{}
		}
		a.items[i] = v
	}
	return a
}

func (*Array) Kind() Kind { return KindArray }
func (*Array) isValue()   {}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.items)
}

// At returns the element at index i.
func (a *Array) At(i int) (Value, bool) {
	if i < 0 || i >= len(a.items) {
		return nil, false
	}
	return a.items[i], true
}

// Items returns a copy of the elements.
func (a *Array) Items() []Value {
	return slices.Clone(a.items)
}

// Set replaces the element at index i.
func (a *Array) Set(i int, v Value) error {
	if a.frozen {
		return fmt.Errorf("%w: index %d", ErrFrozen, i)
	}
	if i < 0 || i >= len(a.items) {
		return fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, i, len(a.items))
	}
	if v == nil {
		v = Null{}
	}
	a.items[i] = v
	return nil
}

// Append adds v to the end of the array.
func (a *Array) Append(v Value) error {
	if a.frozen {
		return ErrFrozen
	}
	if v == nil {
		v = Null{}
	}
	a.items = append(a.items, v)
	return nil
}

// Frozen reports whether the array has been frozen.
func (a *Array) Frozen() bool {
	return a.frozen
}
