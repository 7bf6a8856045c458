// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import "errors"

var (
	// ErrFrozen is returned by every mutating method of a frozen container.
	ErrFrozen = errors.New("cannot assign to read only value")
	// ErrIndexOutOfRange is returned by [Array.Set] for an index outside the array.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrUnsupportedValue is returned by [FromAny] for Go values that have no
	// document representation.
	ErrUnsupportedValue = errors.New("unsupported value")
)
