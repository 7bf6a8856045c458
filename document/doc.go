// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package document models parsed settings documents as a closed set of
// value kinds: [Null], [Bool], [Number], [String], [*Array] and [*Object].
//
// Containers can be frozen with [Freeze]. A frozen container rejects every
// write with [ErrFrozen]; readers never receive a handle to the underlying
// storage, so a frozen tree stays read-only all the way down.
package document
