// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package nullterm

import "unsafe"

// Integer is the set of fixed-width integer types that may be used as
// array elements.
type Integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 |
		~int64 | ~uint64 | ~int | ~uint | ~uintptr
}

// Element is the set of types whose terminator can be recognized by
// [IsZero]. Typed pointers are handled by [IsNil] and
// [UnsafePointers].
type Element interface {
	Integer | unsafe.Pointer
}

// IsZero reports whether v is the terminating sentinel for its type:
// numeric zero for integers or the nil address for an
// [unsafe.Pointer].
func IsZero[T Element](v T) bool {
	var zero T
	return v == zero
}

// IsNil reports whether p is the terminating sentinel of an array of
// typed pointers.
func IsNil[E any](p *E) bool { return p == nil }
