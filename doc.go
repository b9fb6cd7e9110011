// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package nullterm traverses null-terminated arrays: runs of
// fixed-width elements that end with a zero element instead of
// carrying a length. Such arrays are common at C boundaries, for
// example char* strings, argv and environ vectors, and NULL-terminated
// lists of struct pointers.
//
// # Sentinels
//
// The terminator is determined by the element type. For the integer
// types in [Integer] it is numeric zero; for [unsafe.Pointer] and for
// typed pointers it is nil. [IsZero] and [IsNil] implement these rules.
// A zero value can never be part of the data: the first one ends the
// array. If the producer of the memory uses some other terminator,
// this package cannot detect it.
//
// # Trusted views
//
// [Unsafe] and [UnsafePointers] return an [Iter] that reads one
// element per call to [Iter.Next] and advances by the size of the
// element. Nothing is validated up front, because there is no way to
// know how far the memory extends without reading it. The caller
// guarantees that the memory is readable up to and including the
// sentinel, that it is not modified during the traversal, and, for
// memory on the Go heap, that it is kept alive. If any of these does
// not hold, the behavior of the program is undefined.
//
//	it := nullterm.Unsafe((*byte)(unsafe.Pointer(cstr)))
//	for b := range it.All() {
//	    // ...
//	}
//
// An Iter is single-pass. Once it has read the sentinel it reports
// exhaustion forever and never touches memory again. Abandoning an Iter
// part-way through has no effect on the memory it was reading.
//
// # Bounded access
//
// [UnsafeLen] and [UnsafeSlice] scan no more than a caller-provided
// number of elements, returning [ErrUnterminated] if no sentinel is
// found. [UnsafeSlice] returns a view of the original memory without
// copying it. When the data is already held in a Go slice, [FromSlice]
// verifies that a sentinel is present and returns an Iter that cannot
// leave the slice.
//
// [Guard] may be used during development to turn a fault caused by a
// missing terminator into an error, provided the stray read lands on
// unmapped memory.
//
// # Composition
//
// [Iter.All] adapts an Iter to [iter.Seq], so it may be used with
// range loops, [slices.Collect], and the lazy helpers in the seq
// sub-package.
package nullterm
