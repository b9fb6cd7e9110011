// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package nullterm

import (
	"iter"
	"unsafe"
)

// An Iter is a forward-only cursor over a null-terminated array. It
// owns none of the memory it reads and may be dropped at any time.
//
// An Iter is not safe for concurrent use.
type Iter[T any] struct {
	done   bool
	isZero func(T) bool
	ptr    *T // Next element to read; never advanced past the sentinel.
}

// Unsafe returns an Iter that reads elements starting at p and stops
// before the first element for which [IsZero] returns true.
//
// Unsafe performs no validation. The caller must guarantee that p
// refers to readable memory, that a sentinel is reachable from p
// without leaving that memory, and that nothing writes to the region
// while the Iter is in use. Memory on the Go heap must be kept alive
// by the caller until iteration is complete. Violating any of these
// conditions is undefined behavior, which may surface on any later
// call to [Iter.Next] rather than here.
//
// A nil p yields an empty sequence.
func Unsafe[T Element](p *T) *Iter[T] {
	return &Iter[T]{
		done:   p == nil,
		isZero: IsZero[T],
		ptr:    p,
	}
}

// UnsafePointers is a variant of [Unsafe] for arrays of typed pointers,
// such as a C argv. Iteration stops before the first nil element. The
// caller assumes the same obligations as for [Unsafe].
func UnsafePointers[E any](p **E) *Iter[*E] {
	return &Iter[*E]{
		done:   p == nil,
		isZero: IsNil[E],
		ptr:    p,
	}
}

// Next returns the next element of the array. Once the sentinel has
// been read, Next returns false and will not touch memory again.
func (it *Iter[T]) Next() (T, bool) {
	var zero T
	if it.done {
		return zero, false
	}
	v := *it.ptr
	if it.isZero(v) {
		it.done = true
		it.ptr = nil
		return zero, false
	}
	it.ptr = (*T)(unsafe.Add(unsafe.Pointer(it.ptr), unsafe.Sizeof(v)))
	return v, true
}

// All returns a sequence that drains the Iter. The sequence shares the
// Iter's position: ranging over it a second time resumes where the
// previous loop stopped and yields nothing once the sentinel has been
// reached.
func (it *Iter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
