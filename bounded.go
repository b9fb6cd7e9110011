// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package nullterm

import (
	"errors"
	"fmt"
	"unsafe"
)

var (
	// ErrNegativeLimit is returned when a scan limit is less than zero.
	ErrNegativeLimit = errors.New("negative limit")
	// ErrUnterminated is returned when no sentinel was found within the
	// region that was examined.
	ErrUnterminated = errors.New("array is not null-terminated")
)

// FromSlice returns an Iter over the elements of s that precede its
// first sentinel. Unlike [Unsafe], the returned Iter cannot read
// outside of s. If s contains no sentinel, [ErrUnterminated] is
// returned.
func FromSlice[T Element](s []T) (*Iter[T], error) {
	for _, v := range s {
		if IsZero(v) {
			return Unsafe(&s[0]), nil
		}
	}
	return nil, fmt.Errorf("scanned %d elements: %w", len(s), ErrUnterminated)
}

// UnsafeLen returns the number of elements that precede the sentinel in
// the array starting at p. At most limit elements are read, counting
// the sentinel itself; if none of them is a sentinel, [ErrUnterminated]
// is returned. Passing the capacity of the underlying buffer therefore
// never reads past its end.
//
// UnsafeLen is a trusted operation: the caller must guarantee that the
// first limit elements, or every element up to the sentinel if it comes
// sooner, are readable. A nil p has length zero.
func UnsafeLen[T Element](p *T, limit int) (int, error) {
	if limit < 0 {
		return 0, fmt.Errorf("limit %d: %w", limit, ErrNegativeLimit)
	}
	if p == nil {
		return 0, nil
	}
	it := Unsafe(p)
	for n := range limit {
		if _, ok := it.Next(); !ok {
			return n, nil
		}
	}
	return 0, fmt.Errorf("limit %d: %w", limit, ErrUnterminated)
}

// UnsafeSlice returns a view of the elements that precede the sentinel
// in the array starting at p. The returned slice aliases the original
// memory and is valid only as long as that memory is. The scan is
// bounded as described for [UnsafeLen].
func UnsafeSlice[T Element](p *T, limit int) ([]T, error) {
	n, err := UnsafeLen(p, limit)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return unsafe.Slice(p, n), nil
}
