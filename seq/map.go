// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import "iter"

// Map returns a sequence that applies fn to each element of items. The
// Nth output is the result of applying fn to the Nth input, and fn is
// given the index of the element.
func Map[T, R any](items iter.Seq[T], fn func(int, T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		idx := 0
		for item := range items {
			if !yield(fn(idx, item)) {
				return
			}
			idx++
		}
	}
}

// Filter returns a sequence of the elements of items for which keep
// returns true.
func Filter[T any](items iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range items {
			if keep(item) && !yield(item) {
				return
			}
		}
	}
}

// Take returns a sequence of at most n elements from items. The input
// is never asked for an element beyond the nth, so a non-positive n
// reads nothing at all.
func Take[T any](items iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		count := 0
		for item := range items {
			if !yield(item) {
				return
			}
			count++
			if count == n {
				return
			}
		}
	}
}
