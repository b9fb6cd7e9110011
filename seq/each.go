// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"errors"
	"fmt"
	"iter"

	"vawter.tech/nullterm/internal/safe"
)

// Each executes the callback for every item in the sequence, in order.
//
// Any error returned by the callback is annotated with the index of
// the item and does not stop the iteration. A panicking callback is
// recovered and reported in the same way. All errors are combined
// with [errors.Join].
func Each[T any](items iter.Seq[T], fn func(int, T) error) error {
	var errs []error
	idx := 0
	for item := range items {
		count := idx
		idx++
		if err := safe.CallE(func() error {
			return fn(count, item)
		}); err != nil {
			errs = append(errs, fmt.Errorf("index %d: %w", count, err))
		}
	}
	return errors.Join(errs...)
}
