// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package seq contains lazy, order-preserving helpers for [iter.Seq]
// sequences.
//
// Every function in this package pulls elements from its input only as
// they are demanded by the consumer. This makes them suitable for
// single-pass sources, such as a nullterm.Iter, where reading one
// element too many is not merely wasteful but may touch memory that
// the caller has not vouched for.
package seq
