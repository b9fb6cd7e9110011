// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq_test

import (
	"fmt"
	"slices"
	"strings"

	"vawter.tech/nullterm"
	"vawter.tech/nullterm/seq"
)

func ExampleMap() {
	// Upper-case a C string without copying it first.
	buf := []byte("hello\x00")
	it, err := nullterm.FromSlice(buf)
	if err != nil {
		panic(err)
	}
	upper := seq.Map(it.All(), func(_ int, b byte) string {
		return strings.ToUpper(string(b))
	})
	fmt.Println(strings.Join(slices.Collect(upper), ""))

	// Output:
	// HELLO
}

func ExampleFilter() {
	items := slices.Values([]int{1, 2, 3, 4, 5})
	for v := range seq.Filter(items, func(v int) bool { return v%2 == 1 }) {
		fmt.Println(v)
	}

	// Output:
	// 1
	// 3
	// 5
}

func ExampleTake() {
	buf := []uint32{10, 20, 30, 0}
	it, err := nullterm.FromSlice(buf)
	if err != nil {
		panic(err)
	}
	fmt.Println(slices.Collect(seq.Take(it.All(), 2)))

	// Output:
	// [10 20]
}

func ExampleEach() {
	err := seq.Each(slices.Values([]string{"alpha", "bravo"}),
		func(idx int, s string) error {
			fmt.Printf("%d: %s\n", idx, s)
			return nil
		},
	)
	if err != nil {
		panic(err)
	}

	// Output:
	// 0: alpha
	// 1: bravo
}
