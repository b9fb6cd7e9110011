// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

//go:build linux || darwin

package nullterm

import (
	"os"
	"syscall"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// TestGuardUnterminated walks a page of nonzero bytes that is followed
// by an unreadable page, so the traversal runs off the end of the
// readable memory.
func TestGuardUnterminated(t *testing.T) {
	r := require.New(t)

	page := os.Getpagesize()
	mem, err := syscall.Mmap(-1, 0, 2*page,
		syscall.PROT_READ|syscall.PROT_WRITE,
		syscall.MAP_ANON|syscall.MAP_PRIVATE)
	r.NoError(err)
	defer func() { r.NoError(syscall.Munmap(mem)) }()

	r.NoError(syscall.Mprotect(mem[page:], syscall.PROT_NONE))
	for i := range page {
		mem[i] = 1
	}

	count := 0
	err = Guard(func() {
		for range Unsafe(&mem[0]).All() {
			count++
		}
	})
	r.Error(err)
	r.Equal(page, count)

	addr, ok := FaultAddr(err)
	r.True(ok)
	r.Equal(uintptr(unsafe.Pointer(&mem[page])), addr)
}
