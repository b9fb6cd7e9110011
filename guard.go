// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package nullterm

import (
	"errors"
	"runtime/debug"

	"vawter.tech/nullterm/internal/safe"
)

// Guard executes fn on the current goroutine with
// [debug.SetPanicOnFault] enabled, returning any panic as an error.
// This allows a traversal that strays into unmapped memory to be
// reported instead of crashing the process.
//
// Guard is a diagnostic aid, not a safety mechanism. Reading memory
// that is mapped but does not belong to the array cannot be detected,
// and the process state after a fault is not guaranteed to be sound.
func Guard(fn func()) error {
	prev := debug.SetPanicOnFault(true)
	defer debug.SetPanicOnFault(prev)
	return safe.Call(fn)
}

// FaultAddr returns the address that triggered a memory fault within
// [Guard], if the runtime reported one.
func FaultAddr(err error) (uintptr, bool) {
	var fault interface {
		error
		Addr() uintptr
	}
	if errors.As(err, &fault) {
		return fault.Addr(), true
	}
	return 0, false
}
