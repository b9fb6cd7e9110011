// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package safe runs callbacks that may panic, including panics raised
// by the runtime when a traversal faults, and reports them as errors.
package safe

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

const captureDepth = 32

// A RecoveredError is returned in place of a panic. Stack holds the
// program counters of the panicking goroutine, starting at the frame
// that raised the panic.
type RecoveredError struct {
	Err   error
	Stack []uintptr
}

// Error renders the panic value followed by one line per stack frame.
func (e *RecoveredError) Error() string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "recovered: %v\n", e.Err)
	frames := runtime.CallersFrames(e.Stack)
	for {
		frame, more := frames.Next()
		_, _ = fmt.Fprintf(&sb, "%s ( %s:%d )\n", frame.Function, frame.File, frame.Line)
		if !more {
			return sb.String()
		}
	}
}

// Unwrap allows errors.Is and errors.As to see the panic value.
func (e *RecoveredError) Unwrap() error { return e.Err }

// Call runs fn, reporting a panic as a *RecoveredError. It returns nil
// if fn completes normally.
func Call(fn func()) error {
	return CallE(func() error {
		fn()
		return nil
	})
}

// CallE runs fn and returns its error unchanged. If fn panics instead,
// the panic value is returned as a *RecoveredError; a panic value that
// is not an error is formatted with a "panic: " prefix.
func CallE(fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		panicErr, ok := r.(error)
		if !ok {
			panicErr = fmt.Errorf("panic: %v", r)
		}
		// Skip runtime.Callers and this closure.
		stack := make([]uintptr, captureDepth)
		stack = stack[:runtime.Callers(2, stack)]
		err = &RecoveredError{
			Err:   errors.Join(err, panicErr),
			Stack: stack,
		}
	}()
	return fn()
}
