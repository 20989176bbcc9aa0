//go:build assert_enabled

package main

import (
	"fmt"
	"runtime"
)

// Assert panics if condition is false, naming the line of the failed check.
// Build with -tags assert_enabled to turn the World's invariant checks on.
func Assert(condition bool) {
	if condition {
		return
	}
	if _, file, line, ok := runtime.Caller(1); ok {
		panic(fmt.Errorf("assert failed at %s:%d", file, line))
	}
	panic("assert failed")
}
