//go:build !debug

// Package assert provides lightweight programmer-error checks that compile
// away to nothing in release builds. The one caller in this module is the
// move list's PushBack, which checks for a full list; callers wrap calls
// in `if assert.DEBUG { ... }` so the guarded expression itself is
// eliminated by the compiler, not just the check inside it.
package assert

// DEBUG is true only when built with the "debug" build tag.
const DEBUG = false

// Assert is a no-op in release builds.
func Assert(test bool, msg string, a ...interface{}) {}
