// Package logging provides the single logging backend used across chesscore.
// Core hot paths (make/unmake, move generation) never log; the only user is
// the priority map, which logs when it is resized.
package logging

import (
	"os"

	. "github.com/op/go-logging"
)

// GetLog returns a named logger writing to stdout with a fixed format.
func GetLog(name string) *Logger {
	log := MustGetLogger(name)
	backend := NewLogBackend(os.Stdout, "", 0)
	format := MustStringFormatter(
		`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
	)
	backendFormatter := NewBackendFormatter(backend, format)
	backendLeveled := AddModuleLevel(backendFormatter)
	backendLeveled.SetLevel(NOTICE, "")
	SetBackend(backendLeveled)
	return log
}
