// Package logging builds the console logger shared by the CLI, the search
// flow and the cache.
package logging

import (
	"io"
	"strings"

	"github.com/phuslu/log"
)

// Levels accepted by New.
var Levels = []string{"trace", "debug", "info", "warn", "error"}

// ValidLevel reports whether name is one of Levels, ignoring case.
func ValidLevel(name string) bool {
	name = strings.ToLower(name)
	for _, l := range Levels {
		if l == name {
			return true
		}
	}
	return false
}

// New returns a console logger writing to w at the named level. Unknown
// level names fall back to info.
func New(level string, w io.Writer) *log.Logger {
	lvl := log.InfoLevel
	if ValidLevel(level) {
		lvl = log.ParseLevel(strings.ToLower(level))
	}

	return &log.Logger{
		Level:  lvl,
		Caller: 0,
		Writer: &log.ConsoleWriter{
			Writer:         w,
			ColorOutput:    false,
			EndWithMessage: true,
		},
	}
}
