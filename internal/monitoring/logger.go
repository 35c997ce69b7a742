// Package monitoring holds the process-wide diagnostic logger.
package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf but
// may be replaced by SetLogger. Tests can redirect or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Prefixed returns a logger that tags every line with a bracketed subsystem
// name, e.g. Prefixed("CAM") produces "[CAM] ..." lines. The returned
// function reads Logf at call time, so SetLogger applies to sub-loggers
// handed out earlier.
func Prefixed(name string) func(format string, v ...interface{}) {
	tag := "[" + name + "] "
	return func(format string, v ...interface{}) {
		Logf(tag+format, v...)
	}
}
