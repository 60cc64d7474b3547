// Package monitoring routes the transient-condition logging spec §7
// requires: transient sensor errors (b) and search failures (c) are never
// returned as Go errors -- they're filtered/handled in place and logged here
// so an operator can see their rate, grounded on the teacher's swappable
// package-level logger (internal/monitoring/logger.go).
package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf but
// may be replaced by SetLogger, so tests can capture or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// LogTransient records a spec §7(b) transient sensor error -- a missing
// timestamp, an out-of-band range, or an odometry teleport -- that a
// component filtered rather than surfacing as an error return.
func LogTransient(component, format string, v ...interface{}) {
	Logf("transient["+component+"]: "+format, v...)
}

// LogSearchFailure records a spec §7(c) search failure: the global planner
// found no path and reported it upward as an empty sequence rather than an
// error, which the navigation coordinator treats as "hold position".
func LogSearchFailure(component, format string, v ...interface{}) {
	Logf("search-failure["+component+"]: "+format, v...)
}
