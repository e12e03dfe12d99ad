// Package daemonctl locates the tuning daemon through its pid-file and
// delivers control signals to it.
//
// The pid-file is owned by the daemon; this package only reads it. Absent,
// malformed, and stale pid-files are ordinary states: they resolve to "no
// daemon" rather than to an error.
package daemonctl
