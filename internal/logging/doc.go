// Package logging assembles structured slog loggers for tuned-adm.
//
// It owns the console and JSON handlers, level parsing, and output plumbing,
// and exposes component loggers plus a no-op logger for tests and wiring code
// that cannot fail. Diagnostics go to stderr so command output on stdout stays
// machine-friendly.
package logging
