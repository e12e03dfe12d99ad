// Package main hosts the tuned-adm CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration and logging once per
// invocation, then hands each subcommand a control.Controller. Profile
// discovery, record persistence, and daemon signalling live in the internal
// packages; this package only renders results and maps errors to exit codes.
package main
