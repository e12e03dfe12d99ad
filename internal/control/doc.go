// Package control implements the tuned-adm operations: list the available
// profiles, show the active selection, activate profiles, and switch tuning
// off.
//
// Each operation is a one-shot transaction over two durable artifacts shared
// with the daemon, the pid-file and the active-profile record. Activation is
// all-or-nothing: every requested name is validated and a daemon must be
// present before the record is touched, and the record is put back if the
// daemon cannot be told to reload it.
package control
