// Package config loads, normalizes, and validates tuned-adm configuration.
//
// It supplies the well-known defaults (profile layers, marker file, active
// profile record, daemon pid-file), reads an optional TOML override file, and
// resolves every path to an absolute, cleaned form. The Config type is passed
// explicitly into each component so tests can point the whole tool at a
// temporary directory tree.
package config
