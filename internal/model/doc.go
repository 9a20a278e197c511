// Package model defines the domain types for the item-sample CLI.
//
// The central type is Container, a named, append-only sequence of text
// items whose count is always derived from the sequence itself. The package
// also defines exit codes (ExitCode) and a custom error type (CLIError)
// that carries exit codes for proper OS process exit handling.
//
// Containers are transient: they live for the duration of one command and
// are never persisted.
package model
