// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// separates tool flags from the command tokens and named options that the
// run loop consumes.
package cli
