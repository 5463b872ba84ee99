// Package command defines the command namespace tree and the contract that
// executable commands implement.
//
// A Node is either a composite (a namespace grouping subcommands, never
// directly invocable) or a leaf (an invocable command with no children).
// The tree is built once at startup by the registry and is read-only for
// the rest of the run.
package command
