// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run loop that resolves a user's command
// tokens against the registry and invokes the chosen command, decoupled from
// any specific entrypoint.
package app
