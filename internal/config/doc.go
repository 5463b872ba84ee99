// Package config defines the configuration model for gridctl and the Loader
// interface for reading it, along with the HCL implementation.
//
// The model is built once at startup, before the command tree is populated,
// and is handed read-only to the command modules that need it. Configuration
// may be a single .hcl file or a directory of fragments; fragments are
// merged in lexical path order, with later files overriding the event-stream
// endpoint and individual variables.
package config
