// Package registry provides the central "glue" for the command system.
//
// The Registry owns the root of the command tree and exposes the insertion
// logic used to build the namespace. Command packages implement the Module
// interface and are handed the registry once at startup; each registers its
// leaves (and describes its namespaces) explicitly, so no runtime type
// discovery is needed.
//
// After all modules are registered the tree is validated and then treated as
// read-only for the rest of the run.
package registry
