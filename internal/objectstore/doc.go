// Package objectstore holds the shared objects that are passed to every
// registered function alongside the step's own arguments.
//
// # Purpose
//
// Checks often need the same expensive collaborators: a database handle, a
// dataset loaded once, an HTTP client. Instead of reopening them per step,
// the host registers them once under a name and the executor merges the
// whole store into each call.
//
// # Collision Policy
//
//   - **Overwrite:** putting an existing name replaces the old object and
//     logs a warning.
//   - **Reserved names:** an optional predicate (the runner wires the
//     function registry) flags names that shadow a registered function; the
//     put still succeeds but a warning is logged.
//   - **Arguments:** a step argument with the same name as a stored object
//     is rejected at call time by registry.Merge, never silently shadowed.
//
// # Concurrency
//
// The store is not safe for concurrent mutation. A runner owns exactly one
// store and uses it from a single goroutine.
package objectstore
