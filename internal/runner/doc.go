// Package runner drives a whole comparison run. It owns the loaded
// pipelines, the function registry, the shared object store and the result
// streams, and runs every file in load order.
//
// Failures never cross file boundaries: a file whose default section is
// invalid, whose stream cannot be opened, or that panics is recorded in the
// Report and the next file still runs.
package runner
