// Package app contains the core application logic. It wires the logger,
// the built-in function modules, the optional database connection and the
// runner together, and owns the run lifecycle independently of the CLI.
package app
