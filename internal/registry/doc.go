// Package registry holds the named functions that step configurations refer
// to.
//
// A step names its two functions ("func_left", "func_right") as plain strings.
// The Registry maps those strings onto compiled Go functions. Functions are
// contributed by Modules; the first module to claim a name keeps it, and
// later claims are rejected with a warning so a misconfigured module can
// never silently replace a function that earlier steps were written against.
//
// The package also defines the calling convention shared by every function:
// an Args mapping in, a value and a log fragment out. Argument lookups that
// fail report ErrPrecondition, which the executor treats as a configuration
// problem rather than a crash.
package registry
