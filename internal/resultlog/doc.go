// Package resultlog owns the named result streams that step outcomes are
// written to.
//
// Every pipeline file names a stream through its `logger` setting. The
// first file to ask for a name opens `<results-dir>/<name>.log` in append
// mode; later files asking for the same name share that stream. Streams
// are ordinary *slog.Logger values backed by Handler, which renders the
// fixed line format
//
//	2006-01-02 15:04:05 - INFO - <message>
//
// Streams.Close flushes and closes every stream and forgets all names, so a
// second run in the same process starts from a clean slate and appends to
// the same files instead of colliding with stale handles.
package resultlog
