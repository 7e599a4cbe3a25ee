// Package embedgen implements the build-time half of anydir: a
// deterministic directory traversal that snapshots a source tree into
// memory, and a code generator that renders the snapshot as a Go source
// file declaring a static anydir.EmbeddedDir.
//
// Traversal failures are build failures. The generator process exits
// non-zero, go generate aborts, and the condition is never observable by
// the generated program at run time.
package embedgen
