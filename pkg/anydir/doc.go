// Package anydir provides a single abstraction, Dir, for enumerating and
// reading a directory's contents without knowing whether those contents
// were captured at build time and baked into the binary, or are read live
// from the host filesystem on each call.
//
// Two concrete providers satisfy the contract:
//   - EmbeddedDir: an immutable, in-memory snapshot constructed at build
//     time, either by the anydir gen code generator or from a go:embed
//     filesystem via FromFS.
//   - LiveDir: a thin wrapper over a base path that issues live OS calls
//     on every operation.
//
// Mode selection happens before the program runs. For the embedded mode,
// put a go:generate directive next to the code that needs the snapshot:
//
//	//go:generate anydir gen --src fixtures --out fixtures_gen.go --package main --var fixturesDir
//
// and use the generated fixturesDir variable. For the live mode, call
// NewLive with the base path. Both values are used polymorphically
// through the Dir interface; neither constructor adds indirection over
// hand-written construction.
package anydir
