// Package checksum provides SHA-256 digests for snapshot content and
// order-independent manifest digests used to verify that embedding the
// same directory tree twice produces byte-identical output.
package checksum
