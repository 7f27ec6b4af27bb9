// Package pkg has no importable content of its own; it exists only to
// group resp2's subpackages (proto, commands, conn, session,
// dialconfig) the way the teacher's pkg/ directory grouped client,
// cache, protocol, hash, and config. See the module root's doc.go for
// the library overview, and each subpackage's own doc.go for its
// contract.
package pkg
