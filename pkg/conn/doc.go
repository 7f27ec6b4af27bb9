// Package conn supplies the connection handle the protocol engine
// borrows for the duration of each operation: read_exact,
// read_line_until_crlf, write_all, and close, per spec. This package
// owns the only net.Conn in the module; pkg/proto and pkg/session never
// import net directly.
package conn
