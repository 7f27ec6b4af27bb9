// Package proto implements the RESP2 wire protocol: the Request and Reply
// value types, the encoder that turns a Request into request bytes, the
// streaming decoder that reads one complete Reply off a byte stream, and
// the reply decoder that turns a Reply into a conventional in-memory Value.
//
// Nothing in this package performs I/O beyond the minimal ByteReader
// surface it requires from its caller (see reader.go); dialing and
// command dispatch live in sibling packages.
package proto
