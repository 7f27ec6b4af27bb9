package proto

import "github.com/pkg/errors"

// Sentinel error kinds from the protocol engine's error taxonomy. Call
// sites wrap one of these with github.com/pkg/errors to attach context
// and a stack trace while keeping errors.Is/errors.As working against
// the sentinel.
var (
	// ErrMalformedRequest is a programmer bug: a placeholder/segment
	// count mismatch, or an attempt to encode a Request with an empty
	// command.
	ErrMalformedRequest = errors.New("proto: malformed request")

	// ErrTruncated is returned when the stream ends before a reply is
	// fully read. Fatal for the connection.
	ErrTruncated = errors.New("proto: truncated reply")

	// ErrProtocolViolation covers an unknown leading sigil or a
	// non-numeric length prefix. Fatal for the connection.
	ErrProtocolViolation = errors.New("proto: protocol violation")

	// ErrIO wraps an underlying stream read/write failure that is not
	// itself an EOF-shaped truncation.
	ErrIO = errors.New("proto: io error")
)
