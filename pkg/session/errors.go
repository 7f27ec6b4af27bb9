package session

import "github.com/pkg/errors"

// ErrInvalidState is returned when a write is attempted while replies
// are still pending on a connection, or after the connection has been
// closed. This is a programmer bug, not a transient condition.
var ErrInvalidState = errors.New("session: invalid state")
