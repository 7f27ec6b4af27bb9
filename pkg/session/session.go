package session

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/haldane-io/resp2/pkg/conn"
	"github.com/haldane-io/resp2/pkg/proto"
)

// Connector opens a connection handle, the externally supplied
// "connect" primitive spec.md requires. conn.Dial is the production
// implementation; tests substitute one dialing a miniredis.Server.
type Connector func(ctx context.Context) (conn.Handle, error)

// Options configures a WithSession call. A nil Logger defaults to a
// no-op logger, matching the teacher's pattern of logging failures at
// call sites without forcing a logger on every caller.
type Options struct {
	Logger *zap.Logger
}

// WithSession opens a connection via connect, runs body with it, and
// closes the connection on every exit path: success, body error, or
// panic propagating through body is not recovered here, but the
// deferred close still runs. Each session is tagged with a
// correlation ID logged on open and close so that concurrent sessions
// are distinguishable in logs.
func WithSession[T any](ctx context.Context, connect Connector, opts Options, body func(*Conn) (T, error)) (T, error) {
	var zero T

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	handle, err := connect(ctx)
	if err != nil {
		return zero, errors.Wrap(proto.ErrIO, err.Error())
	}

	id := uuid.NewString()
	logger = logger.With(zap.String("session", id))
	logger.Debug("session opened")

	c := New(handle, logger)
	defer func() {
		c.markClosed("session exit")
		if cerr := handle.Close(); cerr != nil {
			logger.Warn("error closing connection", zap.Error(cerr))
		} else {
			logger.Debug("session closed")
		}
	}()

	return body(c)
}
