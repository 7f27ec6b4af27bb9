package session

import (
	"bytes"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/haldane-io/resp2/pkg/conn"
	"github.com/haldane-io/resp2/pkg/proto"
)

type state uint8

const (
	stateIdle state = iota
	stateWriting
	stateAwaiting
	stateClosed
)

// Conn wraps a borrowed conn.Handle with the orchestrator's
// write/await-reply state machine. A Conn is not safe for concurrent
// use by two callers at once: per the spec's shared resource policy, a
// handle is exclusively owned by whichever operation is currently
// using it; the mutex here only protects the state fields against
// concurrent misuse, it does not serialize operations into a queue.
type Conn struct {
	handle conn.Handle
	logger *zap.Logger

	mu      sync.Mutex
	st      state
	pending int
}

// New wraps handle with orchestrator state tracking. A nil logger
// defaults to a no-op logger.
func New(handle conn.Handle, logger *zap.Logger) *Conn {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Conn{handle: handle, logger: logger}
}

// Execute writes one request and reads its single reply.
func (c *Conn) Execute(req proto.Request) (proto.Reply, error) {
	replies, err := c.ExecutePipeline([]proto.Request{req})
	if err != nil {
		return proto.Reply{}, err
	}
	return replies[0], nil
}

// ExecutePipeline writes all requests back-to-back, then reads exactly
// len(reqs) replies in order. The reply count is authoritative; it is
// never inferred from the stream going idle.
func (c *Conn) ExecutePipeline(reqs []proto.Request) ([]proto.Reply, error) {
	if len(reqs) == 0 {
		return nil, nil
	}

	if err := c.beginWrite(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	for _, req := range reqs {
		encoded, err := proto.Encode(req)
		if err != nil {
			c.resetToIdle()
			return nil, err
		}
		buf.Write(encoded)
	}

	if err := c.handle.WriteAll(buf.Bytes()); err != nil {
		c.markClosed("write failed")
		return nil, errors.Wrap(proto.ErrIO, err.Error())
	}
	c.afterWrite(len(reqs))

	replies, err := proto.ReadReplies(c.handle, len(reqs))
	if err != nil {
		c.markClosed("read failed mid-pipeline")
		return nil, err
	}
	c.afterReplies(len(reqs))
	return replies, nil
}

func (c *Conn) beginWrite() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.st {
	case stateClosed:
		return errors.Wrap(ErrInvalidState, "connection is closed")
	case stateAwaiting:
		return errors.Wrap(ErrInvalidState, "write attempted while replies pending")
	}
	c.st = stateWriting
	return nil
}

// resetToIdle reverts a beginWrite() that never reached the wire (an
// encode-time MalformedRequest is a programmer bug, not stream
// poisoning, so the connection stays usable).
func (c *Conn) resetToIdle() {
	c.mu.Lock()
	c.st = stateIdle
	c.mu.Unlock()
}

func (c *Conn) afterWrite(n int) {
	c.mu.Lock()
	c.st = stateAwaiting
	c.pending = n
	c.mu.Unlock()
}

func (c *Conn) afterReplies(n int) {
	c.mu.Lock()
	c.pending -= n
	if c.pending <= 0 {
		c.st = stateIdle
	}
	c.mu.Unlock()
}

func (c *Conn) markClosed(reason string) {
	c.mu.Lock()
	c.st = stateClosed
	c.mu.Unlock()
	c.logger.Debug("connection state closed", zap.String("reason", reason))
}
