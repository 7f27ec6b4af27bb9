package conn

import (
	"bufio"
	"context"
	"io"
	"net"
	"time"

	"github.com/haldane-io/resp2/pkg/dialconfig"
	"github.com/haldane-io/resp2/pkg/proto"
)

// Handle is an open byte-stream to a server: read_exact,
// read_line_until_crlf, write_all, and close. The protocol engine owns
// no sockets of its own; it borrows a Handle for the duration of each
// operation.
type Handle interface {
	proto.ByteReader
	WriteAll(p []byte) error
	Close() error
}

type netHandle struct {
	conn         net.Conn
	r            *bufio.Reader
	readTimeout  time.Duration
	writeTimeout time.Duration
}

// Dial opens a TCP connection per opts and wraps it as a Handle. It is
// the default implementation of the "connect(options) -> handle"
// primitive external to the protocol engine; pkg/session accepts any
// session.Connector (callers bind opts in a closure around Dial), so
// tests can substitute one dialing a miniredis.Server instead.
func Dial(ctx context.Context, opts dialconfig.Options) (Handle, error) {
	dialer := net.Dialer{Timeout: opts.ConnectTimeout}
	c, err := dialer.DialContext(ctx, "tcp", opts.Address())
	if err != nil {
		return nil, err
	}
	h := Wrap(c).(*netHandle)
	h.readTimeout = opts.ReadTimeout
	h.writeTimeout = opts.WriteTimeout
	return h, nil
}

// Wrap adapts an already-open net.Conn (e.g. one returned by a
// miniredis test server, or a TLS-wrapped dial performed by the
// caller) into a Handle. Wrapped connections carry no read/write
// deadlines; use Dial to get dialconfig.Options' timeouts applied.
func Wrap(c net.Conn) Handle {
	return &netHandle{conn: c, r: bufio.NewReader(c)}
}

func (h *netHandle) ReadLine() ([]byte, error) {
	if h.readTimeout > 0 {
		h.conn.SetReadDeadline(time.Now().Add(h.readTimeout))
	}
	line, err := h.r.ReadString('\n')
	if err != nil {
		return nil, err
	}
	if len(line) >= 2 && line[len(line)-2] == '\r' {
		return []byte(line[:len(line)-2]), nil
	}
	return []byte(line[:len(line)-1]), nil
}

func (h *netHandle) ReadExact(n int) ([]byte, error) {
	if h.readTimeout > 0 {
		h.conn.SetReadDeadline(time.Now().Add(h.readTimeout))
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(h.r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (h *netHandle) WriteAll(p []byte) error {
	if h.writeTimeout > 0 {
		h.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
	}
	_, err := h.conn.Write(p)
	return err
}

func (h *netHandle) Close() error {
	return h.conn.Close()
}
