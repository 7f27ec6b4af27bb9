package proto

import (
	"bytes"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// ReadReply consumes exactly one full reply from r, per the dispatch
// table in the RESP sigil spec: `+`/`-`/`:` read one line, `$` reads a
// line plus n+2 bytes (or is a standalone null bulk when n == -1), and
// `*` reads a count line followed by that many child replies.
//
// Array nesting is walked iteratively with an explicit stack of
// remaining-child counts, not recursion, so a pathologically deep
// nested array cannot exhaust the goroutine stack.
func ReadReply(r ByteReader) (Reply, error) {
	var buf bytes.Buffer

	header, failure, isArray, count, err := readOne(r)
	if err != nil {
		return Reply{}, err
	}
	buf.Write(header)
	if !isArray {
		return newReply(buf.Bytes(), failure), nil
	}

	// remaining holds, for each array currently open, how many of its
	// children are still unread. Arrays are never classified Failure.
	var remaining []int
	if count > 0 {
		remaining = append(remaining, count)
	}
	for len(remaining) > 0 {
		top := len(remaining) - 1
		remaining[top]--

		childHeader, _, childIsArray, childCount, err := readOne(r)
		if err != nil {
			return Reply{}, err
		}
		buf.Write(childHeader)
		if childIsArray && childCount > 0 {
			remaining = append(remaining, childCount)
		}

		for len(remaining) > 0 && remaining[len(remaining)-1] == 0 {
			remaining = remaining[:len(remaining)-1]
		}
	}
	return newReply(buf.Bytes(), failure), nil
}

// ReadReplies reads exactly n replies in order; the count is
// authoritative and is never inferred from stream idleness.
func ReadReplies(r ByteReader, n int) ([]Reply, error) {
	if n <= 0 {
		return nil, nil
	}
	replies := make([]Reply, 0, n)
	for i := 0; i < n; i++ {
		reply, err := ReadReply(r)
		if err != nil {
			return nil, errors.Wrapf(err, "reading reply %d of %d", i+1, n)
		}
		replies = append(replies, reply)
	}
	return replies, nil
}

// readOne reads exactly one RESP value's header (and, for leaf kinds,
// its body) and reports whether it was an array header, in which case
// count is the number of children still to be read by the caller, or
// a complete leaf value, in which case failure classifies it.
func readOne(r ByteReader) (raw []byte, failure bool, isArray bool, count int, err error) {
	line, err := r.ReadLine()
	if err != nil {
		return nil, false, false, 0, wrapReadErr(err)
	}
	if len(line) == 0 {
		return nil, false, false, 0, errors.Wrap(ErrProtocolViolation, "empty reply line")
	}

	full := make([]byte, 0, len(line)+2)
	full = append(full, line...)
	full = append(full, crlf...)

	switch line[0] {
	case '+', ':':
		return full, false, false, 0, nil
	case '-':
		return full, true, false, 0, nil
	case '$':
		n, perr := strconv.Atoi(string(line[1:]))
		if perr != nil {
			return nil, false, false, 0, errors.Wrapf(ErrProtocolViolation, "bad bulk length %q", line[1:])
		}
		if n == -1 {
			return full, true, false, 0, nil // null bulk: classified Failure
		}
		body, rerr := r.ReadExact(n + 2)
		if rerr != nil {
			return nil, false, false, 0, wrapReadErr(rerr)
		}
		full = append(full, body...)
		bodyFailure := n > 0 && body[0] == '-'
		return full, bodyFailure, false, 0, nil
	case '*':
		m, perr := strconv.Atoi(string(line[1:]))
		if perr != nil {
			return nil, false, false, 0, errors.Wrapf(ErrProtocolViolation, "bad array length %q", line[1:])
		}
		return full, false, true, m, nil
	default:
		return nil, false, false, 0, errors.Wrapf(ErrProtocolViolation, "unknown reply sigil %q", line[0])
	}
}

func wrapReadErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errors.Wrap(ErrTruncated, err.Error())
	}
	return errors.Wrap(ErrIO, err.Error())
}
