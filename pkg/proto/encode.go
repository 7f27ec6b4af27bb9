package proto

import (
	"bytes"

	"github.com/pkg/errors"
)

var crlf = []byte("\r\n")

// Encode serializes a Request into the exact bytes to transmit: a RESP
// array of len(arguments)+1 bulk strings, the command name first. A
// placeholder argument consumes the next CRLF-separated segment of the
// payload, in order; the segment count must equal the placeholder
// count or encoding fails with ErrMalformedRequest.
func Encode(r Request) ([]byte, error) {
	if r.Command == "" {
		return nil, errors.Wrap(ErrMalformedRequest, "empty command")
	}

	segments := splitSegments(r.Payload)
	placeholders := countPlaceholders(r.Arguments)
	if len(segments) != placeholders {
		return nil, errors.Wrapf(ErrMalformedRequest,
			"placeholder count %d does not match payload segment count %d", placeholders, len(segments))
	}

	parts := make([][]byte, 0, len(r.Arguments)+1)
	parts = append(parts, []byte(r.Command))
	seg := 0
	for _, arg := range r.Arguments {
		if IsPlaceholder(arg) {
			parts = append(parts, segments[seg])
			seg++
			continue
		}
		text, ok := arg.(TextArg)
		if !ok {
			return nil, errors.Wrapf(ErrMalformedRequest, "unsupported argument type %T", arg)
		}
		parts = append(parts, []byte(text))
	}

	size := 0
	for _, p := range parts {
		size += len(p) + len("$\r\n\r\n") + len(formatLen(len(p)))
	}
	size += len("*\r\n") + len(formatLen(len(parts)))

	buf := bytes.NewBuffer(make([]byte, 0, size))
	buf.WriteByte('*')
	buf.WriteString(formatLen(len(parts)))
	buf.Write(crlf)
	for _, p := range parts {
		buf.WriteByte('$')
		buf.WriteString(formatLen(len(p)))
		buf.Write(crlf)
		buf.Write(p)
		buf.Write(crlf)
	}
	return buf.Bytes(), nil
}

func formatLen(n int) string {
	return FormatInt(int64(n))
}

func countPlaceholders(args []Argument) int {
	n := 0
	for _, a := range args {
		if IsPlaceholder(a) {
			n++
		}
	}
	return n
}

// splitSegments splits payload on CRLF, discarding the delimiters, and
// drops exactly one trailing empty segment produced by a trailing CRLF,
// matching the source's "right-trimmed" default. A caller that wants
// an explicit trailing empty segment gets one back by ending payload
// with two CRLFs instead of one.
func splitSegments(payload []byte) [][]byte {
	if len(payload) == 0 {
		return nil
	}
	parts := bytes.Split(payload, crlf)
	if len(parts) > 0 && len(parts[len(parts)-1]) == 0 {
		parts = parts[:len(parts)-1]
	}
	return parts
}
