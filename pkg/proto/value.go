package proto

import (
	"bytes"
	"strconv"

	"github.com/pkg/errors"
)

// ValueKind discriminates the six-arm decoded value sum type.
type ValueKind uint8

const (
	KindText ValueKind = iota
	KindInt
	KindBytes
	KindNull
	KindError
	KindList
)

// Value is the conventional in-memory representation of a decoded
// Reply: exactly one of its fields is meaningful, selected by Kind.
// Bulk strings decode to Text per §4.4; Bytes exists for API
// completeness with the source's six-arm variant but is never produced
// by DecodeReply itself; callers who need raw, non-UTF-8-assumed bytes
// read Reply.Raw() instead.
type Value struct {
	Kind ValueKind
	Text string
	Int  int64
	Bytes []byte
	Err  string
	List []Value
}

// DecodeReply turns a Reply's raw bytes into a Value following the
// reply decoder's rules: +S -> text, :N -> integer, $-1 -> null,
// $n\r\n<bytes>\r\n -> text, -MSG -> error, *m\r\n... -> ordered list.
func DecodeReply(reply Reply) (Value, error) {
	v, _, err := decodeOne(reply.raw, 0)
	return v, err
}

func decodeOne(data []byte, pos int) (Value, int, error) {
	if pos >= len(data) {
		return Value{}, pos, errors.Wrap(ErrProtocolViolation, "decode: truncated value")
	}
	sigil := data[pos]
	lineEnd := bytes.Index(data[pos:], crlf)
	if lineEnd < 0 {
		return Value{}, pos, errors.Wrap(ErrProtocolViolation, "decode: missing CRLF")
	}
	line := data[pos+1 : pos+lineEnd]
	next := pos + lineEnd + 2

	switch sigil {
	case '+':
		return Value{Kind: KindText, Text: string(line)}, next, nil
	case '-':
		return Value{Kind: KindError, Err: string(line)}, next, nil
	case ':':
		n, err := strconv.ParseInt(string(line), 10, 64)
		if err != nil {
			return Value{}, pos, errors.Wrapf(ErrProtocolViolation, "decode: bad integer %q", line)
		}
		return Value{Kind: KindInt, Int: n}, next, nil
	case '$':
		n, err := strconv.Atoi(string(line))
		if err != nil {
			return Value{}, pos, errors.Wrapf(ErrProtocolViolation, "decode: bad bulk length %q", line)
		}
		if n == -1 {
			return Value{Kind: KindNull}, next, nil
		}
		if next+n > len(data) {
			return Value{}, pos, errors.Wrap(ErrProtocolViolation, "decode: bulk body runs past reply bytes")
		}
		body := data[next : next+n]
		return Value{Kind: KindText, Text: string(body)}, next + n + 2, nil
	case '*':
		m, err := strconv.Atoi(string(line))
		if err != nil {
			return Value{}, pos, errors.Wrapf(ErrProtocolViolation, "decode: bad array length %q", line)
		}
		if m <= 0 {
			return Value{Kind: KindList, List: nil}, next, nil
		}
		list := make([]Value, 0, m)
		cur := next
		for i := 0; i < m; i++ {
			var v Value
			v, cur, err = decodeOne(data, cur)
			if err != nil {
				return Value{}, pos, err
			}
			list = append(list, v)
		}
		return Value{Kind: KindList, List: list}, cur, nil
	default:
		return Value{}, pos, errors.Wrapf(ErrProtocolViolation, "decode: unknown sigil %q", sigil)
	}
}

// ReplyBytes returns a bytes-oriented view of a reply: each scalar
// element's body bytes followed by "\n", for callers that want to write
// replies to a file-like sink without per-element allocation. A null
// value contributes nothing.
func ReplyBytes(reply Reply) ([]byte, error) {
	v, err := DecodeReply(reply)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	writeValueBytes(&buf, v)
	return buf.Bytes(), nil
}

func writeValueBytes(buf *bytes.Buffer, v Value) {
	switch v.Kind {
	case KindText:
		buf.WriteString(v.Text)
		buf.WriteByte('\n')
	case KindInt:
		buf.WriteString(strconv.FormatInt(v.Int, 10))
		buf.WriteByte('\n')
	case KindError:
		buf.WriteString(v.Err)
		buf.WriteByte('\n')
	case KindBytes:
		buf.Write(v.Bytes)
		buf.WriteByte('\n')
	case KindNull:
		// contributes nothing
	case KindList:
		for _, child := range v.List {
			writeValueBytes(buf, child)
		}
	}
}
