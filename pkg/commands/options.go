package commands

import (
	"bytes"
	"fmt"

	"github.com/haldane-io/resp2/pkg/proto"
)

// Option is one entry of an options object, in the sense spec.md's
// normalization rules use the term: flattened to a KEY[, VALUE] pair in
// iteration order. A nil Value contributes only the key (an
// unconditional flag); a bool false omits the entry entirely; a bool
// true behaves like nil; any other value is stringified.
type Option struct {
	Key   string
	Value interface{}
}

// flattenOptions turns an ordered option list into argument pairs,
// implementing the options-object normalization rule shared by SET,
// SCAN/HSCAN/SSCAN, and COPY.
func flattenOptions(opts []Option) []proto.Argument {
	var args []proto.Argument
	for _, o := range opts {
		switch v := o.Value.(type) {
		case nil:
			args = append(args, proto.TextArg(o.Key))
		case bool:
			if v {
				args = append(args, proto.TextArg(o.Key))
			}
		case string:
			args = append(args, proto.TextArg(o.Key), proto.TextArg(v))
		case int:
			args = append(args, proto.TextArg(o.Key), proto.TextArg(proto.FormatInt(int64(v))))
		case int64:
			args = append(args, proto.TextArg(o.Key), proto.TextArg(proto.FormatInt(v)))
		case float64:
			args = append(args, proto.TextArg(o.Key), proto.TextArg(proto.FormatFloat(v)))
		default:
			args = append(args, proto.TextArg(o.Key), proto.TextArg(fmt.Sprint(v)))
		}
	}
	return args
}

func textArgs(values ...string) []proto.Argument {
	args := make([]proto.Argument, len(values))
	for i, v := range values {
		args[i] = proto.TextArg(v)
	}
	return args
}

// payloadAndPlaceholders joins values with CRLF into a single payload
// and returns one Placeholder argument per value, for commands (LPUSH,
// SADD, MSET, ...) that accept several binary values in one call.
func payloadAndPlaceholders(values [][]byte) ([]byte, []proto.Argument) {
	var buf bytes.Buffer
	args := make([]proto.Argument, len(values))
	for i, v := range values {
		if i > 0 {
			buf.WriteString("\r\n")
		}
		buf.Write(v)
		args[i] = proto.Placeholder
	}
	return buf.Bytes(), args
}
