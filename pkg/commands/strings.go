package commands

import (
	"github.com/haldane-io/resp2/pkg/proto"
)

// GET returns the string value at key.
func GET(key string) proto.Request {
	return proto.NewRequest("GET", nil, textArgs(key))
}

// SetOptions carries SET's optional modifiers. EX and PX are mutually
// exclusive, as are NX and XX; the server rejects invalid combinations,
// this builder does not.
type SetOptions struct {
	EX      *int64 // seconds until expiry
	PX      *int64 // milliseconds until expiry
	NX      bool   // only set if key does not already exist
	XX      bool   // only set if key already exists
	KeepTTL bool   // retain the key's existing TTL
	Get     bool   // return the old value instead of OK
}

// SET stores value at key, with the modifiers in opts flattened to
// KEY VALUE argument pairs in the order EX, PX, NX, XX, KEEPTTL, GET.
func SET(key string, value []byte, opts SetOptions) proto.Request {
	args := append(textArgs(key), proto.Placeholder)

	var options []Option
	if opts.EX != nil {
		options = append(options, Option{"EX", *opts.EX})
	}
	if opts.PX != nil {
		options = append(options, Option{"PX", *opts.PX})
	}
	if opts.NX {
		options = append(options, Option{"NX", true})
	}
	if opts.XX {
		options = append(options, Option{"XX", true})
	}
	if opts.KeepTTL {
		options = append(options, Option{"KEEPTTL", true})
	}
	if opts.Get {
		options = append(options, Option{"GET", true})
	}
	args = append(args, flattenOptions(options)...)

	return proto.NewRequest("SET", value, args)
}

// GETSET atomically sets key to value and returns its previous value.
func GETSET(key string, value []byte) proto.Request {
	return proto.NewRequest("GETSET", value, append(textArgs(key), proto.Placeholder))
}

// SETNX sets key to value only if key does not already exist.
func SETNX(key string, value []byte) proto.Request {
	return proto.NewRequest("SETNX", value, append(textArgs(key), proto.Placeholder))
}

// SETEX sets key to value with an expiry of seconds.
func SETEX(key string, seconds int64, value []byte) proto.Request {
	args := []proto.Argument{proto.TextArg(key), proto.TextArg(proto.FormatInt(seconds)), proto.Placeholder}
	return proto.NewRequest("SETEX", value, args)
}

// PSETEX sets key to value with an expiry of milliseconds.
func PSETEX(key string, milliseconds int64, value []byte) proto.Request {
	args := []proto.Argument{proto.TextArg(key), proto.TextArg(proto.FormatInt(milliseconds)), proto.Placeholder}
	return proto.NewRequest("PSETEX", value, args)
}

// APPEND appends value to the string stored at key (creating it if
// absent) and returns the resulting length.
func APPEND(key string, value []byte) proto.Request {
	return proto.NewRequest("APPEND", value, append(textArgs(key), proto.Placeholder))
}

// STRLEN returns the length of the string stored at key.
func STRLEN(key string) proto.Request {
	return proto.NewRequest("STRLEN", nil, textArgs(key))
}

// MGET returns the values of all given keys.
func MGET(keys ...string) proto.Request {
	return proto.NewRequest("MGET", nil, textArgs(keys...))
}

// KV is one key/value pair for the multi-key setters (MSET, MSETNX,
// HMSET).
type KV struct {
	Key   string
	Value []byte
}

// MSET sets multiple keys to multiple values in one atomic operation.
func MSET(pairs ...KV) proto.Request {
	values := make([][]byte, len(pairs))
	for i, p := range pairs {
		values[i] = p.Value
	}
	payload, placeholders := payloadAndPlaceholders(values)

	args := make([]proto.Argument, 0, len(pairs)*2)
	for i, p := range pairs {
		args = append(args, proto.TextArg(p.Key), placeholders[i])
	}
	return proto.NewRequest("MSET", payload, args)
}

// MSETNX sets multiple keys to multiple values, only if none of the
// keys already exist.
func MSETNX(pairs ...KV) proto.Request {
	req := MSET(pairs...)
	return proto.NewRequest("MSETNX", req.Payload, req.Arguments)
}

// INCR increments the integer value stored at key by one.
func INCR(key string) proto.Request {
	return proto.NewRequest("INCR", nil, textArgs(key))
}

// DECR decrements the integer value stored at key by one.
func DECR(key string) proto.Request {
	return proto.NewRequest("DECR", nil, textArgs(key))
}

// INCRBY increments the integer value stored at key by delta.
func INCRBY(key string, delta int64) proto.Request {
	return proto.NewRequest("INCRBY", nil, textArgs(key, proto.FormatInt(delta)))
}

// DECRBY decrements the integer value stored at key by delta.
func DECRBY(key string, delta int64) proto.Request {
	return proto.NewRequest("DECRBY", nil, textArgs(key, proto.FormatInt(delta)))
}

// INCRBYFLOAT increments the float value stored at key by delta,
// stringified to its shortest decimal form.
func INCRBYFLOAT(key string, delta float64) proto.Request {
	return proto.NewRequest("INCRBYFLOAT", nil, textArgs(key, proto.FormatFloat(delta)))
}

// GETRANGE returns the substring of the string stored at key between
// start and end (inclusive, server-side negative-index semantics).
func GETRANGE(key string, start, end int64) proto.Request {
	return proto.NewRequest("GETRANGE", nil, textArgs(key, proto.FormatInt(start), proto.FormatInt(end)))
}

// SETRANGE overwrites value at offset bytes into the string stored at
// key, padding with zero bytes if key is shorter than offset.
func SETRANGE(key string, offset int64, value []byte) proto.Request {
	args := []proto.Argument{proto.TextArg(key), proto.TextArg(proto.FormatInt(offset)), proto.Placeholder}
	return proto.NewRequest("SETRANGE", value, args)
}

// BITCOUNT counts set bits in the string stored at key, optionally
// restricted to the byte range [start, end] when both are non-nil.
func BITCOUNT(key string, start, end *int64) proto.Request {
	args := textArgs(key)
	if start != nil && end != nil {
		args = append(args, proto.TextArg(proto.FormatInt(*start)), proto.TextArg(proto.FormatInt(*end)))
	}
	return proto.NewRequest("BITCOUNT", nil, args)
}

// GETBIT returns the bit value at offset in the string stored at key.
func GETBIT(key string, offset int64) proto.Request {
	return proto.NewRequest("GETBIT", nil, textArgs(key, proto.FormatInt(offset)))
}

// SETBIT sets the bit at offset in the string stored at key and
// returns its previous value.
func SETBIT(key string, offset int64, value int) proto.Request {
	return proto.NewRequest("SETBIT", nil, textArgs(key, proto.FormatInt(offset), proto.FormatInt(int64(value))))
}

// BITOP applies a bitwise operator (AND, OR, XOR, NOT) across keys,
// storing the result in destination.
func BITOP(op, destination string, keys ...string) proto.Request {
	args := append(textArgs(op, destination), textArgs(keys...)...)
	return proto.NewRequest("BITOP", nil, args)
}

// BitfieldOp is one GET/SET/INCRBY sub-operation of a BITFIELD call.
type BitfieldOp struct {
	Op     string // "GET", "SET", or "INCRBY"
	Type   string // e.g. "u8", "i16"
	Offset string // e.g. "0" or "#1"
	Value  *int64 // required for SET and INCRBY, unused for GET
}

// BITFIELD runs a sequence of bit-addressable operations against key
// atomically.
func BITFIELD(key string, ops ...BitfieldOp) proto.Request {
	args := textArgs(key)
	for _, op := range ops {
		args = append(args, proto.TextArg(op.Op), proto.TextArg(op.Type), proto.TextArg(op.Offset))
		if op.Value != nil {
			args = append(args, proto.TextArg(proto.FormatInt(*op.Value)))
		}
	}
	return proto.NewRequest("BITFIELD", nil, args)
}
