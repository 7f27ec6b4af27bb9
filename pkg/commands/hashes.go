package commands

import "github.com/haldane-io/resp2/pkg/proto"

// HGET returns the value of field in the hash stored at key.
func HGET(key, field string) proto.Request {
	return proto.NewRequest("HGET", nil, textArgs(key, field))
}

// HSET sets field in the hash stored at key to value.
func HSET(key, field string, value []byte) proto.Request {
	args := []proto.Argument{proto.TextArg(key), proto.TextArg(field), proto.Placeholder}
	return proto.NewRequest("HSET", value, args)
}

// HMSET sets multiple field/value pairs in the hash stored at key in
// one call.
func HMSET(key string, fields ...KV) proto.Request {
	values := make([][]byte, len(fields))
	for i, f := range fields {
		values[i] = f.Value
	}
	payload, placeholders := payloadAndPlaceholders(values)

	args := make([]proto.Argument, 0, 1+len(fields)*2)
	args = append(args, proto.TextArg(key))
	for i, f := range fields {
		args = append(args, proto.TextArg(f.Key), placeholders[i])
	}
	return proto.NewRequest("HMSET", payload, args)
}

// HMGET returns the values of the given fields in the hash at key.
func HMGET(key string, fields ...string) proto.Request {
	return proto.NewRequest("HMGET", nil, append(textArgs(key), textArgs(fields...)...))
}

// HDEL deletes the given fields from the hash at key.
func HDEL(key string, fields ...string) proto.Request {
	return proto.NewRequest("HDEL", nil, append(textArgs(key), textArgs(fields...)...))
}

// HEXISTS reports whether field exists in the hash at key.
func HEXISTS(key, field string) proto.Request {
	return proto.NewRequest("HEXISTS", nil, textArgs(key, field))
}

// HGETALL returns all fields and values of the hash at key.
func HGETALL(key string) proto.Request {
	return proto.NewRequest("HGETALL", nil, textArgs(key))
}

// HKEYS returns all field names of the hash at key.
func HKEYS(key string) proto.Request {
	return proto.NewRequest("HKEYS", nil, textArgs(key))
}

// HVALS returns all values of the hash at key.
func HVALS(key string) proto.Request {
	return proto.NewRequest("HVALS", nil, textArgs(key))
}

// HLEN returns the number of fields in the hash at key.
func HLEN(key string) proto.Request {
	return proto.NewRequest("HLEN", nil, textArgs(key))
}

// HINCRBY increments field in the hash at key by delta.
func HINCRBY(key, field string, delta int64) proto.Request {
	return proto.NewRequest("HINCRBY", nil, textArgs(key, field, proto.FormatInt(delta)))
}
