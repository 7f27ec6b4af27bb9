package commands

import "github.com/haldane-io/resp2/pkg/proto"

// LPUSH prepends one or more values to the list at key.
func LPUSH(key string, values ...[]byte) proto.Request {
	payload, placeholders := payloadAndPlaceholders(values)
	args := append(textArgs(key), placeholders...)
	return proto.NewRequest("LPUSH", payload, args)
}

// RPUSH appends one or more values to the list at key.
func RPUSH(key string, values ...[]byte) proto.Request {
	payload, placeholders := payloadAndPlaceholders(values)
	args := append(textArgs(key), placeholders...)
	return proto.NewRequest("RPUSH", payload, args)
}

// LPOP removes and returns the first element of the list at key. When
// count is non-nil, it removes and returns up to *count elements.
func LPOP(key string, count *int64) proto.Request {
	args := textArgs(key)
	if count != nil {
		args = append(args, proto.TextArg(proto.FormatInt(*count)))
	}
	return proto.NewRequest("LPOP", nil, args)
}

// RPOP removes and returns the last element of the list at key. When
// count is non-nil, it removes and returns up to *count elements.
func RPOP(key string, count *int64) proto.Request {
	args := textArgs(key)
	if count != nil {
		args = append(args, proto.TextArg(proto.FormatInt(*count)))
	}
	return proto.NewRequest("RPOP", nil, args)
}

// LLEN returns the length of the list at key.
func LLEN(key string) proto.Request {
	return proto.NewRequest("LLEN", nil, textArgs(key))
}

// LRANGE returns the elements of the list at key between start and
// stop (inclusive, server-side negative-index semantics).
func LRANGE(key string, start, stop int64) proto.Request {
	return proto.NewRequest("LRANGE", nil, textArgs(key, proto.FormatInt(start), proto.FormatInt(stop)))
}

// LINDEX returns the element at index in the list at key.
func LINDEX(key string, index int64) proto.Request {
	return proto.NewRequest("LINDEX", nil, textArgs(key, proto.FormatInt(index)))
}

// LSET sets the element at index in the list at key to value.
func LSET(key string, index int64, value []byte) proto.Request {
	args := []proto.Argument{proto.TextArg(key), proto.TextArg(proto.FormatInt(index)), proto.Placeholder}
	return proto.NewRequest("LSET", value, args)
}

// LREM removes up to count occurrences of value from the list at key
// (count < 0 removes from the tail, count == 0 removes all).
func LREM(key string, count int64, value []byte) proto.Request {
	args := []proto.Argument{proto.TextArg(key), proto.TextArg(proto.FormatInt(count)), proto.Placeholder}
	return proto.NewRequest("LREM", value, args)
}

// LINSERT inserts value immediately before (or after) the first
// occurrence of pivot in the list at key.
func LINSERT(key string, before bool, pivot string, value []byte) proto.Request {
	position := "AFTER"
	if before {
		position = "BEFORE"
	}
	args := []proto.Argument{proto.TextArg(key), proto.TextArg(position), proto.TextArg(pivot), proto.Placeholder}
	return proto.NewRequest("LINSERT", value, args)
}

// LTRIM trims the list at key to the elements between start and stop.
func LTRIM(key string, start, stop int64) proto.Request {
	return proto.NewRequest("LTRIM", nil, textArgs(key, proto.FormatInt(start), proto.FormatInt(stop)))
}

// RPOPLPUSH atomically pops the last element of source and pushes it
// onto the head of destination, returning it.
func RPOPLPUSH(source, destination string) proto.Request {
	return proto.NewRequest("RPOPLPUSH", nil, textArgs(source, destination))
}
