package commands

import "github.com/haldane-io/resp2/pkg/proto"

// SADD adds one or more members to the set at key.
func SADD(key string, members ...[]byte) proto.Request {
	payload, placeholders := payloadAndPlaceholders(members)
	args := append(textArgs(key), placeholders...)
	return proto.NewRequest("SADD", payload, args)
}

// SREM removes one or more members from the set at key.
func SREM(key string, members ...[]byte) proto.Request {
	payload, placeholders := payloadAndPlaceholders(members)
	args := append(textArgs(key), placeholders...)
	return proto.NewRequest("SREM", payload, args)
}

// SMEMBERS returns all members of the set at key.
func SMEMBERS(key string) proto.Request {
	return proto.NewRequest("SMEMBERS", nil, textArgs(key))
}

// SISMEMBER reports whether member is in the set at key.
func SISMEMBER(key string, member []byte) proto.Request {
	return proto.NewRequest("SISMEMBER", member, append(textArgs(key), proto.Placeholder))
}

// SCARD returns the number of members in the set at key.
func SCARD(key string) proto.Request {
	return proto.NewRequest("SCARD", nil, textArgs(key))
}

// SPOP removes and returns a random member of the set at key. When
// count is non-nil, it removes and returns up to *count members.
func SPOP(key string, count *int64) proto.Request {
	args := textArgs(key)
	if count != nil {
		args = append(args, proto.TextArg(proto.FormatInt(*count)))
	}
	return proto.NewRequest("SPOP", nil, args)
}

// SRANDMEMBER returns one or more random members of the set at key
// without removing them. When count is non-nil, it returns up to
// *count members (negative allows repeats, per server semantics).
func SRANDMEMBER(key string, count *int64) proto.Request {
	args := textArgs(key)
	if count != nil {
		args = append(args, proto.TextArg(proto.FormatInt(*count)))
	}
	return proto.NewRequest("SRANDMEMBER", nil, args)
}

// SUNION returns the union of the sets at the given keys.
func SUNION(keys ...string) proto.Request {
	return proto.NewRequest("SUNION", nil, textArgs(keys...))
}

// SINTER returns the intersection of the sets at the given keys.
func SINTER(keys ...string) proto.Request {
	return proto.NewRequest("SINTER", nil, textArgs(keys...))
}

// SDIFF returns the members in the first set at keys[0] that are not
// present in any of the other sets.
func SDIFF(keys ...string) proto.Request {
	return proto.NewRequest("SDIFF", nil, textArgs(keys...))
}
