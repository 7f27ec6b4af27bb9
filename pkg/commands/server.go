package commands

import "github.com/haldane-io/resp2/pkg/proto"

// PING checks the connection is alive. When message is non-nil, the
// server echoes it back instead of replying "PONG".
func PING(message []byte) proto.Request {
	if message == nil {
		return proto.NewRequest("PING", nil, nil)
	}
	return proto.NewRequest("PING", message, []proto.Argument{proto.Placeholder})
}

// ECHO returns message unchanged, verifying the round trip of a binary
// payload through the server.
func ECHO(message []byte) proto.Request {
	return proto.NewRequest("ECHO", message, []proto.Argument{proto.Placeholder})
}

// SELECT switches the connection to database index.
func SELECT(index int64) proto.Request {
	return proto.NewRequest("SELECT", nil, textArgs(proto.FormatInt(index)))
}

// AUTH authenticates the connection. When user is empty, the
// legacy single-password form is sent; otherwise the ACL-style
// "AUTH user pass" form is used.
func AUTH(user, password string) proto.Request {
	if user == "" {
		return proto.NewRequest("AUTH", nil, textArgs(password))
	}
	return proto.NewRequest("AUTH", nil, textArgs(user, password))
}

// FLUSHDB removes all keys from the currently selected database.
func FLUSHDB() proto.Request {
	return proto.NewRequest("FLUSHDB", nil, nil)
}

// FLUSHALL removes all keys from every database.
func FLUSHALL() proto.Request {
	return proto.NewRequest("FLUSHALL", nil, nil)
}

// MULTI marks the start of a transaction block.
func MULTI() proto.Request {
	return proto.NewRequest("MULTI", nil, nil)
}

// EXEC executes all commands queued since MULTI.
func EXEC() proto.Request {
	return proto.NewRequest("EXEC", nil, nil)
}

// DISCARD cancels a transaction queued since MULTI.
func DISCARD() proto.Request {
	return proto.NewRequest("DISCARD", nil, nil)
}
