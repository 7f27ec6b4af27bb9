// Package resp2 is a client library for a RESP2 (REdis Serialization
// Protocol, version 2) key/value server.
//
// It gives callers a way to build well-formed requests for the
// command surface without hand-formatting bytes, serialize those
// requests onto a connection, parse the server's streaming replies
// into structured values, and orchestrate connection lifecycle,
// pipelining, and compositional command sequences where a later
// command may depend on an earlier reply.
//
// # Architecture Overview
//
// resp2 is organized leaves-first:
//
//   - pkg/proto: Request/Reply value types, the placeholder token, the
//     RESP encoder, the streaming RESP decoder, and the reply-to-value
//     decoder.
//   - pkg/commands: one builder per supported server command, pure
//     sugar over proto.NewRequest.
//   - pkg/conn: the borrowed byte-stream Handle interface and its
//     net.Conn-backed implementation.
//   - pkg/session: the orchestrator (Execute, ExecutePipeline,
//     WithSession, and Pipe) plus the per-connection write/await-reply
//     state machine.
//   - pkg/dialconfig: host/port/timeout configuration, loaded from
//     flags, then RESP2_-prefixed environment variables, then
//     defaults.
//
// # Quick Start
//
//	import (
//		"context"
//
//		"github.com/haldane-io/resp2/pkg/commands"
//		"github.com/haldane-io/resp2/pkg/conn"
//		"github.com/haldane-io/resp2/pkg/dialconfig"
//		"github.com/haldane-io/resp2/pkg/proto"
//		"github.com/haldane-io/resp2/pkg/session"
//	)
//
//	opts := dialconfig.Default()
//	value, err := session.WithSession(context.Background(),
//		func(ctx context.Context) (conn.Handle, error) { return conn.Dial(ctx, opts) },
//		session.Options{},
//		func(c *session.Conn) (proto.Value, error) {
//			if _, err := c.Execute(commands.SET("hoge", []byte("piyo"), commands.SetOptions{})); err != nil {
//				return proto.Value{}, err
//			}
//			reply, err := c.Execute(commands.GET("hoge"))
//			if err != nil {
//				return proto.Value{}, err
//			}
//			return proto.DecodeReply(reply)
//		})
//
// # Non-goals
//
// Not a connection pool. Not a cluster client. Not a RESP3 reply
// decoder. Not a Lua/script cache. No implicit retry or reconnection:
// the failure model is explicit and leaves policy to the caller: see
// pkg/proto's error taxonomy (ErrMalformedRequest, ErrTruncated,
// ErrProtocolViolation, ErrIO) and pkg/session.ErrInvalidState.
//
// # Command-line demonstration
//
// cmd/resp2cli wires the same packages into a small cobra-based CLI
// (get/set/ping/pipeline/repl) for interactive use against a running
// server.
package resp2
