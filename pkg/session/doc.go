// Package session implements the protocol engine's orchestrator: write
// a single request and read one reply, write a pipeline of N requests
// and read back N replies in order, run a session that scopes a
// connection's lifetime around a caller-supplied body, and compose a
// sequence of request-producing steps where a later step may depend on
// an earlier reply. It also enforces the per-connection state machine
// (Idle -> Writing -> AwaitingReply(N) -> ... -> Idle/Closed) that
// rejects a new write while replies are still pending.
package session
