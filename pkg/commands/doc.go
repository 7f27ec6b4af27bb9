// Package commands is the command shorthand table: one builder per
// supported server command, each pure sugar over proto.NewRequest that
// performs no I/O. Every shorthand follows the normalization rules in
// the request builder's contract: numbers stringify to their shortest
// decimal form, binary values become a payload with a placeholder
// argument, and options objects flatten to KEY, VALUE argument pairs in
// iteration order. The command surface is intentionally open: any
// command this package doesn't name can still be sent via
// proto.NewRequest directly.
package commands
