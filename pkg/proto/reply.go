package proto

// Reply is the immutable result of reading one complete server reply:
// the raw bytes exactly as received, and a Success/Failure
// discriminator decided once, at read time, from the leading sigil.
type Reply struct {
	raw     []byte
	failure bool
}

// newReply is unexported: Replies are only ever produced by ReadReply.
func newReply(raw []byte, failure bool) Reply {
	return Reply{raw: raw, failure: failure}
}

// Success reports whether this reply is not a server error.
func (r Reply) Success() bool {
	return !r.failure
}

// Failure reports whether this reply is a server error (leading `-`
// sigil, or a bulk string whose body begins with the error sigil byte,
// see the decoder's classification rules) or a null bulk string.
func (r Reply) Failure() bool {
	return r.failure
}

// Raw returns the complete reply bytes exactly as received, including
// sigils, length prefixes, and terminating CRLFs.
func (r Reply) Raw() []byte {
	return r.raw
}
