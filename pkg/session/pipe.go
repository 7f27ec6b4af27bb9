package session

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/haldane-io/resp2/pkg/proto"
)

// Step is one element of a Pipe sequence: either a concrete Request or
// a function of the previous step's decoded-bytes view that produces
// the next Request. It is a closed two-arm variant, like proto.Argument.
type Step interface {
	isStep()
}

// RequestStep is a Step that carries a ready-made Request, independent
// of any prior reply in the sequence.
type RequestStep proto.Request

func (RequestStep) isStep() {}

// FuncStep is a Step built from the previous step's reply. prev is nil
// for the first step in a sequence (there is no previous reply yet);
// FuncStep must not be used there.
type FuncStep func(prev []byte) proto.Request

func (FuncStep) isStep() {}

// Pipe runs steps sequentially on one connection: step 1's reply feeds
// step 2 if step 2 is a FuncStep, step 2's feeds step 3, and so on. It
// is sequential on the wire, not pipelined: each step's reply is read
// before the next step is constructed, since a later step may need it.
// The final value is the last step's Reply.
func Pipe(c *Conn, steps ...Step) (proto.Reply, error) {
	var prev proto.Reply
	var havePrev bool

	for i, step := range steps {
		var req proto.Request
		switch s := step.(type) {
		case RequestStep:
			req = proto.Request(s)
		case FuncStep:
			var prevBytes []byte
			if havePrev {
				bytesView, err := proto.ReplyBytes(prev)
				if err != nil {
					return proto.Reply{}, errors.Wrapf(err, "pipe: decoding step %d's input reply", i)
				}
				// ReplyBytes terminates every scalar with "\n" for its
				// file-sink view; a FuncStep wants the bare scalar body.
				prevBytes = bytes.TrimSuffix(bytesView, []byte("\n"))
			}
			req = s(prevBytes)
		default:
			return proto.Reply{}, errors.Errorf("pipe: unsupported step type %T", step)
		}

		reply, err := c.Execute(req)
		if err != nil {
			return proto.Reply{}, errors.Wrapf(err, "pipe: step %d", i)
		}
		prev = reply
		havePrev = true
	}
	return prev, nil
}
