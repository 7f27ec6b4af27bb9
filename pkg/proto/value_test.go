package proto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haldane-io/resp2/pkg/proto"
)

func TestDecodeReplySimpleString(t *testing.T) {
	r := newChunkedByteReader([]byte("+OK\r\n"), 5)
	reply, err := proto.ReadReply(r)
	require.NoError(t, err)

	v, err := proto.DecodeReply(reply)
	require.NoError(t, err)
	assert.Equal(t, proto.KindText, v.Kind)
	assert.Equal(t, "OK", v.Text)
}

func TestDecodeReplyError(t *testing.T) {
	r := newChunkedByteReader([]byte("-ERR wrong number of arguments\r\n"), 6)
	reply, err := proto.ReadReply(r)
	require.NoError(t, err)
	assert.True(t, reply.Failure())

	v, err := proto.DecodeReply(reply)
	require.NoError(t, err)
	assert.Equal(t, proto.KindError, v.Kind)
	assert.Equal(t, "ERR wrong number of arguments", v.Err)
}

func TestDecodeReplyBulkFailureOnLeadingMinus(t *testing.T) {
	// Lenient classification preserved from the source: a bulk string
	// whose body starts with '-' is treated as a server error, even
	// though it's a legitimate negative-number-looking value.
	r := newChunkedByteReader([]byte("$2\r\n-1\r\n"), 3)
	reply, err := proto.ReadReply(r)
	require.NoError(t, err)
	assert.True(t, reply.Failure())
}

func TestDecodeReplyEmptyArray(t *testing.T) {
	r := newChunkedByteReader([]byte("*0\r\n"), 2)
	reply, err := proto.ReadReply(r)
	require.NoError(t, err)

	v, err := proto.DecodeReply(reply)
	require.NoError(t, err)
	assert.Equal(t, proto.KindList, v.Kind)
	assert.Empty(t, v.List)
}

func TestDecodeReplyNullArray(t *testing.T) {
	r := newChunkedByteReader([]byte("*-1\r\n"), 2)
	reply, err := proto.ReadReply(r)
	require.NoError(t, err)

	v, err := proto.DecodeReply(reply)
	require.NoError(t, err)
	assert.Equal(t, proto.KindList, v.Kind)
	assert.Empty(t, v.List)
}
