package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haldane-io/resp2/pkg/commands"
)

func TestHSetCarriesValueAsPayload(t *testing.T) {
	r := commands.HSET("hoge", "field", []byte("value"))
	assert.Equal(t, "*4\r\n$4\r\nHSET\r\n$4\r\nhoge\r\n$5\r\nfield\r\n$5\r\nvalue\r\n", encode(t, r))
}

func TestHMSetJoinsValuesWithCRLFAndOnePlaceholderEach(t *testing.T) {
	r := commands.HMSET("hoge",
		commands.KV{Key: "f1", Value: []byte("v1")},
		commands.KV{Key: "f2", Value: []byte("v2")},
	)
	assert.Equal(t,
		"*6\r\n$5\r\nHMSET\r\n$4\r\nhoge\r\n$2\r\nf1\r\n$2\r\nv1\r\n$2\r\nf2\r\n$2\r\nv2\r\n",
		encode(t, r))
}

func TestHMGetListsAllRequestedFields(t *testing.T) {
	r := commands.HMGET("hoge", "f1", "f2")
	assert.Equal(t, "*4\r\n$5\r\nHMGET\r\n$4\r\nhoge\r\n$2\r\nf1\r\n$2\r\nf2\r\n", encode(t, r))
}

func TestHIncrByStringifiesDelta(t *testing.T) {
	r := commands.HINCRBY("hoge", "count", -3)
	assert.Equal(t, "*4\r\n$7\r\nHINCRBY\r\n$4\r\nhoge\r\n$5\r\ncount\r\n$2\r\n-3\r\n", encode(t, r))
}
