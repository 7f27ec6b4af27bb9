package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haldane-io/resp2/pkg/commands"
)

func TestPingWithoutMessageTakesNoArguments(t *testing.T) {
	assert.Equal(t, "*1\r\n$4\r\nPING\r\n", encode(t, commands.PING(nil)))
}

func TestPingWithMessageCarriesItAsPayload(t *testing.T) {
	r := commands.PING([]byte("hello"))
	assert.Equal(t, "*2\r\n$4\r\nPING\r\n$5\r\nhello\r\n", encode(t, r))
}

func TestEchoCarriesMessageAsPayload(t *testing.T) {
	r := commands.ECHO([]byte("hello"))
	assert.Equal(t, "*2\r\n$4\r\nECHO\r\n$5\r\nhello\r\n", encode(t, r))
}

func TestAuthWithoutUserUsesLegacyForm(t *testing.T) {
	r := commands.AUTH("", "secret")
	assert.Equal(t, "*2\r\n$4\r\nAUTH\r\n$6\r\nsecret\r\n", encode(t, r))
}

func TestAuthWithUserUsesACLForm(t *testing.T) {
	r := commands.AUTH("default", "secret")
	assert.Equal(t, "*3\r\n$4\r\nAUTH\r\n$7\r\ndefault\r\n$6\r\nsecret\r\n", encode(t, r))
}

func TestFlushAllTakesNoArguments(t *testing.T) {
	assert.Equal(t, "*1\r\n$8\r\nFLUSHALL\r\n", encode(t, commands.FLUSHALL()))
}
