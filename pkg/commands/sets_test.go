package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haldane-io/resp2/pkg/commands"
)

func TestSAddJoinsMembersWithOnePlaceholderEach(t *testing.T) {
	r := commands.SADD("tags", []byte("go"), []byte("cache"))
	assert.Equal(t, "*4\r\n$4\r\nSADD\r\n$4\r\ntags\r\n$2\r\ngo\r\n$5\r\ncache\r\n", encode(t, r))
}

func TestSIsMemberCarriesMemberAsPayload(t *testing.T) {
	r := commands.SISMEMBER("tags", []byte("go"))
	assert.Equal(t, "*3\r\n$9\r\nSISMEMBER\r\n$4\r\ntags\r\n$2\r\ngo\r\n", encode(t, r))
}

func TestSPopWithoutCountOmitsArgument(t *testing.T) {
	r := commands.SPOP("tags", nil)
	assert.Equal(t, "*2\r\n$4\r\nSPOP\r\n$4\r\ntags\r\n", encode(t, r))
}

func TestSUnionAcceptsVariadicKeys(t *testing.T) {
	r := commands.SUNION("a", "b", "c")
	assert.Equal(t, "*4\r\n$6\r\nSUNION\r\n$1\r\na\r\n$1\r\nb\r\n$1\r\nc\r\n", encode(t, r))
}
