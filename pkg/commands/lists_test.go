package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haldane-io/resp2/pkg/commands"
)

func TestLPushJoinsMultipleValuesWithOnePlaceholderEach(t *testing.T) {
	r := commands.LPUSH("tasks", []byte("a"), []byte("b"))
	assert.Equal(t, "*4\r\n$5\r\nLPUSH\r\n$5\r\ntasks\r\n$1\r\na\r\n$1\r\nb\r\n", encode(t, r))
}

func TestLPopWithoutCountOmitsArgument(t *testing.T) {
	r := commands.LPOP("tasks", nil)
	assert.Equal(t, "*2\r\n$4\r\nLPOP\r\n$5\r\ntasks\r\n", encode(t, r))
}

func TestLPopWithCountIncludesIt(t *testing.T) {
	count := int64(2)
	r := commands.LPOP("tasks", &count)
	assert.Equal(t, "*3\r\n$4\r\nLPOP\r\n$5\r\ntasks\r\n$1\r\n2\r\n", encode(t, r))
}

func TestLInsertBeforePivot(t *testing.T) {
	r := commands.LINSERT("tasks", true, "pivot", []byte("new"))
	assert.Equal(t, "*5\r\n$7\r\nLINSERT\r\n$5\r\ntasks\r\n$6\r\nBEFORE\r\n$5\r\npivot\r\n$3\r\nnew\r\n", encode(t, r))
}

func TestLInsertAfterPivot(t *testing.T) {
	r := commands.LINSERT("tasks", false, "pivot", []byte("new"))
	assert.Equal(t, "*5\r\n$7\r\nLINSERT\r\n$5\r\ntasks\r\n$5\r\nAFTER\r\n$5\r\npivot\r\n$3\r\nnew\r\n", encode(t, r))
}

func TestRPopLPushTakesTwoPlainKeys(t *testing.T) {
	r := commands.RPOPLPUSH("src", "dst")
	assert.Equal(t, "*3\r\n$9\r\nRPOPLPUSH\r\n$3\r\nsrc\r\n$3\r\ndst\r\n", encode(t, r))
}
