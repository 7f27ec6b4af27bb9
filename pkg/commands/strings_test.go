package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haldane-io/resp2/pkg/commands"
	"github.com/haldane-io/resp2/pkg/proto"
)

func encode(t *testing.T, r proto.Request) string {
	t.Helper()
	got, err := proto.Encode(r)
	require.NoError(t, err)
	return string(got)
}

func TestGetEncodesAsTwoArgCommand(t *testing.T) {
	assert.Equal(t, "*2\r\n$3\r\nGET\r\n$4\r\nhoge\r\n", encode(t, commands.GET("hoge")))
}

func TestSetWithoutOptionsMatchesSpecScenarioOne(t *testing.T) {
	r := commands.SET("hoge", []byte("piyo"), commands.SetOptions{})
	assert.Equal(t, "*3\r\n$3\r\nSET\r\n$4\r\nhoge\r\n$4\r\npiyo\r\n", encode(t, r))
}

func TestSetWithExModifierMatchesSpecScenarioTwo(t *testing.T) {
	ex := int64(60)
	r := commands.SET("hoge", []byte("piyo"), commands.SetOptions{EX: &ex})
	assert.Equal(t, "*5\r\n$3\r\nSET\r\n$4\r\nhoge\r\n$4\r\npiyo\r\n$2\r\nEX\r\n$2\r\n60\r\n", encode(t, r))
}

func TestSetFlattensBooleanModifiersInOrder(t *testing.T) {
	r := commands.SET("hoge", []byte("piyo"), commands.SetOptions{NX: true, Get: true})
	assert.Equal(t, "*5\r\n$3\r\nSET\r\n$4\r\nhoge\r\n$4\r\npiyo\r\n$2\r\nNX\r\n$3\r\nGET\r\n", encode(t, r))
}

func TestSetOmitsFalseBooleanModifiers(t *testing.T) {
	r := commands.SET("hoge", []byte("piyo"), commands.SetOptions{XX: false})
	assert.Equal(t, "*3\r\n$3\r\nSET\r\n$4\r\nhoge\r\n$4\r\npiyo\r\n", encode(t, r))
}

func TestMSetMatchesSpecScenarioThree(t *testing.T) {
	r := commands.MSET(
		commands.KV{Key: "hoge", Value: []byte("piyo")},
		commands.KV{Key: "hogefuga", Value: []byte("fuga")},
	)
	assert.Equal(t, "*5\r\n$4\r\nMSET\r\n$4\r\nhoge\r\n$4\r\npiyo\r\n$8\r\nhogefuga\r\n$4\r\nfuga\r\n", encode(t, r))
}

func TestMSetNXSharesMSetsPayloadShape(t *testing.T) {
	a := commands.MSET(commands.KV{Key: "k", Value: []byte("v")})
	b := commands.MSETNX(commands.KV{Key: "k", Value: []byte("v")})
	assert.Equal(t, a.Payload, b.Payload)
	assert.Equal(t, "MSETNX", b.Command)
}

func TestIncrByFloatUsesShortestDecimalForm(t *testing.T) {
	r := commands.INCRBYFLOAT("hoge", 0.1)
	assert.Equal(t, "*3\r\n$11\r\nINCRBYFLOAT\r\n$4\r\nhoge\r\n$3\r\n0.1\r\n", encode(t, r))
}

func TestBitcountWithoutRangeOmitsArguments(t *testing.T) {
	r := commands.BITCOUNT("hoge", nil, nil)
	assert.Equal(t, "*2\r\n$8\r\nBITCOUNT\r\n$4\r\nhoge\r\n", encode(t, r))
}

func TestBitcountWithRangeIncludesBothBounds(t *testing.T) {
	start, end := int64(0), int64(-1)
	r := commands.BITCOUNT("hoge", &start, &end)
	assert.Equal(t, "*4\r\n$8\r\nBITCOUNT\r\n$4\r\nhoge\r\n$1\r\n0\r\n$2\r\n-1\r\n", encode(t, r))
}

func TestBitfieldAssemblesSubOperationsInOrder(t *testing.T) {
	value := int64(1)
	r := commands.BITFIELD("hoge", commands.BitfieldOp{Op: "INCRBY", Type: "u8", Offset: "0", Value: &value})
	assert.Equal(t,
		"*6\r\n$8\r\nBITFIELD\r\n$4\r\nhoge\r\n$6\r\nINCRBY\r\n$2\r\nu8\r\n$1\r\n0\r\n$1\r\n1\r\n",
		encode(t, r))
}

func TestAppendCarriesValueAsPayload(t *testing.T) {
	r := commands.APPEND("hoge", []byte("fuga"))
	assert.Equal(t, "*3\r\n$6\r\nAPPEND\r\n$4\r\nhoge\r\n$4\r\nfuga\r\n", encode(t, r))
}
