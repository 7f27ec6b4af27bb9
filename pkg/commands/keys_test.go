package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/haldane-io/resp2/pkg/commands"
)

func TestExpireAtUsesWholeSeconds(t *testing.T) {
	at := time.Unix(1700000000, 0)
	assert.Equal(t, "*3\r\n$8\r\nEXPIREAT\r\n$4\r\nhoge\r\n$10\r\n1700000000\r\n", encode(t, commands.EXPIREAT("hoge", at)))
}

func TestPExpireAtUsesMillisecondBasis(t *testing.T) {
	at := time.Unix(1700000000, 0)
	got := encode(t, commands.PEXPIREAT("hoge", at))
	assert.Equal(t, "*3\r\n$9\r\nPEXPIREAT\r\n$4\r\nhoge\r\n$13\r\n1700000000000\r\n", got)
}

func TestCopyFlattensDBAndReplaceOptions(t *testing.T) {
	db := int64(2)
	r := commands.COPY("src", "dst", commands.CopyOptions{DB: &db, Replace: true})
	assert.Equal(t, "*6\r\n$4\r\nCOPY\r\n$3\r\nsrc\r\n$3\r\ndst\r\n$2\r\nDB\r\n$1\r\n2\r\n$7\r\nREPLACE\r\n", encode(t, r))
}

func TestCopyOmitsUnsetOptions(t *testing.T) {
	r := commands.COPY("src", "dst", commands.CopyOptions{})
	assert.Equal(t, "*3\r\n$4\r\nCOPY\r\n$3\r\nsrc\r\n$3\r\ndst\r\n", encode(t, r))
}

func TestScanFlattensMatchCountAndType(t *testing.T) {
	count := int64(100)
	r := commands.SCAN(0, commands.ScanOptions{Match: "user:*", Count: &count, Type: "hash"})
	assert.Equal(t, "*8\r\n$4\r\nSCAN\r\n$1\r\n0\r\n$5\r\nMATCH\r\n$6\r\nuser:*\r\n$5\r\nCOUNT\r\n$3\r\n100\r\n$4\r\nTYPE\r\n$4\r\nhash\r\n", encode(t, r))
}

func TestHScanIgnoresTypeOption(t *testing.T) {
	r := commands.HSCAN("hoge", 0, commands.ScanOptions{Type: "hash"})
	assert.Equal(t, "*3\r\n$5\r\nHSCAN\r\n$4\r\nhoge\r\n$1\r\n0\r\n", encode(t, r))
}

func TestSortExpandsGetPatternsInOrder(t *testing.T) {
	r := commands.SORT("mylist", commands.SortOptions{
		By:    "weight_*",
		Get:   []string{"#", "data_*"},
		Desc:  true,
		Alpha: true,
	})
	assert.Equal(t,
		"*10\r\n$4\r\nSORT\r\n$6\r\nmylist\r\n$2\r\nBY\r\n$8\r\nweight_*\r\n"+
			"$3\r\nGET\r\n$1\r\n#\r\n$3\r\nGET\r\n$6\r\ndata_*\r\n$4\r\nDESC\r\n$5\r\nALPHA\r\n",
		encode(t, r))
}

func TestMigrateAssemblesFixedArgumentOrder(t *testing.T) {
	r := commands.MIGRATE("10.0.0.1", 6379, "hoge", 0, 5*time.Second, commands.MigrateOptions{
		Copy: true,
		Auth: &commands.MigrateAuth{Password: "secret"},
	})
	assert.Equal(t,
		"*9\r\n$7\r\nMIGRATE\r\n$8\r\n10.0.0.1\r\n$4\r\n6379\r\n$4\r\nhoge\r\n$1\r\n0\r\n$4\r\n5000\r\n$4\r\nCOPY\r\n$4\r\nAUTH\r\n$6\r\nsecret\r\n",
		encode(t, r))
}

func TestMigrateWithMultipleKeysUsesKeysClauseAndEmptySingleKey(t *testing.T) {
	r := commands.MIGRATE("10.0.0.1", 6379, "", 0, time.Second, commands.MigrateOptions{
		Keys: []string{"a", "b"},
	})
	got := encode(t, r)
	assert.Contains(t, got, "$0\r\n\r\n") // empty single-key slot
	assert.Contains(t, got, "$4\r\nKEYS\r\n$1\r\na\r\n$1\r\nb\r\n")
}

func TestMigrateWithAuth2UsesUserForm(t *testing.T) {
	r := commands.MIGRATE("10.0.0.1", 6379, "hoge", 0, time.Second, commands.MigrateOptions{
		Auth: &commands.MigrateAuth{User: "default", Password: "secret"},
	})
	assert.Contains(t, encode(t, r), "$5\r\nAUTH2\r\n$7\r\ndefault\r\n$6\r\nsecret\r\n")
}
