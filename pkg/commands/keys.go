package commands

import (
	"time"

	"github.com/haldane-io/resp2/pkg/proto"
)

// DEL deletes the given keys and returns how many existed.
func DEL(keys ...string) proto.Request {
	return proto.NewRequest("DEL", nil, textArgs(keys...))
}

// EXISTS counts how many of the given keys exist.
func EXISTS(keys ...string) proto.Request {
	return proto.NewRequest("EXISTS", nil, textArgs(keys...))
}

// EXPIRE sets key's time-to-live to seconds.
func EXPIRE(key string, seconds int64) proto.Request {
	return proto.NewRequest("EXPIRE", nil, textArgs(key, proto.FormatInt(seconds)))
}

// PEXPIRE sets key's time-to-live to milliseconds.
func PEXPIRE(key string, milliseconds int64) proto.Request {
	return proto.NewRequest("PEXPIRE", nil, textArgs(key, proto.FormatInt(milliseconds)))
}

// EXPIREAT sets key's expiry to the UNIX timestamp at, in whole
// seconds, per the date/time normalization rule.
func EXPIREAT(key string, at time.Time) proto.Request {
	return proto.NewRequest("EXPIREAT", nil, textArgs(key, proto.FormatInt(at.Unix())))
}

// PEXPIREAT sets key's expiry to the UNIX timestamp at, in
// milliseconds (the source's "seconds times 1000" basis).
func PEXPIREAT(key string, at time.Time) proto.Request {
	return proto.NewRequest("PEXPIREAT", nil, textArgs(key, proto.FormatInt(at.UnixMilli())))
}

// TTL returns key's remaining time-to-live in seconds.
func TTL(key string) proto.Request {
	return proto.NewRequest("TTL", nil, textArgs(key))
}

// PTTL returns key's remaining time-to-live in milliseconds.
func PTTL(key string) proto.Request {
	return proto.NewRequest("PTTL", nil, textArgs(key))
}

// PERSIST removes key's expiry, making it persistent.
func PERSIST(key string) proto.Request {
	return proto.NewRequest("PERSIST", nil, textArgs(key))
}

// TYPE returns the type name of the value stored at key.
func TYPE(key string) proto.Request {
	return proto.NewRequest("TYPE", nil, textArgs(key))
}

// RENAME renames source to destination, overwriting destination if it
// exists.
func RENAME(source, destination string) proto.Request {
	return proto.NewRequest("RENAME", nil, textArgs(source, destination))
}

// RENAMENX renames source to destination only if destination does not
// already exist.
func RENAMENX(source, destination string) proto.Request {
	return proto.NewRequest("RENAMENX", nil, textArgs(source, destination))
}

// KEYS returns all keys matching pattern. Intended for debugging; it
// does not paginate, unlike SCAN.
func KEYS(pattern string) proto.Request {
	return proto.NewRequest("KEYS", nil, textArgs(pattern))
}

// RANDOMKEY returns a random key from the keyspace.
func RANDOMKEY() proto.Request {
	return proto.NewRequest("RANDOMKEY", nil, nil)
}

// DBSIZE returns the number of keys in the currently selected database.
func DBSIZE() proto.Request {
	return proto.NewRequest("DBSIZE", nil, nil)
}

// CopyOptions carries COPY's optional flags.
type CopyOptions struct {
	DB      *int64 // destination database index
	Replace bool   // overwrite destination if it already exists
}

// COPY copies the value at source to destination.
func COPY(source, destination string, opts CopyOptions) proto.Request {
	args := textArgs(source, destination)
	var options []Option
	if opts.DB != nil {
		options = append(options, Option{"DB", *opts.DB})
	}
	if opts.Replace {
		options = append(options, Option{"REPLACE", true})
	}
	args = append(args, flattenOptions(options)...)
	return proto.NewRequest("COPY", nil, args)
}

// MOVE moves key to database db.
func MOVE(key string, db int64) proto.Request {
	return proto.NewRequest("MOVE", nil, textArgs(key, proto.FormatInt(db)))
}

// ScanOptions carries the cursor-based scan family's optional clauses
// (SCAN, HSCAN, SSCAN).
type ScanOptions struct {
	Match string
	Count *int64
	Type  string // SCAN only; ignored by HSCAN/SSCAN builders below
}

// SCAN iterates the keyspace incrementally from cursor.
func SCAN(cursor uint64, opts ScanOptions) proto.Request {
	args := textArgs(proto.FormatInt(int64(cursor)))
	args = append(args, flattenOptions(scanOptionList(opts, true))...)
	return proto.NewRequest("SCAN", nil, args)
}

// HSCAN iterates the fields of the hash at key incrementally from
// cursor.
func HSCAN(key string, cursor uint64, opts ScanOptions) proto.Request {
	args := textArgs(key, proto.FormatInt(int64(cursor)))
	args = append(args, flattenOptions(scanOptionList(opts, false))...)
	return proto.NewRequest("HSCAN", nil, args)
}

// SSCAN iterates the members of the set at key incrementally from
// cursor.
func SSCAN(key string, cursor uint64, opts ScanOptions) proto.Request {
	args := textArgs(key, proto.FormatInt(int64(cursor)))
	args = append(args, flattenOptions(scanOptionList(opts, false))...)
	return proto.NewRequest("SSCAN", nil, args)
}

func scanOptionList(opts ScanOptions, includeType bool) []Option {
	var options []Option
	if opts.Match != "" {
		options = append(options, Option{"MATCH", opts.Match})
	}
	if opts.Count != nil {
		options = append(options, Option{"COUNT", *opts.Count})
	}
	if includeType && opts.Type != "" {
		options = append(options, Option{"TYPE", opts.Type})
	}
	return options
}

// SortOptions carries SORT's optional clauses. GET patterns are
// expanded to one "GET pattern" pair per entry, preserving order.
type SortOptions struct {
	By          string
	Get         []string
	LimitOffset *int64
	LimitCount  *int64
	Desc        bool
	Alpha       bool
	Store       string
}

// SORT returns (or stores) the sorted elements of the list, set, or
// sorted set at key.
func SORT(key string, opts SortOptions) proto.Request {
	args := textArgs(key)
	if opts.By != "" {
		args = append(args, proto.TextArg("BY"), proto.TextArg(opts.By))
	}
	for _, pattern := range opts.Get {
		args = append(args, proto.TextArg("GET"), proto.TextArg(pattern))
	}
	if opts.LimitOffset != nil && opts.LimitCount != nil {
		args = append(args, proto.TextArg("LIMIT"),
			proto.TextArg(proto.FormatInt(*opts.LimitOffset)), proto.TextArg(proto.FormatInt(*opts.LimitCount)))
	}
	if opts.Desc {
		args = append(args, proto.TextArg("DESC"))
	}
	if opts.Alpha {
		args = append(args, proto.TextArg("ALPHA"))
	}
	if opts.Store != "" {
		args = append(args, proto.TextArg("STORE"), proto.TextArg(opts.Store))
	}
	return proto.NewRequest("SORT", nil, args)
}

// MigrateAuth carries the credentials MIGRATE forwards to the
// destination server.
type MigrateAuth struct {
	User     string // empty for legacy single-password AUTH
	Password string
}

// MigrateOptions carries MIGRATE's optional flags, matching the
// special fixed argument order the request builder contract describes.
type MigrateOptions struct {
	Copy    bool
	Replace bool
	Auth    *MigrateAuth
	Keys    []string // more than one triggers the KEYS clause form
}

// MIGRATE atomically moves key (or, with opts.Keys, several keys) to
// another instance. Arguments are assembled in the fixed order: host,
// port, single-key-or-empty-string, db, timeout, flags, AUTH/AUTH2,
// then KEYS when multiple keys are supplied.
func MIGRATE(host string, port int, key string, db int64, timeout time.Duration, opts MigrateOptions) proto.Request {
	singleKey := key
	if len(opts.Keys) > 1 {
		singleKey = ""
	}

	args := []proto.Argument{
		proto.TextArg(host),
		proto.TextArg(proto.FormatInt(int64(port))),
		proto.TextArg(singleKey),
		proto.TextArg(proto.FormatInt(db)),
		proto.TextArg(proto.FormatInt(timeout.Milliseconds())),
	}
	if opts.Copy {
		args = append(args, proto.TextArg("COPY"))
	}
	if opts.Replace {
		args = append(args, proto.TextArg("REPLACE"))
	}
	if opts.Auth != nil {
		if opts.Auth.User != "" {
			args = append(args, proto.TextArg("AUTH2"), proto.TextArg(opts.Auth.User), proto.TextArg(opts.Auth.Password))
		} else {
			args = append(args, proto.TextArg("AUTH"), proto.TextArg(opts.Auth.Password))
		}
	}
	if len(opts.Keys) > 1 {
		args = append(args, proto.TextArg("KEYS"))
		args = append(args, textArgs(opts.Keys...)...)
	}
	return proto.NewRequest("MIGRATE", nil, args)
}
