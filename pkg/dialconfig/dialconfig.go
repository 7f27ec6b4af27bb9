// Package dialconfig loads the connection-only settings a RESP2 dial
// needs: host, port, and the connect/read/write timeouts. It follows
// the teacher's flag -> environment -> default precedence exactly
// (LoadServerConfig/LoadClientConfig in the source this was adapted
// from), reduced to what this library's Non-goals leave in scope: no
// pool size, no node list, since this module owns no pool and is not a
// cluster client.
package dialconfig

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

const envPrefix = "RESP2_"

// Options describes one TCP endpoint to dial and the timeouts to apply
// to the connection once open.
type Options struct {
	Host           string
	Port           int
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// Default mirrors the teacher's DefaultClientConfig: a local server on
// the standard port with generous but bounded timeouts.
func Default() Options {
	return Options{
		Host:           "127.0.0.1",
		Port:           6379,
		ConnectTimeout: 5 * time.Second,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
	}
}

// Load builds Options from, in increasing precedence: defaults,
// RESP2_-prefixed environment variables, then flags parsed from args
// (nil args skips parsing, so the result is env/defaults only). fs may be
// nil, in which case a private FlagSet is used and args is parsed
// against it; callers embedding this in a larger CLI should pass
// their own FlagSet instead so flags are defined once.
func Load(fs *flag.FlagSet, args []string) (Options, error) {
	opts := Default()
	applyEnv(&opts)

	if fs == nil {
		fs = flag.NewFlagSet("resp2", flag.ContinueOnError)
	}
	host := fs.String("host", opts.Host, "RESP2 server host")
	port := fs.Int("port", opts.Port, "RESP2 server port")
	connectTimeout := fs.Duration("connect-timeout", opts.ConnectTimeout, "TCP connect timeout")
	readTimeout := fs.Duration("read-timeout", opts.ReadTimeout, "read deadline applied per read")
	writeTimeout := fs.Duration("write-timeout", opts.WriteTimeout, "write deadline applied per write")

	if args != nil {
		if err := fs.Parse(args); err != nil {
			return Options{}, err
		}
	}

	opts.Host = *host
	opts.Port = *port
	opts.ConnectTimeout = *connectTimeout
	opts.ReadTimeout = *readTimeout
	opts.WriteTimeout = *writeTimeout

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func applyEnv(opts *Options) {
	if v := os.Getenv(envPrefix + "HOST"); v != "" {
		opts.Host = v
	}
	if v := os.Getenv(envPrefix + "PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.Port = n
		}
	}
	if v := os.Getenv(envPrefix + "CONNECT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			opts.ConnectTimeout = d
		}
	}
	if v := os.Getenv(envPrefix + "READ_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			opts.ReadTimeout = d
		}
	}
	if v := os.Getenv(envPrefix + "WRITE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			opts.WriteTimeout = d
		}
	}
}

// Validate checks the fields Load can't already guarantee by type.
func (o Options) Validate() error {
	if o.Host == "" {
		return fmt.Errorf("dialconfig: host must not be empty")
	}
	if o.Port <= 0 || o.Port > 65535 {
		return fmt.Errorf("dialconfig: port %d out of range", o.Port)
	}
	if o.ConnectTimeout <= 0 {
		return fmt.Errorf("dialconfig: connect timeout must be positive")
	}
	return nil
}

// Address returns the host:port pair suitable for net.Dial.
func (o Options) Address() string {
	return fmt.Sprintf("%s:%d", o.Host, o.Port)
}
