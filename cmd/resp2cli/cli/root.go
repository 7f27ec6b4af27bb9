// Package cli wires resp2cli's cobra command tree: connection flags
// and a zap logger shared by every subcommand through persistent
// flags, following the teacher's pkg/config-loads-flags-or-env
// pattern (see pkg/dialconfig) and the pack's cobra/zap/lumberjack
// pairing (packetd/packetd's cmd + logger packages).
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/haldane-io/resp2/pkg/dialconfig"
)

var (
	host       string
	port       int
	logFile    string
	logVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "resp2cli",
	Short: "Talk RESP2 to a key/value server using the resp2 client library",
	Example: "  resp2cli set hoge piyo --ex 60\n" +
		"  resp2cli get hoge\n" +
		"  resp2cli pipeline 'SET hoge piyo' 'GET hoge'",
}

// Execute runs the command tree; main's sole responsibility is
// reporting its error.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "127.0.0.1", "RESP2 server host")
	rootCmd.PersistentFlags().IntVar(&port, "port", 6379, "RESP2 server port")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "rotate connection logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&logVerbose, "verbose", false, "log at debug level")
}

// dialOptions resolves this invocation's dialconfig.Options from the
// persistent --host/--port flags, falling through dialconfig's own
// env/default precedence for everything else.
func dialOptions() (dialconfig.Options, error) {
	opts, err := dialconfig.Load(flag.NewFlagSet("resp2cli", flag.ContinueOnError), nil)
	if err != nil {
		return dialconfig.Options{}, fmt.Errorf("loading dial options: %w", err)
	}
	opts.Host = host
	opts.Port = port
	return opts, opts.Validate()
}

// newLogger builds the zap logger shared by a subcommand's session: to
// stderr by default, or through a lumberjack rotating sink when
// --log-file is set, matching the teacher's logger.New (see
// packetd/packetd's logger package, adapted for this module's
// AMBIENT STACK).
func newLogger() (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if logVerbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	var sink zapcore.WriteSyncer
	if logFile != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     7,
			LocalTime:  true,
		})
	} else {
		sink = zapcore.AddSync(os.Stderr)
	}

	core := zapcore.NewCore(encoder, sink, level)
	return zap.New(core), nil
}
