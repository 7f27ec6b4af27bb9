package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haldane-io/resp2/pkg/conn"
	"github.com/haldane-io/resp2/pkg/proto"
	"github.com/haldane-io/resp2/pkg/session"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Open one connection and run commands read from stdin until EOF",
	Long: "repl demonstrates a single session.Conn driving many sequential\n" +
		"Execute calls: one connection is opened for the whole interactive\n" +
		"loop and closed once on exit, per with_session's close contract.",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := dialOptions()
		if err != nil {
			return err
		}
		logger, err := newLogger()
		if err != nil {
			return err
		}

		_, err = session.WithSession(context.Background(),
			func(ctx context.Context) (conn.Handle, error) { return conn.Dial(ctx, opts) },
			session.Options{Logger: logger},
			func(c *session.Conn) (struct{}, error) {
				return struct{}{}, runREPL(c, cmd.InOrStdin(), cmd.OutOrStdout())
			})
		return err
	},
}

func runREPL(c *session.Conn, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "resp2> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}

		fields := strings.Fields(line)
		textArgs := make([]proto.Argument, len(fields)-1)
		for i, f := range fields[1:] {
			textArgs[i] = proto.TextArg(f)
		}
		req := proto.NewRequest(strings.ToUpper(fields[0]), nil, textArgs)

		reply, err := c.Execute(req)
		if err != nil {
			fmt.Fprintf(out, "(error) %v\n", err)
			continue
		}
		v, err := proto.DecodeReply(reply)
		if err != nil {
			fmt.Fprintf(out, "(error) %v\n", err)
			continue
		}
		fmt.Fprintln(out, formatValue(v))
	}
}

func init() {
	rootCmd.AddCommand(replCmd)
}
