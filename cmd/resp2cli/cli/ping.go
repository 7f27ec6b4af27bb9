package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haldane-io/resp2/pkg/commands"
	"github.com/haldane-io/resp2/pkg/conn"
	"github.com/haldane-io/resp2/pkg/proto"
	"github.com/haldane-io/resp2/pkg/session"
)

var pingCmd = &cobra.Command{
	Use:   "ping [message]",
	Short: "PING the server, optionally echoing a message",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := dialOptions()
		if err != nil {
			return err
		}
		logger, err := newLogger()
		if err != nil {
			return err
		}

		var message []byte
		if len(args) == 1 {
			message = []byte(args[0])
		}

		value, err := session.WithSession(context.Background(),
			func(ctx context.Context) (conn.Handle, error) { return conn.Dial(ctx, opts) },
			session.Options{Logger: logger},
			func(c *session.Conn) (proto.Value, error) {
				reply, err := c.Execute(commands.PING(message))
				if err != nil {
					return proto.Value{}, err
				}
				return proto.DecodeReply(reply)
			})
		if err != nil {
			return err
		}
		fmt.Println(value.Text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
