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

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "GET a key and print its decoded value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := dialOptions()
		if err != nil {
			return err
		}
		logger, err := newLogger()
		if err != nil {
			return err
		}

		value, err := session.WithSession(context.Background(),
			func(ctx context.Context) (conn.Handle, error) { return conn.Dial(ctx, opts) },
			session.Options{Logger: logger},
			func(c *session.Conn) (proto.Value, error) {
				reply, err := c.Execute(commands.GET(args[0]))
				if err != nil {
					return proto.Value{}, err
				}
				return proto.DecodeReply(reply)
			})
		if err != nil {
			return err
		}

		switch value.Kind {
		case proto.KindNull:
			fmt.Println("(nil)")
		case proto.KindError:
			fmt.Printf("(error) %s\n", value.Err)
		default:
			fmt.Println(value.Text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
