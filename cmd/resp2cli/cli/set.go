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

var (
	setEX int64
	setNX bool
)

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "SET a key to a binary-safe value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := dialOptions()
		if err != nil {
			return err
		}
		logger, err := newLogger()
		if err != nil {
			return err
		}

		var setOpts commands.SetOptions
		if setEX > 0 {
			setOpts.EX = &setEX
		}
		setOpts.NX = setNX

		reply, err := session.WithSession(context.Background(),
			func(ctx context.Context) (conn.Handle, error) { return conn.Dial(ctx, opts) },
			session.Options{Logger: logger},
			func(c *session.Conn) (proto.Reply, error) {
				return c.Execute(commands.SET(args[0], []byte(args[1]), setOpts))
			})
		if err != nil {
			return err
		}

		if reply.Failure() {
			v, _ := proto.DecodeReply(reply)
			return fmt.Errorf("server error: %s", v.Err)
		}
		fmt.Println("OK")
		return nil
	},
}

func init() {
	setCmd.Flags().Int64Var(&setEX, "ex", 0, "expire after this many seconds")
	setCmd.Flags().BoolVar(&setNX, "nx", false, "only set if the key does not already exist")
	rootCmd.AddCommand(setCmd)
}
