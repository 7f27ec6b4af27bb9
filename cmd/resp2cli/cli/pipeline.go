package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haldane-io/resp2/pkg/conn"
	"github.com/haldane-io/resp2/pkg/proto"
	"github.com/haldane-io/resp2/pkg/session"
)

var pipelineCmd = &cobra.Command{
	Use:   "pipeline <command...>",
	Short: "Write several commands back-to-back and print their replies in order",
	Long: "Each argument is one whitespace-separated command line, e.g.\n" +
		`  resp2cli pipeline "SET hoge piyo" "GET hoge"` + "\n" +
		"pipeline demonstrates session.Conn.ExecutePipeline: every request is\n" +
		"written before any reply is read, and replies come back in request order.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := dialOptions()
		if err != nil {
			return err
		}
		logger, err := newLogger()
		if err != nil {
			return err
		}

		requests := make([]proto.Request, len(args))
		for i, line := range args {
			fields := strings.Fields(line)
			if len(fields) == 0 {
				return fmt.Errorf("empty command at position %d", i)
			}
			textArgs := make([]proto.Argument, len(fields)-1)
			for j, f := range fields[1:] {
				textArgs[j] = proto.TextArg(f)
			}
			requests[i] = proto.NewRequest(strings.ToUpper(fields[0]), nil, textArgs)
		}

		replies, err := session.WithSession(context.Background(),
			func(ctx context.Context) (conn.Handle, error) { return conn.Dial(ctx, opts) },
			session.Options{Logger: logger},
			func(c *session.Conn) ([]proto.Reply, error) {
				return c.ExecutePipeline(requests)
			})
		if err != nil {
			return err
		}

		for i, reply := range replies {
			v, err := proto.DecodeReply(reply)
			if err != nil {
				return fmt.Errorf("decoding reply %d: %w", i, err)
			}
			fmt.Printf("%d) %s\n", i+1, formatValue(v))
		}
		return nil
	},
}

func formatValue(v proto.Value) string {
	switch v.Kind {
	case proto.KindNull:
		return "(nil)"
	case proto.KindError:
		return "(error) " + v.Err
	case proto.KindInt:
		return fmt.Sprintf("(integer) %d", v.Int)
	case proto.KindList:
		parts := make([]string, len(v.List))
		for i, child := range v.List {
			parts[i] = formatValue(child)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return v.Text
	}
}

func init() {
	rootCmd.AddCommand(pipelineCmd)
}
