// Command resp2cli is a runnable demonstration of the resp2 client
// library: one subcommand per orchestrator operation (GET, SET, PING,
// a pipelined batch, and an interactive REPL), built the way
// cmd/client-example demonstrated the teacher's client SDK.
package main

import (
	"fmt"
	"os"

	"github.com/haldane-io/resp2/cmd/resp2cli/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
