// Package main is the chat-presence binary.
//
//	chat-presence serve          start the presence node
//	chat-presence inspect        dump the Badger store as a table
//	chat-presence token <user>   issue a bearer token for local testing
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Populated by ldflags during build.
var version = "dev"

func main() {
	code, err := execute(context.Background(), os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Presence node terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// execute runs the command tree and maps its outcome to an exit code.
// Every defer of the executed command (database cleanup first of all) runs before the process exits.
func execute(ctx context.Context, args []string) (int, error) {
	code := exitOK
	root := buildRootCmd(&code)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		if code == exitOK {
			code = exitConfig
		}
		return code, err
	}
	return code, nil
}

func buildRootCmd(code *int) *cobra.Command {
	serve := buildServeCmd(code)
	root := &cobra.Command{
		Use:     "chat-presence",
		Short:   "Real-time presence and notification fan-out",
		Version: version,
		// Without subcommand the node is started
		RunE:          serve.RunE,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serve, buildInspectCmd(), buildTokenCmd())
	return root
}
