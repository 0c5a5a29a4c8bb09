package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/willabides/kongplete"
)

var (
	version = "dev"
	commit  = "none"
)

type CLI struct {
	Config string `help:"Path to the settings file" type:"path" predictor:"file"`

	Status     StatusCmd     `cmd:"" help:"Show service and XMPP connection status"`
	Connect    ConnectCmd    `cmd:"" help:"Bring the XMPP connection online"`
	Disconnect DisconnectCmd `cmd:"" help:"Take the XMPP connection offline"`
	Restart    RestartCmd    `cmd:"" help:"Restart the proxy service"`
	Shutdown   ShutdownCmd   `cmd:"" help:"Ask the proxy service to shut down"`
	Send       SendCmd       `cmd:"" help:"Send an XMPP message"`
	Inbox      InboxCmd      `cmd:"" help:"Inspect the service inbox"`
	Logs       LogsCmd       `cmd:"" help:"Show client logs"`
	Version    VersionCmd    `cmd:"" help:"Show version"`

	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

func main() {
	cli := CLI{}
	parser := kong.Must(&cli,
		kong.Name("xmproxyctl"),
		kong.Description("Control CLI for the xmproxy JSON-RPC service"),
		kong.UsageOnError(),
	)

	kongplete.Complete(parser, completionOptions()...)

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := ctx.Run(&cli); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintf(os.Stderr, "Error: %s\n", exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
}
