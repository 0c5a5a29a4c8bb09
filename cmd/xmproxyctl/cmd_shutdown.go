package main

import "github.com/xmproxy/xmproxyctl/internal/ui"

type ShutdownCmd struct{}

func (c *ShutdownCmd) Run(cli *CLI) error {
	app, err := newApp(cli)
	if err != nil {
		return err
	}
	defer app.Close()

	if !app.ctl.IsReachable() {
		ui.PrintInfo("Service is not running")
		return nil
	}

	// Best effort: the service may drop the connection before replying.
	if result := app.ctl.RequestShutdown(); result != nil {
		ui.PrintSuccess("Shutdown request sent")
	} else {
		ui.PrintInfo("Shutdown requested (no reply from service)")
	}
	return nil
}
