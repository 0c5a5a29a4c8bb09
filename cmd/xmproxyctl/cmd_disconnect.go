package main

import (
	"github.com/xmproxy/xmproxyctl/internal/proxy"
	"github.com/xmproxy/xmproxyctl/internal/ui"
)

type DisconnectCmd struct{}

func (c *DisconnectCmd) Run(cli *CLI) error {
	app, err := newApp(cli)
	if err != nil {
		return err
	}
	defer app.Close()

	if !app.ctl.IsReachable() {
		return errServiceUnreachable()
	}

	if _, err := app.ctl.SetStatus(proxy.StatusOffline); err != nil {
		return errRPCFailed(err)
	}

	status := app.ctl.GetStatus()
	ui.PrintSuccess("Disconnect command sent (status: " + string(status) + ")")
	return nil
}
