package main

import (
	"github.com/xmproxy/xmproxyctl/internal/proxy"
	"github.com/xmproxy/xmproxyctl/internal/ui"
)

type ConnectCmd struct{}

func (c *ConnectCmd) Run(cli *CLI) error {
	app, err := newApp(cli)
	if err != nil {
		return err
	}
	defer app.Close()

	if !app.ctl.IsReachable() {
		return errServiceUnreachable()
	}

	if _, err := app.ctl.SetStatus(proxy.StatusOnline); err != nil {
		return errRPCFailed(err)
	}

	status := app.ctl.GetStatus()
	ui.PrintSuccess("Connect command sent (status: " + string(status) + ")")
	return nil
}
