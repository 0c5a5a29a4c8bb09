package main

import "github.com/xmproxy/xmproxyctl/internal/ui"

type StatusCmd struct{}

func (c *StatusCmd) Run(cli *CLI) error {
	app, err := newApp(cli)
	if err != nil {
		return err
	}
	defer app.Close()

	status := app.ctl.GetStatus()
	ui.PrintStatus(string(status), app.settings.Addr(), app.paths.LogFile)
	return nil
}
