package main

import "github.com/xmproxy/xmproxyctl/internal/ui"

type SendCmd struct {
	To      string `arg:"" help:"Recipient JID"`
	Message string `arg:"" help:"Message body"`
}

func (c *SendCmd) Run(cli *CLI) error {
	app, err := newApp(cli)
	if err != nil {
		return err
	}
	defer app.Close()

	if !app.ctl.IsReachable() {
		return errServiceUnreachable()
	}

	if _, err := app.ctl.SendMessage(c.To, c.Message); err != nil {
		return errRPCFailed(err)
	}

	ui.PrintSuccess("Message sent to " + c.To)
	return nil
}
