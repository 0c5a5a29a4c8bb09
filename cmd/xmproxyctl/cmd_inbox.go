package main

import "github.com/xmproxy/xmproxyctl/internal/ui"

type InboxCmd struct {
	Count InboxCountCmd `cmd:"" default:"1" help:"Show how many messages are waiting"`
	Show  InboxShowCmd  `cmd:"" help:"Show a single inbox message"`
	Clear InboxClearCmd `cmd:"" help:"Remove all messages from the inbox"`
}

type InboxCountCmd struct{}

func (c *InboxCountCmd) Run(cli *CLI) error {
	app, err := newApp(cli)
	if err != nil {
		return err
	}
	defer app.Close()

	if !app.ctl.IsReachable() {
		return errServiceUnreachable()
	}

	count, err := app.ctl.InboxCount()
	if err != nil {
		return errRPCFailed(err)
	}

	ui.PrintInboxCount(count)
	return nil
}

type InboxShowCmd struct {
	Index int `arg:"" help:"Message index (0-based)"`
}

func (c *InboxShowCmd) Run(cli *CLI) error {
	app, err := newApp(cli)
	if err != nil {
		return err
	}
	defer app.Close()

	if !app.ctl.IsReachable() {
		return errServiceUnreachable()
	}

	result, err := app.ctl.InboxMessage(c.Index)
	if err != nil {
		return errRPCFailed(err)
	}

	ui.PrintInboxMessage(c.Index, stringVal(result, "from"), stringVal(result, "msg"))
	return nil
}

type InboxClearCmd struct{}

func (c *InboxClearCmd) Run(cli *CLI) error {
	app, err := newApp(cli)
	if err != nil {
		return err
	}
	defer app.Close()

	if !app.ctl.IsReachable() {
		return errServiceUnreachable()
	}

	if _, err := app.ctl.EmptyInbox(); err != nil {
		return errRPCFailed(err)
	}

	ui.PrintSuccess("Inbox cleared")
	return nil
}
