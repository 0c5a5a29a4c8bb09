package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/xmproxy/xmproxyctl/internal/ui"
)

type RestartCmd struct{}

func (c *RestartCmd) Run(cli *CLI) error {
	app, err := newApp(cli)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ui.PrintInfo("Restarting service...")
	outcome := app.ctl.Restart(ctx)
	if !outcome.Success {
		return errRestartFailed(outcome.Message)
	}

	ui.PrintSuccess(outcome.Message)
	return nil
}
