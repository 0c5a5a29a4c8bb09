package main

import (
	"fmt"
	"io"

	"github.com/xmproxy/xmproxyctl/internal/config"
	"github.com/xmproxy/xmproxyctl/internal/logging"
	"github.com/xmproxy/xmproxyctl/internal/proxy"
)

// app bundles everything a command needs: loaded settings, user paths and a
// controller whose logs go to the rotating client log.
type app struct {
	settings *config.Settings
	paths    *config.Paths
	ctl      *proxy.Controller
	logClose io.Closer
}

func (a *app) Close() error {
	return a.logClose.Close()
}

func getPaths() (*config.Paths, error) {
	paths, err := config.GetPaths()
	if err != nil {
		return nil, fmt.Errorf("get paths: %w", err)
	}
	return paths, nil
}

// loadSettings loads settings from the --config path, or from the default
// location when none was given.
func loadSettings(cli *CLI) (*config.Settings, error) {
	path := cli.Config
	if path == "" {
		paths, err := getPaths()
		if err != nil {
			return nil, err
		}
		path = paths.Settings
	}

	settings, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}

// newApp builds the controller for a command invocation.
func newApp(cli *CLI) (*app, error) {
	settings, err := loadSettings(cli)
	if err != nil {
		return nil, err
	}

	paths, err := getPaths()
	if err != nil {
		return nil, err
	}
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("create directories: %w", err)
	}

	logger, closer := logging.Setup(paths.LogFile)
	ctl := proxy.New(settings.Host, settings.Port, settings.Timeout(), logger)
	ctl.SetRestartScript(settings.RestartScript)

	return &app{
		settings: settings,
		paths:    paths,
		ctl:      ctl,
		logClose: closer,
	}, nil
}

// stringVal extracts a string value from a map, returning empty string if not found.
func stringVal(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}
