// Package config handles xmproxyctl settings and path configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults matching a stock xmproxysrv install.
const (
	DefaultHost           = "127.0.0.1"
	DefaultPort           = 40005
	DefaultTimeoutSeconds = 5
	DefaultRestartScript  = "/app/jsonrpc-tcp-srv/scripts/restart-xmproxy.sh"
)

// Settings holds the service connection settings.
type Settings struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	RestartScript  string `yaml:"restart_script"`
}

// DefaultSettings returns the stock settings.
func DefaultSettings() *Settings {
	return &Settings{
		Host:           DefaultHost,
		Port:           DefaultPort,
		TimeoutSeconds: DefaultTimeoutSeconds,
		RestartScript:  DefaultRestartScript,
	}
}

// Load reads settings from a YAML file, filling missing or zero fields with
// defaults. A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}

	if s.Host == "" {
		s.Host = DefaultHost
	}
	if s.Port <= 0 {
		s.Port = DefaultPort
	}
	if s.TimeoutSeconds <= 0 {
		s.TimeoutSeconds = DefaultTimeoutSeconds
	}
	return s, nil
}

// Addr returns the host:port of the service.
func (s *Settings) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Timeout returns the per-call RPC timeout.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// Paths holds common paths used by xmproxyctl.
type Paths struct {
	Home     string
	Settings string
	Logs     string
	LogFile  string
}

// GetPaths returns the paths for the current user.
func GetPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	ctlHome := filepath.Join(home, ".xmproxyctl")
	logsDir := filepath.Join(ctlHome, "logs")
	return &Paths{
		Home:     ctlHome,
		Settings: filepath.Join(ctlHome, "config.yaml"),
		Logs:     logsDir,
		LogFile:  filepath.Join(logsDir, "xmproxyctl.log"),
	}, nil
}

// EnsureDirectories creates the required directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Home, p.Logs} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
