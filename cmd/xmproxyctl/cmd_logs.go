package main

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

type LogsCmd struct {
	Follow bool `short:"f" help:"Follow log output in real-time (tail -f)"`
}

func (c *LogsCmd) Run(cli *CLI) error {
	paths, err := getPaths()
	if err != nil {
		return err
	}

	// Check if log file exists
	if _, err := os.Stat(paths.LogFile); os.IsNotExist(err) {
		return fmt.Errorf("log file not found: %s\nHint: Run a command against the service first", paths.LogFile)
	}

	// Build tail arguments
	args := []string{"tail"}
	if c.Follow {
		args = append(args, "-f")
	}
	args = append(args, paths.LogFile)

	// Find tail binary in PATH
	tailPath, err := exec.LookPath("tail")
	if err != nil {
		return fmt.Errorf("tail command not found in PATH (install coreutils or similar)")
	}

	// Replace current process with tail
	return syscall.Exec(tailPath, args, os.Environ())
}
