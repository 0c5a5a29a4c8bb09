package proxy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

const (
	// ScriptTimeout bounds one run of the external restart script.
	ScriptTimeout = 30 * time.Second
	// ShutdownSettleDelay gives the service time to actually exit after a
	// shutdown request before polling begins.
	ShutdownSettleDelay = 2 * time.Second
	// RestartPollBudget is the total time the service gets to come back up.
	RestartPollBudget = 15 * time.Second
	// RestartPollInterval is the delay between reachability probes.
	RestartPollInterval = 1 * time.Second
	// RestartReadyDelay gives a freshly restarted service time to finish
	// initializing before its status is read.
	RestartReadyDelay = 1 * time.Second
)

// RestartOutcome reports the result of a restart attempt. A failed outcome
// is terminal for that invocation; it carries no retry state.
type RestartOutcome struct {
	Success bool
	Message string
}

// Restart restarts the service. When a restart script is configured and
// executable it is authoritative: its exit status decides the outcome and
// the protocol fallback is never attempted. Otherwise the service is asked
// to shut down and the controller polls for it to come back up. Every path
// terminates in a structured outcome; ctx cancellation becomes a failure
// outcome, never a panic or an error return. Callers should expect this to
// block for up to the script ceiling or the settle-plus-poll budget.
func (c *Controller) Restart(ctx context.Context) RestartOutcome {
	c.logger.Info("restarting service")

	if c.scriptUsable() {
		return c.restartViaScript(ctx)
	}
	return c.restartViaShutdown(ctx)
}

// scriptUsable reports whether the restart script exists and is executable.
func (c *Controller) scriptUsable() bool {
	if c.restartScript == "" {
		return false
	}
	info, err := os.Stat(c.restartScript)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode().Perm()&0111 != 0
}

func (c *Controller) restartViaScript(ctx context.Context) RestartOutcome {
	c.logger.Info("using restart script", "path", c.restartScript)

	runCtx, cancel := context.WithTimeout(ctx, c.scriptTimeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, c.restartScript)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		return RestartOutcome{Message: ctx.Err().Error()}
	}
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		c.logger.Error("restart script timed out", "path", c.restartScript)
		return RestartOutcome{Message: "Restart script timed out"}
	}
	if err != nil {
		msg := stderr.String()
		if msg == "" {
			msg = err.Error()
		}
		c.logger.Error("restart script failed", "error", err, "stderr", stderr.String())
		return RestartOutcome{Message: "Restart script failed: " + msg}
	}

	c.logger.Info("service restarted via script")
	return RestartOutcome{Success: true, Message: "Service restarted successfully"}
}

func (c *Controller) restartViaShutdown(ctx context.Context) RestartOutcome {
	c.logger.Info("using shutdown and poll")

	c.RequestShutdown()

	// Let the service actually exit before the first probe.
	if !sleepCtx(ctx, c.settleDelay) {
		return RestartOutcome{Message: ctx.Err().Error()}
	}

	deadline := time.Now().Add(c.pollBudget)
	for time.Now().Before(deadline) {
		if c.IsReachable() {
			// Grace period for the restarted service to finish initializing.
			if !sleepCtx(ctx, c.readyDelay) {
				return RestartOutcome{Message: ctx.Err().Error()}
			}
			status := c.GetStatus()
			c.logger.Info("service is back", "status", string(status))
			return RestartOutcome{
				Success: true,
				Message: fmt.Sprintf("Service restarted (status: %s)", status),
			}
		}
		if !sleepCtx(ctx, c.pollInterval) {
			return RestartOutcome{Message: ctx.Err().Error()}
		}
	}

	c.logger.Warn("service did not restart within poll budget")
	return RestartOutcome{Message: "Service did not restart within timeout"}
}

// sleepCtx sleeps for d or until ctx is done; reports false when cancelled.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
