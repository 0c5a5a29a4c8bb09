// Package proxy drives the xmproxysrv lifecycle: status reporting, online
// state changes, messaging and restart orchestration on top of the rpc
// client.
package proxy

import (
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/xmproxy/xmproxyctl/internal/rpc"
)

// ProbeTimeout bounds the raw reachability probe.
const ProbeTimeout = 2 * time.Second

// Controller exposes the service control surface consumed by the CLI.
type Controller struct {
	client *rpc.Client
	logger *slog.Logger

	restartScript string

	probeTimeout  time.Duration
	scriptTimeout time.Duration
	settleDelay   time.Duration
	pollBudget    time.Duration
	pollInterval  time.Duration
	readyDelay    time.Duration
}

// New creates a controller for the service at host:port. timeout bounds
// each RPC exchange; a nil logger discards log output.
func New(host string, port int, timeout time.Duration, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{
		client:        rpc.New(host, port, timeout),
		logger:        logger,
		probeTimeout:  ProbeTimeout,
		scriptTimeout: ScriptTimeout,
		settleDelay:   ShutdownSettleDelay,
		pollBudget:    RestartPollBudget,
		pollInterval:  RestartPollInterval,
		readyDelay:    RestartReadyDelay,
	}
}

// SetRestartScript configures the external recovery program tried before
// the protocol-level restart fallback.
func (c *Controller) SetRestartScript(path string) {
	c.restartScript = path
}

// IsReachable reports whether the service accepts TCP connections. This is
// a bare connect/disconnect probe; no protocol message is exchanged and no
// failure ever escapes.
func (c *Controller) IsReachable() bool {
	conn, err := net.DialTimeout("tcp", c.client.Addr(), c.probeTimeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// GetStatus returns the XMPP connection status for display. It never fails:
// an unreachable or erroring service maps to disconnected, anything else
// unexpected to error.
func (c *Controller) GetStatus() Status {
	if !c.IsReachable() {
		return StatusDisconnected
	}

	result, err := c.client.Call(rpc.MethodGetOnlineStatus, nil)
	if err != nil {
		if rpc.IsError(err) {
			c.logger.Warn("failed to get status", "error", err)
			return StatusDisconnected
		}
		c.logger.Error("unexpected error getting status", "error", err)
		return StatusError
	}

	s, ok := result["status"].(string)
	if !ok {
		return StatusUnknown
	}
	return Status(s)
}

// SetStatus asks the service to bring the XMPP connection online or take it
// offline. Failures are returned verbatim so the caller can surface exactly
// what went wrong.
func (c *Controller) SetStatus(target Status) (map[string]any, error) {
	return c.client.Call(rpc.MethodSetOnlineStatus, map[string]any{"status": string(target)})
}

// RequestShutdown asks the service to exit. Failures are expected here (the
// service may drop the connection before replying) and are swallowed; a nil
// result means no reply arrived.
func (c *Controller) RequestShutdown() map[string]any {
	result, err := c.client.Call(rpc.MethodShutdown, nil)
	if err != nil {
		c.logger.Warn("shutdown request failed", "error", err)
		return nil
	}
	return result
}

// SendMessage sends an XMPP message to the given JID through the service.
func (c *Controller) SendMessage(to, msg string) (map[string]any, error) {
	return c.client.Call(rpc.MethodSendMessage, map[string]any{"to": to, "msg": msg})
}

// InboxCount returns the number of messages waiting in the service inbox.
func (c *Controller) InboxCount() (int, error) {
	result, err := c.client.Call(rpc.MethodGetInboxCount, nil)
	if err != nil {
		return 0, err
	}
	count, ok := result["count"].(float64)
	if !ok {
		return 0, nil
	}
	return int(count), nil
}

// InboxMessage returns the inbox message at index (0-based).
func (c *Controller) InboxMessage(index int) (map[string]any, error) {
	return c.client.Call(rpc.MethodGetInboxMessage, map[string]any{"index": index})
}

// EmptyInbox removes all messages from the service inbox.
func (c *Controller) EmptyInbox() (map[string]any, error) {
	return c.client.Call(rpc.MethodEmptyInbox, nil)
}
