package rpc

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"strconv"
	"sync/atomic"
	"time"
)

const (
	// DefaultTimeout bounds connect plus one request/response exchange.
	DefaultTimeout = 5 * time.Second

	readChunkSize = 4096
)

// sentinel is the frame terminator. The service delimits messages with a
// single zero byte, not newlines.
const sentinel = 0x00

// Client is a JSON-RPC client for the proxy service. Every call dials a
// fresh connection: a hung or half-open connection from an earlier call can
// never poison a later one, which matters because the service may be
// restarted mid-session. Safe for concurrent use; the id counter is the only
// shared state.
type Client struct {
	addr    string
	timeout time.Duration
	seq     atomic.Int64
}

// New creates a client for the service at host:port. A non-positive timeout
// falls back to DefaultTimeout.
func New(host string, port int, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		addr:    net.JoinHostPort(host, strconv.Itoa(port)),
		timeout: timeout,
	}
}

// Addr returns the host:port the client dials.
func (c *Client) Addr() string { return c.addr }

// nextID returns the next request id. Ids start at 0 and increase by one per
// call for the lifetime of the client.
func (c *Client) nextID() int64 {
	return c.seq.Add(1) - 1
}

// Call performs one request/response exchange and returns the result object.
// A missing result in a successful response yields an empty map. All failure
// modes surface as *Error.
func (c *Client) Call(method string, params map[string]any) (map[string]any, error) {
	req := Request{JSONRPC: Version, Method: method, ID: c.nextID()}
	if len(params) > 0 {
		req.Params = params
	}

	frame, err := json.Marshal(req)
	if err != nil {
		return nil, newError(KindMalformed, "marshal request", err)
	}
	frame = append(frame, sentinel)

	conn, err := net.DialTimeout("tcp", c.addr, c.timeout)
	if err != nil {
		return nil, newError(KindConnect, "connect to service", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(c.timeout))

	if _, err := conn.Write(frame); err != nil {
		return nil, newError(KindConnect, "write request", err)
	}

	payload, err := c.readFrame(conn)
	if err != nil {
		return nil, err
	}
	return parseResponse(payload)
}

// readFrame accumulates response bytes until the sentinel shows up, the
// buffer parses as complete JSON (some service builds omit the terminator),
// or the peer closes the connection. A deadline with bytes already buffered
// keeps the partial payload; with nothing buffered it is a timeout failure.
// The iteration count is deliberately unbounded: a remote that keeps sending
// unterminated non-JSON bytes is only ever cut off by the socket deadline.
func (c *Client) readFrame(conn net.Conn) ([]byte, error) {
	var payload []byte
	chunk := make([]byte, readChunkSize)

	for {
		n, err := conn.Read(chunk)
		payload = append(payload, chunk[:n]...)

		if i := bytes.IndexByte(payload, sentinel); i >= 0 {
			payload = payload[:i]
			break
		}
		if len(payload) > 0 && json.Valid(payload) {
			break
		}

		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				if len(payload) > 0 {
					break
				}
				return nil, newError(KindTimeout, "read response", err)
			}
			if err == io.EOF {
				break
			}
			return nil, newError(KindConnect, "read response", err)
		}
	}

	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return nil, newError(KindEmpty, "empty response from service", nil)
	}
	return payload, nil
}

// parseResponse decodes the final payload and splits the result/error union.
func parseResponse(payload []byte) (map[string]any, error) {
	var resp Response
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, newError(KindMalformed, "invalid response from service", err)
	}
	if resp.Error != nil {
		return nil, newError(KindRemote, "service error: "+remoteErrorMessage(*resp.Error), nil)
	}
	if resp.Result == nil {
		return map[string]any{}, nil
	}
	return resp.Result, nil
}

// remoteErrorMessage extracts error.message, falling back to the raw error
// structure when the field is missing.
func remoteErrorMessage(raw json.RawMessage) string {
	var re RemoteError
	if err := json.Unmarshal(raw, &re); err == nil && re.Message != "" {
		return re.Message
	}
	return string(raw)
}
