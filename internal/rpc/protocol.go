// Package rpc implements the JSON-RPC 2.0 over TCP protocol spoken by
// xmproxysrv. Frames are terminated by a single zero byte rather than
// newlines, and every call uses its own connection.
package rpc

import "encoding/json"

// Version is the protocol version marker sent with every request.
const Version = "2.0"

// Request represents a JSON-RPC request to the service. Params is omitted
// from the serialized form when empty; the service treats a present-but-empty
// params object differently from an absent one.
type Request struct {
	JSONRPC string         `json:"jsonrpc"`
	Method  string         `json:"method"`
	Params  map[string]any `json:"params,omitempty"`
	ID      int64          `json:"id"`
}

// Response represents a JSON-RPC response. Exactly one of Result or Error is
// present in a well-formed response. Error is kept raw so that its presence
// can be distinguished from an empty object.
type Response struct {
	ID     int64            `json:"id"`
	Result map[string]any   `json:"result,omitempty"`
	Error  *json.RawMessage `json:"error,omitempty"`
}

// RemoteError is the error object carried by a failed response.
type RemoteError struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// Method names understood by the service.
const (
	MethodGetOnlineStatus = "get_online_status"
	MethodSetOnlineStatus = "set_online_status"
	MethodShutdown        = "shutdown"
	MethodSendMessage     = "send_message"
	MethodGetInboxCount   = "get_inbox_count"
	MethodGetInboxMessage = "get_inbox_message"
	MethodEmptyInbox      = "empty_inbox"
)
