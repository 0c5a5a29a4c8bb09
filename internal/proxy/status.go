package proxy

// Status is the XMPP connection status reported for display. The service
// itself only ever reports online, offline or unknown; disconnected and
// error are synthesized locally when the service is unreachable or returns
// something unusable.
type Status string

const (
	StatusOnline       Status = "online"
	StatusOffline      Status = "offline"
	StatusUnknown      Status = "unknown"
	StatusDisconnected Status = "disconnected"
	StatusError        Status = "error"
)
