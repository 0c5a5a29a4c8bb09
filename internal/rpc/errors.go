package rpc

import (
	"errors"
	"fmt"
)

// Kind classifies a transport failure. The set is closed; callers above the
// rpc package only check whether an error is an *Error at all, but log
// messages keep the kind for diagnosis.
type Kind string

const (
	// KindConnect covers dial failures and socket-level read/write errors.
	KindConnect Kind = "connect"
	// KindTimeout means no response bytes arrived within the timeout.
	KindTimeout Kind = "timeout"
	// KindMalformed means a payload arrived but could not be parsed.
	KindMalformed Kind = "malformed"
	// KindRemote means a well-formed response carried an error field.
	KindRemote Kind = "remote"
	// KindEmpty means the exchange completed with an empty payload.
	KindEmpty Kind = "empty"
)

// Error is the unified error returned by Client.Call.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// IsError reports whether err is a transport-level *Error.
func IsError(err error) bool {
	var re *Error
	return errors.As(err, &re)
}

func newError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}
