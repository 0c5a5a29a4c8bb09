package main

// Exit codes for CLI commands.
const (
	exitSuccess            = 0
	exitError              = 1
	exitServiceUnreachable = 2
	exitRPCFailed          = 3
	exitRestartFailed      = 4
)

// ExitError represents an error that should cause the process to exit with a specific code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func errServiceUnreachable() *ExitError {
	return &ExitError{
		Code:    exitServiceUnreachable,
		Message: "Service is not reachable.\nCheck that xmproxysrv is running.",
	}
}

func errRPCFailed(err error) *ExitError {
	return &ExitError{
		Code:    exitRPCFailed,
		Message: err.Error(),
	}
}

func errRestartFailed(message string) *ExitError {
	return &ExitError{
		Code:    exitRestartFailed,
		Message: message,
	}
}
