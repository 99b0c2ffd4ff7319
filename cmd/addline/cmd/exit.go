package cmd

const (
	exitFailure = 1
	exitUsage   = 2
)

// ExitError is an error that carries a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: exitUsage, Message: err.Error()}
}
