package exitcode

import "fmt"

// ExitError carries a run outcome through ordinary error returns up to the
// single top-level handler that terminates the process. It replaces non-local
// exits: every terminal path of a run produces exactly one of these (or nil
// for success).
type ExitError struct {
	Code    int
	Message string
}

// Error returns the outcome message, or a generic description when none was set.
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Fail builds an ExitError for a symbolic outcome with a user-facing message.
func Fail(sym Symbol, format string, args ...any) *ExitError {
	return &ExitError{Code: Translate(sym), Message: fmt.Sprintf(format, args...)}
}

// Status builds an ExitError that passes an engine exit status through
// verbatim. It carries no message; the engine already reported its own.
func Status(code int) *ExitError {
	return &ExitError{Code: code}
}
