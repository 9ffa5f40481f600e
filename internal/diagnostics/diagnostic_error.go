package diagnostics

import (
	"fmt"

	"github.com/sparkfront/semfront/internal/source"
)

// DiagnosticError is one reported problem. It implements error so
// callers that only need a Go error value can still use one.
type DiagnosticError struct {
	Code     ErrorCode
	Severity Severity
	Message  string
	Location *source.Location
}

func (e *DiagnosticError) Error() string {
	if e.Location != nil {
		return fmt.Sprintf("%s: %s [%s]", e.Location.String(), e.Message, e.Code)
	}
	return fmt.Sprintf("%s [%s]", e.Message, e.Code)
}
