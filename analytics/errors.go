package analytics

import "fmt"

// ValidationError reports a malformed analysis request. It is raised before
// any fetch happens and maps to a client-error response.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// DataAccessError wraps a failure from the underlying store. It propagates
// unmodified to the caller - no retries, no partial results.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("data access failed during %s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}
