package corpus

import "fmt"

// UnavailableError indicates the job corpus file is missing or malformed.
// This is fatal at startup: without a corpus there is nothing to match
// against, so the process must not begin accepting requests.
type UnavailableError struct {
	Path    string
	Message string
	Cause   error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job corpus unavailable (%s): %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("job corpus unavailable (%s): %s", e.Path, e.Message)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}
