package git

import "fmt"

// RequestError is returned when the repository listing request fails, either
// with a non-success HTTP status or before any response was received
// (StatusCode is 0 then).
type RequestError struct {
	Organization string
	StatusCode   int
	Err          error
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("failed to list repositories of %q: %v", e.Organization, e.Err)
	}
	return fmt.Sprintf("failed to list repositories of %q: status %d: %v",
		e.Organization, e.StatusCode, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
