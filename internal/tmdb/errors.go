package tmdb

import "fmt"

// StatusError reports a non-2xx response from the provider. Handlers
// surface it as an upstream failure rather than a local one.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e == nil {
		return "tmdb status error"
	}
	return fmt.Sprintf("tmdb: status %d from %s", e.StatusCode, e.URL)
}
