package scraper

import (
	"errors"
	"fmt"
)

// StatusError reports a non-success HTTP status from the booking site.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.StatusCode)
}

// LabelError reports page content that does not match the expected schedule
// layout, such as an undecodable court header or a malformed time label.
// It means the site changed, not that the network hiccuped.
type LabelError struct {
	Label string
	Err   error
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("bad schedule label %q: %v", e.Label, e.Err)
}

func (e *LabelError) Unwrap() error {
	return e.Err
}

// Retryable reports whether a tick that failed with err is worth retrying
// on the next tick. Transport and status failures are transient; label
// failures would recur on every future tick.
func Retryable(err error) bool {
	var labelErr *LabelError
	return !errors.As(err, &labelErr)
}
