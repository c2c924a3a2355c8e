package fetcher

import "errors"

// The summarize service reports all of these as a failed fetch; the
// distinction is kept for logs and for the breaker's failure accounting.
var (
	ErrInvalidURL        = errors.New("invalid url")
	ErrPrivateIP         = errors.New("url targets a non-public address")
	ErrTooManyRedirects  = errors.New("too many redirects")
	ErrBodyTooLarge      = errors.New("page exceeds size limit")
	ErrTimeout           = errors.New("page fetch timed out")
	ErrReadabilityFailed = errors.New("no readable content on page")
)
