package summarize

import "errors"

var (
	// ErrTextRequired is returned when a request carries neither text nor a URL.
	ErrTextRequired = errors.New("text or url is required")
	// ErrTextTooShort is returned when the trimmed input is below the minimum length.
	ErrTextTooShort = errors.New("text must be at least 50 characters")
	// ErrTextTooLong is returned when the trimmed input exceeds the maximum length.
	ErrTextTooLong = errors.New("text exceeds the maximum length")
	// ErrBatchEmpty is returned when a batch request has no documents.
	ErrBatchEmpty = errors.New("batch must contain at least one document")
	// ErrBatchTooLarge is returned when a batch request exceeds the configured size.
	ErrBatchTooLarge = errors.New("batch contains too many documents")
	// ErrContentFetchDisabled is returned for URL input when no fetcher is configured.
	ErrContentFetchDisabled = errors.New("url summarization is disabled")
	// ErrContentFetch wraps failures while fetching a URL for summarization.
	ErrContentFetch = errors.New("failed to fetch content from url")
	// ErrSuperseded is returned by Job.Wait when a newer job for the same
	// session was submitted before the result was collected.
	ErrSuperseded = errors.New("request superseded by a newer request")
)

// IsValidationError reports whether err is a caller input error rather than a
// computation failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTextRequired) ||
		errors.Is(err, ErrTextTooShort) ||
		errors.Is(err, ErrTextTooLong) ||
		errors.Is(err, ErrBatchEmpty) ||
		errors.Is(err, ErrBatchTooLarge)
}
