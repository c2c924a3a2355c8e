package assistant

import "errors"

var (
	// ErrQuestionRequired is returned when the question is empty.
	ErrQuestionRequired = errors.New("question cannot be empty")
	// ErrMessageRequired is returned when the chat message is empty.
	ErrMessageRequired = errors.New("message cannot be empty")
	// ErrInputTooLong is returned when a question or message exceeds the limit.
	ErrInputTooLong = errors.New("input exceeds the maximum length")
	// ErrTooManyDocuments is returned when a Q&A request carries too many documents.
	ErrTooManyDocuments = errors.New("too many documents")
	// ErrProviderDisabled is returned by providers that have no backing model.
	ErrProviderDisabled = errors.New("assistant provider is disabled")
	// ErrEmptyCompletion is returned when a provider replies with no text.
	ErrEmptyCompletion = errors.New("assistant provider returned an empty reply")
)

// IsValidationError reports whether err was caused by caller input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrQuestionRequired) ||
		errors.Is(err, ErrMessageRequired) ||
		errors.Is(err, ErrInputTooLong) ||
		errors.Is(err, ErrTooManyDocuments)
}
