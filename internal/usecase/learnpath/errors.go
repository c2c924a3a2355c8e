package learnpath

import "errors"

var (
	// ErrGoalRequired is returned when the goal is empty after trimming.
	ErrGoalRequired = errors.New("goal is required")
	// ErrGoalTooLong is returned when the goal exceeds MaxGoalChars.
	ErrGoalTooLong = errors.New("goal is too long")
	// ErrInvalidLevel is returned for a level other than beginner, intermediate or advanced.
	ErrInvalidLevel = errors.New("level must be beginner, intermediate or advanced")
	// ErrInvalidTimeCommitment is returned for an unknown hours-per-week bucket.
	ErrInvalidTimeCommitment = errors.New("timeCommitment must be one of 1-2, 3-5, 6-10, 10+")
)

// IsValidationError reports whether err was caused by caller input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrGoalRequired) ||
		errors.Is(err, ErrGoalTooLong) ||
		errors.Is(err, ErrInvalidLevel) ||
		errors.Is(err, ErrInvalidTimeCommitment)
}
