// Package learnpath generates learning roadmaps from a free-text goal.
//
// A goal is matched against keyword templates (web development, data
// science); anything else gets a generic three-phase path built around the
// goal's own wording. The weekly time commitment stretches or compresses the
// durations.
package learnpath

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxGoalChars bounds the goal length in runes.
const MaxGoalChars = 200

// Level is the learner's self-assessed starting point.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// TimeCommitment is an hours-per-week bucket.
type TimeCommitment string

const (
	Hours1To2   TimeCommitment = "1-2"
	Hours3To5   TimeCommitment = "3-5"
	Hours6To10  TimeCommitment = "6-10"
	Hours10Plus TimeCommitment = "10+"
)

// Request describes the path to generate. Empty Level and TimeCommitment
// default to beginner and 3-5 hours.
type Request struct {
	Goal           string
	Level          Level
	TimeCommitment TimeCommitment
}

// normalize trims the goal, applies defaults and validates every field.
func (r Request) normalize() (Request, error) {
	r.Goal = strings.TrimSpace(r.Goal)
	if r.Goal == "" {
		return r, ErrGoalRequired
	}
	if n := utf8.RuneCountInString(r.Goal); n > MaxGoalChars {
		return r, fmt.Errorf("%w: %d characters (max %d)", ErrGoalTooLong, n, MaxGoalChars)
	}

	r.Level = Level(strings.ToLower(strings.TrimSpace(string(r.Level))))
	switch r.Level {
	case "":
		r.Level = LevelBeginner
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
	default:
		return r, fmt.Errorf("%w: %q", ErrInvalidLevel, r.Level)
	}

	r.TimeCommitment = TimeCommitment(strings.TrimSpace(string(r.TimeCommitment)))
	switch r.TimeCommitment {
	case "":
		r.TimeCommitment = Hours3To5
	case Hours1To2, Hours3To5, Hours6To10, Hours10Plus:
	default:
		return r, fmt.Errorf("%w: %q", ErrInvalidTimeCommitment, r.TimeCommitment)
	}

	return r, nil
}
