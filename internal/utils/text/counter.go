// Package text provides utilities for text processing and analysis.
// It holds the character and word counting rules shared by the summarization
// engine, the assistant adapters, and request validation.
package text

import "strings"

// CountRunes counts the number of Unicode characters (runes) in the given text.
// Multi-byte characters (Japanese, emoji, accented letters) count as one each.
//
// Examples:
//
//	CountRunes("hello")     // 5
//	CountRunes("こんにちは") // 5
//	CountRunes("Hello👋")   // 6
//	CountRunes("")          // 0
func CountRunes(text string) int {
	return len([]rune(text))
}

// CountWords counts the whitespace-delimited, non-empty tokens in text.
//
// Examples:
//
//	CountWords("hello world")      // 2
//	CountWords("  spaced   out ") // 2
//	CountWords("")                 // 0
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// Truncate shortens text to at most maxRunes characters, appending suffix when
// anything was cut. A non-positive maxRunes returns text unchanged.
func Truncate(text string, maxRunes int, suffix string) string {
	if maxRunes <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return string(runes[:maxRunes]) + suffix
}
