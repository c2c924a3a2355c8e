// Package pathutil maps request paths to bounded metric labels.
package pathutil

import (
	"strings"
)

// OtherPath is the label for any path the API does not serve.
const OtherPath = "/other"

var knownPaths = map[string]struct{}{
	"/health":                   {},
	"/live":                     {},
	"/ready":                    {},
	"/metrics":                  {},
	"/api/summarize":            {},
	"/api/summarize/batch":      {},
	"/api/summarize/export":     {},
	"/api/document-qa":          {},
	"/api/website-chat":         {},
	"/api/learning-path":        {},
	"/api/learning-path/export": {},
}

// prefixPaths are subtrees reported under a single label.
var prefixPaths = []string{"/swagger"}

// NormalizePath returns path when it is an API route and a fixed label
// otherwise, so scanners probing random URLs cannot grow label cardinality.
//
//	NormalizePath("/api/summarize/")        // "/api/summarize"
//	NormalizePath("/swagger/index.html")    // "/swagger"
//	NormalizePath("/wp-login.php")          // "/other"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := knownPaths[path]; ok {
		return path
	}
	for _, prefix := range prefixPaths {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return prefix
		}
	}
	return OtherPath
}

// GetExpectedCardinality returns the number of distinct labels NormalizePath
// can produce.
func GetExpectedCardinality() int {
	return len(knownPaths) + len(prefixPaths) + 1
}
