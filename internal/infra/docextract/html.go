// Package docextract converts uploaded markup documents into plain text
// for the document Q&A prompt.
package docextract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoText is returned when a document contains no visible text.
var ErrNoText = errors.New("document contains no text")

// blockSelector lists elements that start a new line in rendered output.
const blockSelector = "p, div, section, article, header, footer, li, tr, h1, h2, h3, h4, h5, h6, pre, blockquote, dt, dd, title"

// HTMLExtractor strips tags, scripts and styles from HTML or XML and
// returns the visible text with one block element per line.
// It implements assistant.DocumentExtractor.
type HTMLExtractor struct{}

// NewHTMLExtractor creates an HTMLExtractor.
func NewHTMLExtractor() *HTMLExtractor {
	return &HTMLExtractor{}
}

// ExtractText parses content and returns its text.
func (e *HTMLExtractor) ExtractText(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("create document from reader: %w", err)
	}

	doc.Find("script, style, noscript, template, svg, iframe").Remove()
	doc.Find("br").Each(func(_ int, br *goquery.Selection) {
		br.ReplaceWithHtml("\n")
	})
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	text := collapseLines(doc.Text())
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

// collapseLines squeezes runs of spaces inside each line and drops empty lines.
func collapseLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
