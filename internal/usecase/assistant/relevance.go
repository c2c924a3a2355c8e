package assistant

import (
	"math"
	"slices"
	"strings"
	"unicode"

	"ai-toolkit/internal/domain/entity"
)

// minTermLength drops short tokens such as "a", "is" or "to".
const minTermLength = 3

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {}, "you": {},
	"all": {}, "can": {}, "was": {}, "this": {}, "that": {}, "with": {}, "what": {},
	"when": {}, "where": {}, "which": {}, "who": {}, "why": {}, "how": {}, "does": {},
	"from": {}, "about": {}, "into": {}, "there": {}, "their": {}, "have": {}, "has": {},
	"tell": {}, "please": {}, "document": {}, "documents": {},
}

// queryTerms returns the distinct content words of a question, lower-cased.
func queryTerms(question string) []string {
	seen := make(map[string]struct{})
	var terms []string
	for _, tok := range tokenize(question) {
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		terms = append(terms, tok)
	}
	return terms
}

func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) >= minTermLength {
			out = append(out, f)
		}
	}
	return out
}

type rankedDocument struct {
	doc     entity.Document
	matched map[string]struct{}
	order   int
}

// rankDocuments scores each document by how many query terms it contains and
// returns the documents with at least one match, best first. Ties keep input
// order.
func rankDocuments(terms []string, docs []entity.Document) []rankedDocument {
	ranked := make([]rankedDocument, 0, len(docs))
	for i, doc := range docs {
		vocab := make(map[string]struct{})
		for _, tok := range tokenize(doc.Content) {
			vocab[tok] = struct{}{}
		}
		matched := make(map[string]struct{})
		for _, term := range terms {
			if _, ok := vocab[term]; ok {
				matched[term] = struct{}{}
			}
		}
		if len(matched) > 0 {
			ranked = append(ranked, rankedDocument{doc: doc, matched: matched, order: i})
		}
	}
	slices.SortStableFunc(ranked, func(a, b rankedDocument) int {
		return len(b.matched) - len(a.matched)
	})
	return ranked
}

// confidence estimates how well the documents cover the question.
// Without documents the answer relies on general knowledge and scores 0.5.
// With documents the score grows from 0.3 to 0.9 with the share of query terms
// found in any document.
func confidence(terms []string, docs []entity.Document, ranked []rankedDocument) float64 {
	if len(docs) == 0 {
		return 0.5
	}
	if len(terms) == 0 {
		return 0.3
	}
	covered := make(map[string]struct{})
	for _, r := range ranked {
		for term := range r.matched {
			covered[term] = struct{}{}
		}
	}
	score := 0.3 + 0.6*float64(len(covered))/float64(len(terms))
	return math.Round(score*100) / 100
}

func sourceNames(ranked []rankedDocument) []string {
	names := make([]string, 0, len(ranked))
	for _, r := range ranked {
		names = append(names, r.doc.Name)
	}
	return names
}
