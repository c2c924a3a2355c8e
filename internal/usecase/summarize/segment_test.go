package summarize

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"ai-toolkit/internal/domain/entity"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []entity.Sentence
	}{
		{
			name: "empty",
			text: "",
			want: []entity.Sentence{},
		},
		{
			name: "whitespace only",
			text: "   \n\t ",
			want: []entity.Sentence{},
		},
		{
			name: "punctuation only",
			text: "...!!??",
			want: []entity.Sentence{},
		},
		{
			name: "no terminal punctuation",
			text: "  Hello world  ",
			want: []entity.Sentence{{Index: 0, Text: "Hello world"}},
		},
		{
			name: "mixed terminators and runs",
			text: "Wait... what?! Yes.",
			want: []entity.Sentence{
				{Index: 0, Text: "Wait"},
				{Index: 1, Text: "what"},
				{Index: 2, Text: "Yes"},
			},
		},
		{
			name: "whitespace spans keep indices dense",
			text: "One. . Two.   . Three",
			want: []entity.Sentence{
				{Index: 0, Text: "One"},
				{Index: 1, Text: "Two"},
				{Index: 2, Text: "Three"},
			},
		},
		{
			name: "multibyte text",
			text: "こんにちは世界! Ça va?",
			want: []entity.Sentence{
				{Index: 0, Text: "こんにちは世界"},
				{Index: 1, Text: "Ça va"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Segment() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSegment_IndicesAreDense(t *testing.T) {
	got := Segment("a. b!! c?? . d")
	for i, s := range got {
		if s.Index != i {
			t.Errorf("sentence %d has index %d", i, s.Index)
		}
	}
}
