package docextract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLExtractor_ExtractText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name: "html page",
			content: `<html><head><title>Release Notes</title><style>p { color: red; }</style></head>
<body><h1>Version 2.0</h1><p>Faster   startup and	lower memory use.</p><script>alert("x")</script><ul><li>New API</li><li>Bug fixes</li></ul></body></html>`,
			want: "Release Notes\nVersion 2.0\nFaster startup and lower memory use.\nNew API\nBug fixes",
		},
		{
			name:    "line breaks",
			content: `<p>first line<br>second line<br/>third line</p>`,
			want:    "first line\nsecond line\nthird line",
		},
		{
			name:    "xml document",
			content: `<?xml version="1.0"?><catalog><book><title>Go in Practice</title><author>Butcher</author></book></catalog>`,
			want:    "Go in Practice\nButcher",
		},
		{
			name:    "plain text passes through",
			content: "just some text",
			want:    "just some text",
		},
	}

	e := NewHTMLExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.ExtractText(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTMLExtractor_ExtractText_NoText(t *testing.T) {
	_, err := NewHTMLExtractor().ExtractText(`<html><body><script>var a = 1;</script>   </body></html>`)

	assert.ErrorIs(t, err, ErrNoText)
}
