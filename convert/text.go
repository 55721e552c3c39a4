package convert

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// TextOption configures a TextConverter.
type TextOption func(*TextConverter)

// WithLineDocuments splits input into one Document per non-empty line
// instead of one per blank-line-separated paragraph.
func WithLineDocuments() TextOption {
	return func(c *TextConverter) { c.perLine = true }
}

// TextConverter converts plain text into one Document per paragraph
// (blank-line separated) or per line.
type TextConverter struct {
	perLine bool
}

// NewTextConverter creates a TextConverter.
func NewTextConverter(opts ...TextOption) *TextConverter {
	c := &TextConverter{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Format returns "text".
func (c *TextConverter) Format() string { return "text" }

// Convert splits text and emits one Document per chunk.
func (c *TextConverter) Convert(ctx context.Context, data []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	var chunks []string
	if c.perLine {
		chunks = strings.Split(text, "\n")
	} else {
		chunks = strings.Split(text, "\n\n")
	}

	docs := make([]Document, 0, len(chunks))
	for _, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		docs = append(docs, Document{
			ID:      uuid.NewString(),
			Content: chunk,
		})
	}
	return marshalDocuments(docs)
}
