package converting

import (
	"context"
	"os"

	"github.com/jonathan/resume-renderer/internal/rendering"
	"github.com/jonathan/resume-renderer/internal/types"
)

// MarkdownConverter emits the canonical Markdown form of a resume.
type MarkdownConverter struct {
	resume     *types.Resume
	styleBlock string
}

// Convert renders the resume to Markdown.
func (c *MarkdownConverter) Convert() (string, error) {
	return rendering.RenderMarkdown(c.resume, c.styleBlock), nil
}

// WriteFile renders the resume and writes the Markdown document to path.
func (c *MarkdownConverter) WriteFile(_ context.Context, path string) error {
	content, err := c.Convert()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return &ConversionError{
			Format:  FormatMarkdown,
			Message: "failed to write markdown file: " + path,
			Cause:   err,
		}
	}
	return nil
}
