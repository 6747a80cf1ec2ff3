// Package converting adapts the canonical Markdown rendering of a resume
// into the supported output formats. The set of formats is closed: Markdown
// is the source form, HTML is derived from it, and PDF is printed from the
// HTML. None of the adapters alter the document's content.
package converting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-renderer/internal/types"
)

// Format identifies an output format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatPDF      Format = "pdf"
)

// ParseFormat maps a user-supplied format name, including common aliases
// and file extensions, to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "md", "markdown":
		return FormatMarkdown, nil
	case "html", "htm":
		return FormatHTML, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected markdown, html, or pdf)", name)
	}
}

// Extension returns the file extension for the format, with the leading dot.
func (f Format) Extension() string {
	switch f {
	case FormatHTML:
		return ".html"
	case FormatPDF:
		return ".pdf"
	default:
		return ".md"
	}
}

// Converter turns a validated resume into one output representation.
// Convert returns the representation as a string; WriteFile writes it to
// disk. The PDF converter only supports WriteFile since PDF is binary.
type Converter interface {
	Convert() (string, error)
	WriteFile(ctx context.Context, path string) error
}

// Options carries the rendering inputs shared by all converters.
type Options struct {
	// StyleBlock is the wrapped stylesheet emitted at the top of the
	// Markdown document. Use styles.Default() for the embedded sheet.
	StyleBlock string
	// PDFTimeout bounds the headless-browser print run. Zero means the
	// browser package's default.
	PDFTimeout time.Duration
}

// New returns the converter for the requested format.
func New(format Format, resume *types.Resume, opts Options) (Converter, error) {
	switch format {
	case FormatMarkdown:
		return &MarkdownConverter{resume: resume, styleBlock: opts.StyleBlock}, nil
	case FormatHTML:
		return &HTMLConverter{resume: resume, styleBlock: opts.StyleBlock}, nil
	case FormatPDF:
		return &PDFConverter{resume: resume, styleBlock: opts.StyleBlock, timeout: opts.PDFTimeout}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
