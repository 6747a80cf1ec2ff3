package converting

import (
	"bytes"
	"context"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/jonathan/resume-renderer/internal/rendering"
	"github.com/jonathan/resume-renderer/internal/types"
)

// bodyClass is the stylesheet hook the embedded CSS targets.
const bodyClass = "markdown-body"

// HTMLConverter derives an HTML document from the Markdown rendering.
type HTMLConverter struct {
	resume     *types.Resume
	styleBlock string
}

// markdown is the shared goldmark instance. The table extension handles the
// skills table; raw-HTML passthrough is required because the style block and
// the bullet spans are literal HTML inside the Markdown source.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
)

// Convert renders the resume to Markdown, converts it to HTML, and wraps the
// result in a document shell. The generic conversion leaves the leading
// style block and the contact-name heading adjacent at the top of the
// fragment; re-parsing with document semantics hoists the style element into
// head, so the body opens with the candidate's name rather than burying it
// in the head region.
func (c *HTMLConverter) Convert() (string, error) {
	fragment, err := c.convertFragment()
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", &ConversionError{
			Format:  FormatHTML,
			Message: "failed to parse converted document",
			Cause:   err,
		}
	}
	doc.Find("body").AddClass(bodyClass)

	shell, err := goquery.OuterHtml(doc.Find("html"))
	if err != nil {
		return "", &ConversionError{
			Format:  FormatHTML,
			Message: "failed to serialize document",
			Cause:   err,
		}
	}
	return "<!DOCTYPE html>\n" + shell, nil
}

// convertFragment runs the Markdown rendering through goldmark, producing a
// body fragment without a document shell.
func (c *HTMLConverter) convertFragment() (string, error) {
	source := rendering.RenderMarkdown(c.resume, c.styleBlock)
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", &ConversionError{
			Format:  FormatHTML,
			Message: "markdown conversion failed",
			Cause:   err,
		}
	}
	return buf.String(), nil
}

// WriteFile converts the resume and writes the HTML document to path.
func (c *HTMLConverter) WriteFile(_ context.Context, path string) error {
	content, err := c.Convert()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return &ConversionError{
			Format:  FormatHTML,
			Message: "failed to write html file: " + path,
			Cause:   err,
		}
	}
	return nil
}
