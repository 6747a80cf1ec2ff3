package converting

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"github.com/jonathan/resume-renderer/internal/browser"
	"github.com/jonathan/resume-renderer/internal/types"
)

// PDFConverter prints the HTML form of a resume to PDF through a headless
// browser.
type PDFConverter struct {
	resume     *types.Resume
	styleBlock string
	timeout    time.Duration
}

// Convert always fails: PDF is a binary format.
func (c *PDFConverter) Convert() (string, error) {
	return "", &ConversionError{
		Format:  FormatPDF,
		Message: "pdf output is binary, use WriteFile",
		Cause:   ErrNoTextRepresentation,
	}
}

// WriteFile builds the HTML form with the contact email as document author,
// stages it in a temporary file, prints that file in a headless browser, and
// writes the PDF bytes to path. The temporary file is removed on every exit
// path; a print failure still surfaces after cleanup.
func (c *PDFConverter) WriteFile(ctx context.Context, path string) error {
	page, err := c.buildPage()
	if err != nil {
		return err
	}

	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("resume-%s.html", uuid.New().String()))
	if err := os.WriteFile(tmpPath, []byte(page), 0600); err != nil {
		return &ConversionError{
			Format:  FormatPDF,
			Message: "failed to stage intermediate html file",
			Cause:   err,
		}
	}
	defer os.Remove(tmpPath)

	pdf, err := browser.PrintToPDF(ctx, "file://"+tmpPath, browser.PrintOptions{Timeout: c.timeout})
	if err != nil {
		return &ConversionError{
			Format:  FormatPDF,
			Message: "browser print failed",
			Cause:   err,
		}
	}

	if err := os.WriteFile(path, pdf, 0644); err != nil {
		return &ConversionError{
			Format:  FormatPDF,
			Message: "failed to write pdf file: " + path,
			Cause:   err,
		}
	}
	return nil
}

// buildPage produces the HTML document to print, with the contact email
// injected as the author so the PDF metadata identifies the candidate.
func (c *PDFConverter) buildPage() (string, error) {
	htmlConverter := &HTMLConverter{resume: c.resume, styleBlock: c.styleBlock}
	content, err := htmlConverter.Convert()
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", &ConversionError{
			Format:  FormatPDF,
			Message: "failed to parse html form",
			Cause:   err,
		}
	}
	doc.Find("head").AppendHtml(fmt.Sprintf(`<meta name="author" content=%q>`, c.resume.Contact.Email))

	page, err := goquery.OuterHtml(doc.Find("html"))
	if err != nil {
		return "", &ConversionError{
			Format:  FormatPDF,
			Message: "failed to serialize printable document",
			Cause:   err,
		}
	}
	return "<!DOCTYPE html>\n" + page, nil
}
