// Package browser drives a headless Chrome instance to print rendered HTML
// to PDF. Requires Chrome/Chromium to be installed on the system.
package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultPrintTimeout bounds a print run when the caller does not set one.
const DefaultPrintTimeout = 30 * time.Second

// PrintOptions controls a PDF print run.
type PrintOptions struct {
	// Timeout bounds the whole navigate-and-print sequence. Zero means
	// DefaultPrintTimeout. Document metadata such as the author is carried
	// by the HTML itself; Chrome reads it from the page, not from here.
	Timeout time.Duration
}

// PrintToPDF renders the document at url in a headless browser and returns
// the printed PDF bytes. The url is typically a file:// URL pointing at an
// HTML file written beforehand.
func PrintToPDF(ctx context.Context, url string, opts PrintOptions) ([]byte, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultPrintTimeout
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf print failed: %w", err)
	}

	return pdf, nil
}
