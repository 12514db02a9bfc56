package emit

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper metrics in inches (210mm x 297mm).
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
)

// DefaultConvertTimeout bounds one markup-to-PDF conversion, browser
// startup included.
const DefaultConvertTimeout = 60 * time.Second

// Converter turns a self-contained markup document into PDF bytes.
// It is the emitter's only non-trivial-latency collaborator and is
// treated as a single blocking call.
type Converter interface {
	Convert(ctx context.Context, markup string) ([]byte, error)
}

// ChromeConverter renders markup with a headless Chrome print-to-PDF.
// Requires Chrome/Chromium on the system; the CHROME_PATH environment
// variable overrides binary discovery.
type ChromeConverter struct {
	Timeout time.Duration
}

// NewChromeConverter returns a converter with the default timeout.
func NewChromeConverter() *ChromeConverter {
	return &ChromeConverter{Timeout: DefaultConvertTimeout}
}

// Convert writes the markup to a scratch file, prints it through
// headless Chrome on A4 paper, and returns the PDF bytes.
func (c *ChromeConverter) Convert(ctx context.Context, markup string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, c.Timeout)
	defer cancel()

	// Chrome cannot navigate to a data: URL with PrintToPDF reliably;
	// serve the document from a scratch file instead.
	tmpDir, err := os.MkdirTemp("", "resumegen-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(markup), 0o644); err != nil {
		return nil, err
	}

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdf, nil
}
