package rendering

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

// DefaultPDFTimeout bounds one browser print, start-up included.
const DefaultPDFTimeout = 60 * time.Second

// ChromeEnvVar names the environment variable holding the browser executable.
const ChromeEnvVar = "CHROME_PATH"

var chromeCandidates = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"headless-shell",
	"chrome",
}

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// PDFOptions configures RenderPDF.
type PDFOptions struct {
	// ChromePath overrides CHROME_PATH and the PATH search.
	ChromePath string
	// Timeout defaults to DefaultPDFTimeout.
	Timeout time.Duration
}

// FindChrome resolves the headless browser used for PDF output: the explicit
// path, then CHROME_PATH, then the usual executable names on PATH.
func FindChrome(explicit string) (string, error) {
	for _, p := range []string{explicit, os.Getenv(ChromeEnvVar)} {
		if p == "" {
			continue
		}
		path, err := lookPath(p)
		if err != nil {
			return "", &DependencyMissingError{
				Dependency: "chrome",
				Message:    fmt.Sprintf("browser not found at %s", p),
				Cause:      err,
			}
		}
		return path, nil
	}
	for _, name := range chromeCandidates {
		if path, err := lookPath(name); err == nil {
			return path, nil
		}
	}
	return "", &DependencyMissingError{
		Dependency: "chrome",
		Message:    "no Chrome or Chromium executable on PATH; install one or set " + ChromeEnvVar,
	}
}

// RenderPDF prints the print document of doc to a Letter-size PDF with a
// headless browser. The browser is located before anything is rendered.
func RenderPDF(ctx context.Context, doc *types.Document, opts PDFOptions) ([]byte, error) {
	chrome, err := FindChrome(opts.ChromePath)
	if err != nil {
		return nil, err
	}
	html, err := RenderPrintHTML(doc)
	if err != nil {
		return nil, err
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultPDFTimeout
	}
	return printToPDF(ctx, chrome, html, timeout)
}

func printToPDF(ctx context.Context, chrome, html string, timeout time.Duration) ([]byte, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.ExecPath(chrome),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, timeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "resume-builder-")
	if err != nil {
		return nil, &RenderError{Message: "failed to create print directory", Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o600); err != nil {
		return nil, &RenderError{Message: "failed to write print document", Cause: err}
	}

	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.5).
				WithPaperHeight(11).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &RenderError{Message: "failed to print PDF", Cause: err}
	}
	return pdf, nil
}
