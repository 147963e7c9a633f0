package validation

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

// CountPDFPages counts the pages of a PDF file.
func CountPDFPages(pdfPath string) (int, error) {
	data, err := readFile(pdfPath)
	if err != nil {
		return 0, err
	}
	return countPages(bytes.NewReader(data), int64(len(data)), pdfPath)
}

// CountPDFPagesBytes counts the pages of an in-memory PDF.
func CountPDFPagesBytes(data []byte) (int, error) {
	return countPages(bytes.NewReader(data), int64(len(data)), "PDF data")
}

// countPages reads the page tree's Count. The pdf package panics on some
// malformed files, so panics are turned into errors.
func countPages(r io.ReaderAt, size int64, name string) (n int, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &Error{Message: fmt.Sprintf("malformed PDF %s", name), Cause: fmt.Errorf("%v", p)}
		}
	}()
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return 0, &Error{Message: fmt.Sprintf("failed to parse PDF %s", name), Cause: err}
	}
	n = reader.NumPage()
	if n < 1 {
		return 0, &Error{Message: fmt.Sprintf("PDF %s has no pages", name)}
	}
	return n, nil
}

// CheckPageCount returns a page_overflow violation when pages exceeds maxPages.
// A maxPages below one disables the check.
func CheckPageCount(pages, maxPages int) []types.Violation {
	if maxPages < 1 || pages <= maxPages {
		return nil
	}
	return []types.Violation{{
		Type:     "page_overflow",
		Severity: types.SeverityError,
		Details:  fmt.Sprintf("document has %d pages, maximum is %d", pages, maxPages),
		Lines:    intPtr(pages),
	}}
}

func intPtr(i int) *int {
	return &i
}
