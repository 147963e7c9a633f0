package rendering

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/fileio"
	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

// Format is an export target.
type Format string

const (
	FormatTeX  Format = "tex"
	FormatDocx Format = "docx"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// Formats lists every export target.
var Formats = []Format{FormatTeX, FormatDocx, FormatHTML, FormatPDF}

// DefaultEncoding is used when ExportOptions.Encoding is empty.
const DefaultEncoding = "utf-8"

// ParseFormat accepts a format name with or without a leading dot.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	switch f {
	case FormatTeX, FormatDocx, FormatHTML, FormatPDF:
		return f, nil
	case "latex":
		return FormatTeX, nil
	case "htm":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unknown export format %q (want one of tex, docx, html, pdf)", s)
}

// FormatFromPath infers the export format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("cannot infer export format from %q", path)
	}
	return ParseFormat(ext)
}

// IsText reports whether the format is written as encoded text.
func (f Format) IsText() bool {
	return f == FormatTeX || f == FormatHTML
}

// ExportOptions configures Export.
type ExportOptions struct {
	// Encoding is a WHATWG label for text formats. Characters the encoding
	// cannot represent are replaced.
	Encoding string
	// Template is a custom LaTeX template path.
	Template   string
	ChromePath string
	Timeout    time.Duration
	Logger     *slog.Logger
}

// ExportResult describes a written export.
type ExportResult struct {
	Path     string
	Format   Format
	Encoding string
	Bytes    int
	Duration time.Duration
}

// Export renders doc in memory and writes it to path. Nothing is written when
// rendering fails or a required program is missing, and a failed write never
// leaves a partial file at path.
func Export(ctx context.Context, doc *types.Document, format Format, path string, opts ExportOptions) (*ExportResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	data, encName, err := renderFormat(ctx, doc, format, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("rendered export", "format", format, "bytes", len(data))

	if err := fileio.WriteFileAtomic(path, data, 0o644); err != nil {
		return nil, &ExportError{Path: path, Message: "failed to write export", Cause: err}
	}

	result := &ExportResult{
		Path:     path,
		Format:   format,
		Encoding: encName,
		Bytes:    len(data),
		Duration: time.Since(start),
	}
	logger.Info("exported document", "path", path, "format", format, "bytes", result.Bytes)
	return result, nil
}

func renderFormat(ctx context.Context, doc *types.Document, format Format, opts ExportOptions) ([]byte, string, error) {
	switch format {
	case FormatTeX:
		out, err := RenderLaTeXWithTemplate(doc, opts.Template)
		if err != nil {
			return nil, "", err
		}
		return EncodeText(out, opts.Encoding)
	case FormatHTML:
		out, err := RenderPrintHTML(doc)
		if err != nil {
			return nil, "", err
		}
		name, err := encodingName(opts.Encoding)
		if err != nil {
			return nil, "", err
		}
		out = strings.Replace(out, `<meta charset="utf-8">`, `<meta charset="`+name+`">`, 1)
		return EncodeText(out, opts.Encoding)
	case FormatDocx:
		out, err := RenderDocx(doc)
		return out, "", err
	case FormatPDF:
		out, err := RenderPDF(ctx, doc, PDFOptions{ChromePath: opts.ChromePath, Timeout: opts.Timeout})
		return out, "", err
	}
	return nil, "", &RenderError{Message: fmt.Sprintf("unsupported format %q", format)}
}

func lookupEncoding(label string) (encoding.Encoding, error) {
	if strings.TrimSpace(label) == "" {
		label = DefaultEncoding
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, &RenderError{Message: fmt.Sprintf("unknown encoding %q", label), Cause: err}
	}
	return enc, nil
}

func encodingName(label string) (string, error) {
	enc, err := lookupEncoding(label)
	if err != nil {
		return "", err
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return "", &RenderError{Message: fmt.Sprintf("encoding %q has no canonical name", label), Cause: err}
	}
	return name, nil
}

// EncodeText encodes s with the encoding named by a WHATWG label and returns
// the bytes with the encoding's canonical name. Unencodable characters are
// replaced rather than reported.
func EncodeText(s, label string) ([]byte, string, error) {
	enc, err := lookupEncoding(label)
	if err != nil {
		return nil, "", err
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return nil, "", &RenderError{Message: fmt.Sprintf("encoding %q has no canonical name", label), Cause: err}
	}
	if name == "utf-8" {
		return []byte(s), name, nil
	}
	out, err := encoding.ReplaceUnsupported(enc.NewEncoder()).String(s)
	if err != nil {
		return nil, "", &RenderError{Message: "failed to encode output as " + name, Cause: err}
	}
	return []byte(out), name, nil
}
