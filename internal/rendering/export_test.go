package rendering

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Austin-Daigle/JakeGutierrezResumeBuilder/internal/types"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"tex", FormatTeX, false},
		{".TEX", FormatTeX, false},
		{"latex", FormatTeX, false},
		{"docx", FormatDocx, false},
		{"html", FormatHTML, false},
		{"htm", FormatHTML, false},
		{"pdf", FormatPDF, false},
		{"odt", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("/tmp/out/resume.docx")
	require.NoError(t, err)
	assert.Equal(t, FormatDocx, f)

	_, err = FormatFromPath("/tmp/out/resume")
	assert.Error(t, err)
}

func TestEncodeText_DefaultIsUTF8(t *testing.T) {
	out, name, err := EncodeText("café α", "")
	require.NoError(t, err)
	assert.Equal(t, "utf-8", name)
	assert.Equal(t, []byte("café α"), out)
}

func TestEncodeText_ReplacesUnsupported(t *testing.T) {
	out, name, err := EncodeText("café α", "latin1")
	require.NoError(t, err)
	assert.Equal(t, "windows-1252", name)
	require.Len(t, out, 6)
	assert.Equal(t, []byte("caf\xe9 "), out[:5])
	assert.NotEqual(t, byte('a'), out[5])
}

func TestEncodeText_UnknownLabel(t *testing.T) {
	_, _, err := EncodeText("x", "klingon")
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestExport_TeX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "resume.tex")

	result, err := Export(context.Background(), types.DemoDocument(), FormatTeX, path, ExportOptions{})
	require.NoError(t, err)
	assert.Equal(t, path, result.Path)
	assert.Equal(t, FormatTeX, result.Format)
	assert.Equal(t, "utf-8", result.Encoding)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, result.Bytes, len(data))
	assert.Contains(t, string(data), `\section{Experience}`)
}

func TestExport_HTMLDeclaresEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.html")

	_, err := Export(context.Background(), types.DemoDocument(), FormatHTML, path, ExportOptions{Encoding: "iso-8859-1"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<meta charset="windows-1252">`)
}

func TestExport_Docx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.docx")

	_, err := Export(context.Background(), types.DemoDocument(), FormatDocx, path, ExportOptions{})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	f := parseDocx(t, data)
	assert.NotEmpty(t, bodyParagraphs(f))
}

func TestExport_MissingBrowserWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")

	_, err := Export(context.Background(), types.DemoDocument(), FormatPDF, path,
		ExportOptions{ChromePath: filepath.Join(t.TempDir(), "no-such-browser")})
	var depErr *DependencyMissingError
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, "chrome", depErr.Dependency)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExport_WriteFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	path := filepath.Join(blocker, "resume.tex")

	_, err := Export(context.Background(), types.DemoDocument(), FormatTeX, path, ExportOptions{})
	var exportErr *ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, path, exportErr.Path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestExport_ReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.html")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	_, err := Export(context.Background(), types.DemoDocument(), FormatHTML, path, ExportOptions{})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<!DOCTYPE html>"))
}

func TestExport_UnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.odt")
	_, err := Export(context.Background(), types.DemoDocument(), Format("odt"), path, ExportOptions{})
	assert.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
