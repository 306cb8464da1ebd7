package summary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"autozone/internal/render"
)

// DefaultPath is where the text summary goes when no path is configured.
const DefaultPath = "AutoZone_summary.txt"

// Writer persists a finished order and returns the paths it wrote.
type Writer interface {
	WriteSummary(r render.Report) ([]string, error)
}

// MultiWriter writes to several writers in order and stops at the first
// failure.
type MultiWriter struct {
	writers []Writer
}

func NewMultiWriter(ws ...Writer) *MultiWriter {
	return &MultiWriter{writers: ws}
}

func (m *MultiWriter) WriteSummary(r render.Report) ([]string, error) {
	var paths []string
	for _, w := range m.writers {
		p, err := w.WriteSummary(r)
		paths = append(paths, p...)
		if err != nil {
			return paths, err
		}
	}
	return paths, nil
}

// TextFileWriter writes the plain-text summary, replacing any earlier file.
type TextFileWriter struct {
	path string
}

func NewTextFileWriter(path string) *TextFileWriter {
	if path == "" {
		path = DefaultPath
	}
	return &TextFileWriter{path: path}
}

func (f *TextFileWriter) WriteSummary(r render.Report) ([]string, error) {
	out, err := os.Create(f.path)
	if err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}
	if _, err := out.WriteString(r.Text(render.LineTotal)); err != nil {
		out.Close()
		return nil, fmt.Errorf("write: %w", err)
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("close: %w", err)
	}
	return []string{f.path}, nil
}

// WorkbookPath derives the .xlsx path that sits next to a text summary.
func WorkbookPath(textPath string) string {
	return strings.TrimSuffix(textPath, filepath.Ext(textPath)) + ".xlsx"
}
