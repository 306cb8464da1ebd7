package summary

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tealeg/xlsx"

	"autozone/internal/model"
	"autozone/internal/render"
)

func sampleReport() render.Report {
	return render.Report{
		Items: []model.LineItem{
			{Name: "Brake Service", UnitPrice: 10000, Qty: 2},
			{Name: "Car Wash", UnitPrice: 2500, Qty: 1},
		},
		Appointment: &model.Appointment{Date: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), Time: "1:30 PM"},
	}
}

func TestTextFileWriter_WritesAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "AutoZone_summary.txt")
	if err := os.WriteFile(path, []byte("stale content that is longer than nothing"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	w := NewTextFileWriter(path)
	paths, err := w.WriteSummary(sampleReport())
	if err != nil {
		t.Fatalf("WriteSummary error: %v", err)
	}
	if len(paths) != 1 || paths[0] != path {
		t.Fatalf("paths: %v", paths)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("summary missing: %v", err)
	}
	if want := sampleReport().Text(render.LineTotal); string(b) != want {
		t.Fatalf("content mismatch\n got:\n%s\nwant:\n%s", b, want)
	}
}

func TestTextFileWriter_DefaultPath(t *testing.T) {
	if got := NewTextFileWriter("").path; got != DefaultPath {
		t.Fatalf("default path: %s", got)
	}
}

func TestTextFileWriter_ReportsCreateError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "summary.txt")
	if _, err := NewTextFileWriter(path).WriteSummary(sampleReport()); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestWorkbookPath(t *testing.T) {
	cases := map[string]string{
		"AutoZone_summary.txt":   "AutoZone_summary.xlsx",
		"/tmp/out/summary":       "/tmp/out/summary.xlsx",
		"orders.v2/summary.text": "orders.v2/summary.xlsx",
	}
	for in, want := range cases {
		if got := WorkbookPath(in); got != want {
			t.Fatalf("WorkbookPath(%q): got=%q want=%q", in, got, want)
		}
	}
}

func TestXLSXWriter_WritesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.xlsx")
	if _, err := NewXLSXWriter(path, "sess-1").WriteSummary(sampleReport()); err != nil {
		t.Fatalf("WriteSummary error: %v", err)
	}
	f, err := xlsx.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	if len(f.Sheets) != 1 {
		t.Fatalf("sheets: %d", len(f.Sheets))
	}
	rows := f.Sheets[0].Rows
	if got := rows[0].Cells[0].Value; got != "Product" {
		t.Fatalf("header: %q", got)
	}
	if got := rows[1].Cells[0].Value; got != "Brake Service" {
		t.Fatalf("first item: %q", got)
	}
	if got := rows[2].Cells[0].Value; got != "Car Wash" {
		t.Fatalf("second item: %q", got)
	}
	var sawDate, sawSession bool
	for _, r := range rows {
		if len(r.Cells) < 2 {
			continue
		}
		switch r.Cells[0].Value {
		case "Appointment Date":
			sawDate = r.Cells[1].Value == "01/15/2025"
		case "Session":
			sawSession = r.Cells[1].Value == "sess-1"
		}
	}
	if !sawDate || !sawSession {
		t.Fatalf("missing rows: date=%v session=%v", sawDate, sawSession)
	}
}

type fakeWriter struct {
	path  string
	fail  bool
	calls int
}

func (f *fakeWriter) WriteSummary(render.Report) ([]string, error) {
	f.calls++
	if f.fail {
		return nil, errors.New("fail")
	}
	return []string{f.path}, nil
}

func TestMultiWriter_FansOutAndStopsOnError(t *testing.T) {
	a := &fakeWriter{path: "a"}
	b := &fakeWriter{path: "b"}
	paths, err := NewMultiWriter(a, b).WriteSummary(sampleReport())
	if err != nil {
		t.Fatalf("multi: %v", err)
	}
	if len(paths) != 2 || paths[0] != "a" || paths[1] != "b" {
		t.Fatalf("paths: %v", paths)
	}

	bad := &fakeWriter{fail: true}
	c := &fakeWriter{path: "c"}
	paths, err = NewMultiWriter(a, bad, c).WriteSummary(sampleReport())
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(paths) != 1 || c.calls != 0 {
		t.Fatalf("should stop after failure: paths=%v c.calls=%d", paths, c.calls)
	}
}
