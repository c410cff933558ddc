package ui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hyperifyio/goheuristics/internal/heuristics"
)

func TestPresenter_ExportRequiresReport(t *testing.T) {
	p := NewPresenter(80, 20)
	path := filepath.Join(t.TempDir(), "r.pdf")
	if _, err := p.Export(path); !errors.Is(err, ErrNoReport) {
		t.Fatalf("expected ErrNoReport, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no file, stat err=%v", err)
	}
}

func TestPresenter_ExportChoosesFormatByExtension(t *testing.T) {
	p := NewPresenter(80, 20)
	var pdfPaths, mdPaths []string
	p.writePDF = func(_ heuristics.Report, path string) error { pdfPaths = append(pdfPaths, path); return nil }
	p.writeMarkdown = func(_ heuristics.Report, path string) error { mdPaths = append(mdPaths, path); return nil }
	p.Display(sampleReport("https://example.test/"))

	cases := []struct {
		in   string
		want string
	}{
		{"report", "report.pdf"},
		{"report.pdf", "report.pdf"},
		{" notes.MD ", "notes.MD"},
		{"notes.markdown", "notes.markdown"},
	}
	for _, tc := range cases {
		got, err := p.Export(tc.in)
		if err != nil {
			t.Fatalf("Export(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Export(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
	if len(pdfPaths) != 2 || len(mdPaths) != 2 {
		t.Fatalf("unexpected writer calls pdf=%v md=%v", pdfPaths, mdPaths)
	}
}

func TestPresenter_ExportMarkdownFile(t *testing.T) {
	p := NewPresenter(80, 20)
	p.Display(sampleReport("https://example.test/"))
	out := filepath.Join(t.TempDir(), "report.md")
	if _, err := p.Export(out); err != nil {
		t.Fatalf("Export: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(b), "## 1. Visibility of System Status") {
		t.Fatalf("unexpected markdown:\n%s", b)
	}
}

func TestPresenter_DisplayReplacesPreviousReport(t *testing.T) {
	p := NewPresenter(80, 20)
	p.Display(sampleReport("https://one.test/"))
	p.Display(sampleReport("https://two.test/"))
	r, ok := p.Report()
	if !ok || r.URL != "https://two.test/" {
		t.Fatalf("expected most recent report, got %+v", r)
	}
	if strings.Count(p.Content(), "1. Visibility of System Status") != 1 {
		t.Fatalf("expected output to be replaced, got:\n%s", p.Content())
	}
}
