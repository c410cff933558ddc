package ui

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goheuristics/internal/heuristics"
	"github.com/hyperifyio/goheuristics/internal/render"
)

var (
	// ErrEmptyURL is returned when an analysis is requested without a URL.
	ErrEmptyURL = errors.New("please enter a URL")
	// ErrNoReport is returned when an export is requested before any
	// successful analysis, or after the output was cleared.
	ErrNoReport = errors.New("run analysis first")
)

// DefaultExportExt is appended to export paths that have no extension.
const DefaultExportExt = ".pdf"

// Presenter owns the output region and the export writers. It keeps the most
// recent report so an export can reuse it.
type Presenter struct {
	last    *heuristics.Report
	content string
	view    viewport.Model

	writePDF      func(heuristics.Report, string) error
	writeMarkdown func(heuristics.Report, string) error
}

// NewPresenter returns a Presenter with an empty output region of the given size.
func NewPresenter(width, height int) *Presenter {
	return &Presenter{
		view:          viewport.New(width, height),
		writePDF:      render.WritePDF,
		writeMarkdown: render.WriteMarkdownFile,
	}
}

// Display replaces the output with r and makes it the report used by Export.
func (p *Presenter) Display(r heuristics.Report) {
	p.last = &r
	p.content = render.Text(r)
	p.view.SetContent(p.content)
	p.view.GotoTop()
}

// Clear empties the output and forgets the cached report.
func (p *Presenter) Clear() {
	p.last = nil
	p.content = ""
	p.view.SetContent("")
	p.view.GotoTop()
}

// Report returns the cached report, if any.
func (p *Presenter) Report() (heuristics.Report, bool) {
	if p.last == nil {
		return heuristics.Report{}, false
	}
	return *p.last, true
}

// HasReport reports whether Export has something to write.
func (p *Presenter) HasReport() bool { return p.last != nil }

// Content is the text currently shown in the output region.
func (p *Presenter) Content() string { return p.content }

// Export writes the cached report to path and returns the path written. An
// empty path means the save was cancelled: nothing is written and "" is
// returned with a nil error. A path without an extension gets
// DefaultExportExt; ".md" and ".markdown" produce Markdown, anything else PDF.
func (p *Presenter) Export(path string) (string, error) {
	if p.last == nil {
		return "", ErrNoReport
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if filepath.Ext(path) == "" {
		path += DefaultExportExt
	}
	write := p.writePDF
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		write = p.writeMarkdown
	}
	if err := write(*p.last, path); err != nil {
		return "", err
	}
	log.Info().Str("path", path).Str("url", p.last.URL).Msg("report exported")
	return path, nil
}
