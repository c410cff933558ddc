// Package ui is the interactive terminal window: a URL field, an output
// region, a save prompt and modal dialogs.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goheuristics/internal/heuristics"
)

// Analyzer produces a report for one URL.
type Analyzer interface {
	Analyze(ctx context.Context, url string) (heuristics.Report, error)
}

// Options configures a new Model.
type Options struct {
	// URL prefills the URL field.
	URL string
	// ExportPath prefills the save prompt.
	ExportPath string
}

type mode int

const (
	modeBrowse mode = iota
	modeSave
)

// chromeLines is the number of screen lines used around the output region.
const chromeLines = 6

type analysisDoneMsg struct {
	url    string
	report heuristics.Report
	err    error
}

// Model is the Bubble Tea model for the analyzer window.
type Model struct {
	ctx       context.Context
	analyzer  Analyzer
	presenter *Presenter

	url  textinput.Model
	save textinput.Model

	mode       mode
	busy       bool
	status     string
	modal      *dialog
	exportPath string

	width  int
	height int
}

// New returns a Model that analyses pages with analyzer. ctx bounds every
// analysis it starts.
func New(ctx context.Context, analyzer Analyzer, opts Options) *Model {
	url := textinput.New()
	url.Placeholder = "https://example.com"
	url.Prompt = ""
	url.CharLimit = 2048
	url.Width = 72
	url.SetValue(opts.URL)
	url.Focus()

	save := textinput.New()
	save.Placeholder = "report.pdf"
	save.Prompt = ""
	save.CharLimit = 1024
	save.Width = 60

	return &Model{
		ctx:        ctx,
		analyzer:   analyzer,
		presenter:  NewPresenter(80, 24-chromeLines),
		url:        url,
		save:       save,
		exportPath: opts.ExportPath,
		width:      80,
		height:     24,
	}
}

// Presenter exposes the output region and export state.
func (m *Model) Presenter() *Presenter { return m.presenter }

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case analysisDoneMsg:
		return m, m.finishAnalysis(msg)
	case tea.KeyMsg:
		if m.modal != nil {
			if msg.Type == tea.KeyCtrlC {
				return m, tea.Quit
			}
			m.modal = nil
			return m, nil
		}
		if act, ok := m.resolve(msg); ok {
			return m, actions[act](m)
		}
		return m, m.forward(msg)
	}
	return m, nil
}

// forward hands keys that are not actions to the focused widget.
func (m *Model) forward(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	if m.mode == modeSave {
		m.save, cmd = m.save.Update(msg)
		return cmd
	}
	switch msg.Type {
	case tea.KeyPgUp, tea.KeyPgDown, tea.KeyUp, tea.KeyDown:
		m.presenter.view, cmd = m.presenter.view.Update(msg)
		return cmd
	}
	m.url, cmd = m.url.Update(msg)
	return cmd
}

func (m *Model) resize(width, height int) {
	if width > 0 {
		m.width = width
		m.presenter.view.Width = width
		m.url.Width = max(width-8, 10)
		m.save.Width = max(width-12, 10)
	}
	if height > 0 {
		m.height = height
		m.presenter.view.Height = max(height-chromeLines, 1)
	}
}

func (m *Model) startAnalysis() tea.Cmd {
	if m.busy {
		return nil
	}
	url := strings.TrimSpace(m.url.Value())
	if url == "" {
		m.modal = dialogFor(ErrEmptyURL)
		return nil
	}
	m.busy = true
	m.status = "Analyzing " + url + " ..."
	log.Debug().Str("url", url).Msg("analysis started")
	ctx, analyzer := m.ctx, m.analyzer
	return func() tea.Msg {
		r, err := analyzer.Analyze(ctx, url)
		return analysisDoneMsg{url: url, report: r, err: err}
	}
}

func (m *Model) finishAnalysis(msg analysisDoneMsg) tea.Cmd {
	m.busy = false
	if msg.err != nil {
		log.Debug().Err(msg.err).Str("url", msg.url).Msg("analysis failed")
		m.status = ""
		m.modal = dialogFor(msg.err)
		return nil
	}
	m.presenter.Display(msg.report)
	m.status = "Analyzed " + msg.url
	return nil
}

func (m *Model) openSavePrompt() tea.Cmd {
	if m.busy {
		return nil
	}
	if !m.presenter.HasReport() {
		m.modal = dialogFor(ErrNoReport)
		return nil
	}
	m.mode = modeSave
	m.save.SetValue(m.exportPath)
	m.save.CursorEnd()
	m.url.Blur()
	return m.save.Focus()
}

func (m *Model) confirmSave() tea.Cmd {
	path := m.save.Value()
	cmd := m.closeSavePrompt()
	written, err := m.presenter.Export(path)
	switch {
	case err != nil:
		m.modal = dialogFor(err)
	case written != "":
		m.exportPath = written
		m.modal = &dialog{kind: dialogInfo, message: "Report exported to " + written}
	}
	return cmd
}

func (m *Model) closeSavePrompt() tea.Cmd {
	m.mode = modeBrowse
	m.save.Blur()
	return m.url.Focus()
}

func (m *Model) clear() tea.Cmd {
	if m.busy {
		return nil
	}
	m.presenter.Clear()
	m.status = ""
	return nil
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

func (m *Model) View() string {
	if m.modal != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.modal.render(m.width))
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Nielsen HCI Analyzer"))
	b.WriteString("\n")
	if m.mode == modeSave {
		b.WriteString(labelStyle.Render("Save as: "))
		b.WriteString(m.save.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter save • esc cancel • .md for Markdown"))
	} else {
		b.WriteString(labelStyle.Render("URL: "))
		b.WriteString(m.url.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter analyze • ctrl+e export • ctrl+l clear • pgup/pgdn scroll • ctrl+c quit"))
	}
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(runewidth.Truncate(m.status, m.width, "…")))
	b.WriteString("\n\n")
	b.WriteString(m.presenter.view.View())
	return b.String()
}

type dialogKind int

const (
	dialogError dialogKind = iota
	dialogWarning
	dialogInfo
)

type dialog struct {
	kind    dialogKind
	message string
}

// dialogFor maps an operation error onto the dialog shown to the user.
func dialogFor(err error) *dialog {
	switch {
	case errors.Is(err, ErrEmptyURL):
		return &dialog{kind: dialogError, message: "Please enter a URL"}
	case errors.Is(err, ErrNoReport):
		return &dialog{kind: dialogWarning, message: "Run analysis first"}
	}
	return &dialog{kind: dialogError, message: err.Error()}
}

func (d *dialog) title() string {
	switch d.kind {
	case dialogWarning:
		return "Warning"
	case dialogInfo:
		return "Success"
	}
	return "Error"
}

func (d *dialog) render(width int) string {
	color := lipgloss.Color("1")
	switch d.kind {
	case dialogWarning:
		color = lipgloss.Color("3")
	case dialogInfo:
		color = lipgloss.Color("2")
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(1, 2).
		Width(min(max(width-10, 20), 70))
	body := fmt.Sprintf("%s\n\n%s\n\n%s",
		lipgloss.NewStyle().Bold(true).Foreground(color).Render(d.title()),
		d.message,
		helpStyle.Render("press any key"))
	return box.Render(body)
}
