package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/labelpress/labelpress/pkg/layout"
	"github.com/labelpress/labelpress/pkg/media"
	"github.com/labelpress/labelpress/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// previewDeps bundles everything the preview model needs to run the
// pipeline outside the Update loop.
type previewDeps struct {
	// ctx is the command context; quitting the preview cancels it, which
	// aborts any backend read still in flight.
	ctx       context.Context
	productID string
	exportDir string
	runner    *pipeline.Runner
	opts      pipeline.Options
}

// layoutReadyMsg carries a computed layout back into the Update loop.
type layoutReadyMsg struct {
	gen    int
	layout *layout.Layout
	err    error
}

// exportDoneMsg carries an export result back into the Update loop.
type exportDoneMsg struct {
	gen  int
	path string
	err  error
}

// previewModel is the bubbletea model for the interactive preview.
//
// Every pipeline request carries a generation number. Changing the size or
// starting a new export bumps the generation, so a result that arrives for
// an older generation is recognized as stale and dropped instead of
// overwriting the state the user is looking at.
type previewModel struct {
	deps  previewDeps
	sizes []media.Profile

	cursor    int
	gen       int
	loading   bool
	exporting bool

	current  *layout.Layout
	err      error
	exported string
}

func newPreviewModel(deps previewDeps) previewModel {
	if deps.ctx == nil {
		deps.ctx = context.Background()
	}
	sizes := media.All()
	cursor := 0
	for i, p := range sizes {
		if p.Size == media.DefaultSize {
			cursor = i
		}
	}
	return previewModel{
		deps:   deps,
		sizes:  sizes,
		cursor: cursor,
	}
}

func (m previewModel) Init() tea.Cmd {
	return m.requestLayout()
}

// requestLayout starts a pipeline run for the currently selected size.
func (m previewModel) requestLayout() tea.Cmd {
	gen := m.gen
	opts := m.deps.opts
	opts.Size = m.sizes[m.cursor].Size
	runner := m.deps.runner
	ctx := m.deps.ctx
	return func() tea.Msg {
		doc, err := runner.Assemble(ctx, opts)
		if err != nil {
			return layoutReadyMsg{gen: gen, err: err}
		}
		l, err := runner.ComputeLayout(ctx, doc, opts)
		return layoutReadyMsg{gen: gen, layout: l, err: err}
	}
}

// requestExport starts a PDF export for the currently selected size.
func (m previewModel) requestExport() tea.Cmd {
	gen := m.gen
	opts := m.deps.opts
	opts.Size = m.sizes[m.cursor].Size
	opts.Formats = []string{pipeline.FormatPDF}
	runner := m.deps.runner
	ctx := m.deps.ctx
	dir := m.deps.exportDir
	return func() tea.Msg {
		result, err := runner.Execute(ctx, opts)
		if err != nil {
			return exportDoneMsg{gen: gen, err: err}
		}
		path := filepath.Join(dir, pipeline.ExportFilename(result.Document.SKU, opts.Size))
		if err := os.WriteFile(path, result.Artifacts[pipeline.FormatPDF], 0o644); err != nil {
			return exportDoneMsg{gen: gen, err: err}
		}
		return exportDoneMsg{gen: gen, path: path}
	}
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				return m.resize()
			}
		case "down", "j":
			if m.cursor < len(m.sizes)-1 {
				m.cursor++
				return m.resize()
			}
		case "e", "enter":
			if m.exporting {
				return m, nil
			}
			m.gen++
			m.exporting = true
			m.err = nil
			return m, m.requestExport()
		}

	case layoutReadyMsg:
		if msg.gen != m.gen {
			return m, nil // stale result from a superseded request
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.current = msg.layout
		m.err = nil
		return m, nil

	case exportDoneMsg:
		if msg.gen != m.gen {
			return m, nil // stale result from a superseded request
		}
		m.exporting = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.exported = msg.path
		return m, tea.Quit
	}
	return m, nil
}

// resize bumps the generation and recomputes the layout for the newly
// selected size. An in-flight export for the old size is abandoned.
func (m previewModel) resize() (tea.Model, tea.Cmd) {
	m.gen++
	m.loading = true
	m.exporting = false
	m.err = nil
	return m, m.requestLayout()
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Label Preview"))
	b.WriteString(StyleDim.Render("  " + m.deps.productID))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ size  e export  q quit"))
	b.WriteString("\n\n")

	for i, p := range m.sizes {
		cursor := "  "
		style := listNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		b.WriteString(cursor + style.Render(p.String()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(styleIconError.Render(iconError) + " " + m.err.Error())
	case m.exporting:
		b.WriteString(StyleDim.Render("exporting..."))
	case m.loading || m.current == nil:
		b.WriteString(StyleDim.Render("rendering..."))
	default:
		b.WriteString(m.summary())
	}
	b.WriteString("\n")

	return b.String()
}

// summary describes the current layout in words, since the terminal
// cannot show the raster preview itself.
func (m previewModel) summary() string {
	l := m.current
	orientation := "portrait"
	if l.Landscape() {
		orientation = "landscape"
	}

	var b strings.Builder
	b.WriteString(StyleValue.Render(fmt.Sprintf("%s template, %g × %g mm (%s)", l.Template, l.WidthMM, l.HeightMM, orientation)))
	b.WriteString("\n")

	parts := []string{fmt.Sprintf("%d text boxes", len(l.Texts))}
	if l.Barcode != nil {
		parts = append(parts, "barcode")
	}
	if n := len(l.Glyphs); n > 0 {
		parts = append(parts, fmt.Sprintf("%d seals", n))
	}
	b.WriteString(StyleDim.Render(strings.Join(parts, " · ")))

	for _, w := range l.Warnings {
		b.WriteString("\n")
		b.WriteString(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(w))
	}
	return b.String()
}
