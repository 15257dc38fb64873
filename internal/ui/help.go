package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"combobox/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// CatalogueRenderer renders the full option list, including options that
// can never match a search, for reading in a pager
type CatalogueRenderer struct {
	titleStyle   lipgloss.Style
	sectionStyle lipgloss.Style
	labelStyle   lipgloss.Style
	valueStyle   lipgloss.Style
	mutedStyle   lipgloss.Style
}

// NewCatalogueRenderer creates a new catalogue renderer
func NewCatalogueRenderer() *CatalogueRenderer {
	return &CatalogueRenderer{
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		sectionStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		labelStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		valueStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		mutedStyle: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

// Render lists every option with its value and search keyword. The option at
// index selected is marked; pass -1 for none
func (r *CatalogueRenderer) Render(title string, options []domain.Option, selected int) string {
	var b strings.Builder

	if title == "" {
		title = "Options"
	}
	b.WriteString(r.titleStyle.Render(title))
	b.WriteString("\n")

	width := 0
	for _, opt := range options {
		width = max(width, lipgloss.Width(opt.Label))
	}

	b.WriteString(r.sectionStyle.Render(fmt.Sprintf("%d options", len(options))))
	b.WriteString("\n")
	for i, opt := range options {
		marker := "  "
		if i == selected {
			marker = "> "
		}
		label := opt.Label + strings.Repeat(" ", width-lipgloss.Width(opt.Label))
		fmt.Fprintf(&b, "%s%3d  %s  %s  %s\n",
			marker,
			i,
			r.labelStyle.Render(label),
			r.valueStyle.Render(fmt.Sprintf("%v", opt.Value)),
			r.keywordText(opt.Keyword))
	}

	b.WriteString(r.sectionStyle.Render("Search"))
	b.WriteString("\n")
	b.WriteString(r.mutedStyle.Render("  Search is a case-insensitive substring match on the keyword."))
	b.WriteString("\n")
	b.WriteString(r.mutedStyle.Render("  Options without a keyword are never listed in the dropdown."))
	return b.String()
}

func (r *CatalogueRenderer) keywordText(k domain.Keyword) string {
	switch {
	case !k.IsSet():
		return r.mutedStyle.Render("(no keyword)")
	case k.IsPredicate():
		return r.mutedStyle.Render("(custom match)")
	default:
		return fmt.Sprintf("%q", k.Text())
	}
}

// Pager shows long content in ov. With a program set, the terminal is
// handed over for the duration and restored afterwards
type Pager struct {
	program *tea.Program
}

// NewPager creates a pager; program may be nil when no TUI is running
func NewPager(program *tea.Program) *Pager {
	return &Pager{program: program}
}

// Show pages content until the user quits ov
func (p *Pager) Show(content string) error {
	if p.program != nil {
		if err := p.program.ReleaseTerminal(); err != nil {
			return err
		}
		defer func() {
			// ov needs a moment to leave the alternate screen
			time.Sleep(100 * time.Millisecond)
			_ = p.program.RestoreTerminal()
		}()
	}
	return runPager(strings.NewReader(content))
}

func runPager(r io.Reader) error {
	root, err := oviewer.NewRoot(r)
	if err != nil {
		return fmt.Errorf("failed to start pager: %w", err)
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
