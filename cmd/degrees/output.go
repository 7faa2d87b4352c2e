package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/degrees/config"
	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/search"
)

var (
	colorHighlight = lipgloss.Color("#2CD7C7") // counts, degrees
	colorPerson    = lipgloss.Color("#20B9B4") // person names
	colorTitle     = lipgloss.Color("#F4D03F") // production titles
	colorMuted     = lipgloss.Color("#2C4A54") // progress lines
	colorError     = lipgloss.Color("#E74C3C") // failures
)

// printer renders command output. With color off every style renders its
// input unchanged, so the plain wording stays byte-for-byte stable.
type printer struct {
	w io.Writer

	highlight lipgloss.Style
	person    lipgloss.Style
	title     lipgloss.Style
	muted     lipgloss.Style
	failure   lipgloss.Style
}

func newPrinter(w io.Writer, mode string) *printer {
	r := lipgloss.NewRenderer(w)
	if useColor(w, mode) {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &printer{
		w:         w,
		highlight: r.NewStyle().Bold(true).Foreground(colorHighlight),
		person:    r.NewStyle().Foreground(colorPerson),
		title:     r.NewStyle().Italic(true).Foreground(colorTitle),
		muted:     r.NewStyle().Foreground(colorMuted),
		failure:   r.NewStyle().Bold(true).Foreground(colorError),
	}
}

// useColor resolves auto against the writer: only a terminal gets color.
func useColor(w io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *printer) progress(msg string) {
	say(p.w, p.muted.Render(msg))
}

func (p *printer) fail(msg string) {
	say(p.w, p.failure.Render(msg))
}

// path prints the degrees line followed by one line per link:
//
//	2 degrees of separation.
//	1: Tom Cruise and Kevin Bacon starred in A Few Good Men
//	2: Kevin Bacon and Tom Hanks starred in Apollo 13
func (p *printer) path(g *core.Graph, origin string, path search.Path) {
	say(p.w, fmt.Sprintf("%s degrees of separation.", p.highlight.Render(fmt.Sprint(path.Degrees()))))

	prev := origin
	for i, l := range path {
		say(p.w, fmt.Sprintf("%d: %s and %s starred in %s",
			i+1,
			p.person.Render(personName(g, prev)),
			p.person.Render(personName(g, l.Person)),
			p.title.Render(productionTitle(g, l.Production))))
		prev = l.Person
	}
}

// stat prints one "label: value" line.
func (p *printer) stat(label string, value int) {
	say(p.w, fmt.Sprintf("%s: %s", label, p.highlight.Render(fmt.Sprint(value))))
}

func personName(g *core.Graph, id string) string {
	if pr, err := g.Person(id); err == nil {
		return pr.Name
	}
	return id
}

func productionTitle(g *core.Graph, id string) string {
	if m, err := g.Production(id); err == nil {
		return m.Title
	}
	return id
}
