// Package report prints the user-facing outcome of an edit to the console.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Reporter writes one message per edit. Styling is dropped automatically
// when out is not a terminal.
type Reporter struct {
	out     io.Writer
	verb    lipgloss.Style
	value   lipgloss.Style
	warning lipgloss.Style
}

// New returns a Reporter writing to out.
func New(out io.Writer) *Reporter {
	r := lipgloss.NewRenderer(out)
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return &Reporter{
		out:     out,
		verb:    base.Bold(true).Foreground(lipgloss.Color("10")),
		value:   base.Foreground(lipgloss.Color("14")),
		warning: base.Bold(true).Foreground(lipgloss.Color("11")),
	}
}

// Inserted reports that text was inserted before the given 1-based line.
func (r *Reporter) Inserted(text string, line int) {
	fmt.Fprintf(r.out, "%s %s to line %d\n", r.verb.Render("Insert"), r.value.Render(text), line)
}

// NotFound reports that no line contained search.
func (r *Reporter) NotFound(search string) {
	fmt.Fprintf(r.out, "%s %s %s\n", r.warning.Render("pattern"), r.value.Render(search), r.warning.Render("not found!"))
}

// Replaced reports a replace-mode run.
func (r *Reporter) Replaced(pattern, text string) {
	fmt.Fprintf(r.out, "%s %s to %s\n", r.verb.Render("Replace"), r.value.Render(pattern), r.value.Render(text))
}
