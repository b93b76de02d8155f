// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/sdcops/pkg/errors"
	"github.com/arthur-debert/sdcops/pkg/ui/display"
	"github.com/charmbracelet/lipgloss"
)

// Renderer provides rich terminal output using pterm badges and lipgloss styles
type Renderer struct {
	output   io.Writer
	renderer *lipgloss.Renderer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{
		output:   w,
		renderer: lipgloss.NewRenderer(w),
	}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	summary, ok := display.Summarize(result)
	if !ok {
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
	_, err := io.WriteString(r.output, r.format(summary))
	return err
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	var b strings.Builder
	b.WriteString(StatusStyle(display.StatusError).Sprint(" error "))
	b.WriteString(" ")
	b.WriteString(r.style(RemovedStyle).Render(err.Error()))
	b.WriteString("\n")
	if out, ok := errors.GetErrorDetails(err)["output"].(string); ok && strings.TrimSpace(out) != "" {
		b.WriteString(r.style(BodyStyle).Render(r.style(MutedStyle).Render(strings.TrimRight(out, "\n"))))
		b.WriteString("\n")
	}
	_, werr := io.WriteString(r.output, b.String())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) format(s *display.Summary) string {
	var b strings.Builder

	badge := StatusStyle(s.Status).Sprintf(" %s ", s.Status)
	fmt.Fprintf(&b, "%s %s\n", badge, r.style(SubjectStyle).Render(s.Subject))

	for _, f := range s.Fields {
		fmt.Fprintf(&b, "%s%s\n", r.style(KeyStyle).Render(f.Key), f.Value)
	}
	if s.Diff != "" {
		b.WriteString(r.colorDiff(s.Diff))
	}
	if s.Body != "" {
		b.WriteString(r.style(BodyStyle).Render(s.Body))
		b.WriteString("\n")
	}
	return b.String()
}

// colorDiff colors the added, removed and hunk lines of a unified diff.
func (r *Renderer) colorDiff(diff string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		st := MutedStyle
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			st = SubjectStyle
		case strings.HasPrefix(line, "+"):
			st = AddedStyle
		case strings.HasPrefix(line, "-"):
			st = RemovedStyle
		case strings.HasPrefix(line, "@@"):
			st = HunkStyle
		}
		b.WriteString("  ")
		b.WriteString(r.style(st).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// style binds a package style to this renderer's color profile.
func (r *Renderer) style(st lipgloss.Style) lipgloss.Style {
	return st.Renderer(r.renderer)
}
