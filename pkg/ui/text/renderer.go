// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/sdcops/pkg/errors"
	"github.com/arthur-debert/sdcops/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	summary, ok := display.Summarize(result)
	if !ok {
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
	_, err := io.WriteString(r.output, Format(summary))
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %v\n", err)
	if out, ok := errors.GetErrorDetails(err)["output"].(string); ok && strings.TrimSpace(out) != "" {
		b.WriteString(indent(strings.TrimRight(out, "\n")))
	}
	_, werr := io.WriteString(r.output, b.String())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// Format lays out a summary as plain lines.
func Format(s *display.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", s.Status, s.Subject)
	for _, f := range s.Fields {
		fmt.Fprintf(&b, "  %-9s %s\n", f.Key+":", f.Value)
	}
	if s.Diff != "" {
		b.WriteString(indent(strings.TrimRight(s.Diff, "\n")))
	}
	if s.Body != "" {
		b.WriteString(indent(s.Body))
	}
	return b.String()
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n") + "\n"
}
