// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/ddlcmod/pkg/style"
	"github.com/arthur-debert/ddlcmod/pkg/types"
	"github.com/arthur-debert/ddlcmod/pkg/ui/text"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output using pterm tables and lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderPlan renders the plan as a table with one row per step
func (r *Renderer) RenderPlan(plan *types.Plan) error {
	if plan.Empty() {
		_, err := fmt.Fprintln(r.output, style.WarningStyle.Render(text.MsgNoPayload))
		return err
	}

	header := style.Render(fmt.Sprintf("[title]Install plan[/title]\nPayload root: [path]%s[/path]\nTarget:       [path]%s[/path]",
		plan.PayloadRoot, plan.Target))
	if _, err := fmt.Fprintln(r.output, style.StatusLabel(style.StatusQueue)+" "+header); err != nil {
		return err
	}

	data := pterm.TableData{{"#", "Kind", "Entry", "Destination"}}
	for i, step := range plan.Steps {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			style.KindStyle(step.Kind).Render(step.Kind.String()),
			step.Entry.RelPath,
			step.Destination,
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.output, table); err != nil {
		return err
	}

	_, err = fmt.Fprintln(r.output, style.MutedStyle.Render(text.Summary(plan)))
	return err
}

// RenderError renders an error with styling
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintln(r.output, style.StatusLabel(style.StatusError)+" "+err.Error())
	return writeErr
}

// RenderMessage renders a message, expanding markup tags
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, style.Render(msg))
	return err
}
