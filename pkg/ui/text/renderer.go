// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/ddlcmod/pkg/types"
)

// MsgNoPayload is printed for a plan without steps
const MsgNoPayload = "No installable content found in the archive."

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderPlan prints one line per step in write order
func (r *Renderer) RenderPlan(plan *types.Plan) error {
	if plan.Empty() {
		_, err := fmt.Fprintln(r.output, MsgNoPayload)
		return err
	}

	if _, err := fmt.Fprintf(r.output, "Payload root: %s\nTarget: %s\n\n", plan.PayloadRoot, plan.Target); err != nil {
		return err
	}
	for _, step := range plan.Steps {
		if _, err := fmt.Fprintf(r.output, "%-10s %s -> %s\n", step.Kind, step.Entry.RelPath, step.Destination); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(r.output, "\n%s\n", Summary(plan))
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return writeErr
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// Summary counts the plan's steps by kind, e.g.
// "3 steps: 1 executable, 1 data file, 1 directory"
func Summary(plan *types.Plan) string {
	s := fmt.Sprintf("%d steps: %d executable, %d data file, %d directory",
		len(plan.Steps),
		plan.Count(types.KindExecutable),
		plan.Count(types.KindDataFile),
		plan.Count(types.KindMergeDirectory))
	if plan.HasLauncher {
		s += " (ships a launcher)"
	}
	return s
}
