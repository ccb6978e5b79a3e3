// Package ui renders command output and implements the console side of
// the installer's collaborators: the log sink, the progress bar, the
// confirmation prompt and the file-browser reveal.
//
// Plans render in four formats: a styled table, plain text, JSON and YAML.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/ddlcmod/pkg/errors"
	"github.com/arthur-debert/ddlcmod/pkg/types"
	"github.com/arthur-debert/ddlcmod/pkg/ui/json"
	"github.com/arthur-debert/ddlcmod/pkg/ui/terminal"
	"github.com/arthur-debert/ddlcmod/pkg/ui/text"
	"github.com/arthur-debert/ddlcmod/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderPlan renders an install plan
	RenderPlan(plan *types.Plan) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	case FormatYAML:
		return yaml.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
