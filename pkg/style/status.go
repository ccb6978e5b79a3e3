package style

import (
	"github.com/pterm/pterm"
)

// Status is the outcome shown next to an operation in CLI output
type Status string

const (
	StatusSuccess   Status = "success"
	StatusError     Status = "error"
	StatusQueue     Status = "queue"     // planned, not applied yet
	StatusCancelled Status = "cancelled" // user declined
	StatusIgnored   Status = "ignored"
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusSuccess:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case StatusError:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	case StatusQueue:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case StatusCancelled:
		return pterm.NewStyle(pterm.FgYellow, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// StatusLabel renders a short status badge such as " DONE "
func StatusLabel(status Status) string {
	labels := map[Status]string{
		StatusSuccess:   " DONE ",
		StatusError:     " FAIL ",
		StatusQueue:     " PLAN ",
		StatusCancelled: " SKIP ",
		StatusIgnored:   " ---- ",
	}
	label, ok := labels[status]
	if !ok {
		label = " ?? "
	}
	return StatusStyle(status).Sprint(label)
}
