package style

import (
	"github.com/arthur-debert/ddlcmod/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	// Headers and titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true).
			MarginBottom(1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Status styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)
)

// Plan step styles
var (
	ExecutableStyle = lipgloss.NewStyle().
			Foreground(ExecutableColor).
			Bold(true)

	DataFileStyle = lipgloss.NewStyle().
			Foreground(DataFileColor).
			Bold(true)

	MergeDirStyle = lipgloss.NewStyle().
			Foreground(MergeDirColor).
			Bold(true)
)

// KindStyle returns the style used for a plan step of the given kind
func KindStyle(kind types.Kind) lipgloss.Style {
	switch kind {
	case types.KindExecutable:
		return ExecutableStyle
	case types.KindDataFile:
		return DataFileStyle
	case types.KindMergeDirectory:
		return MergeDirStyle
	default:
		return MutedStyle
	}
}
