package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette. Each color carries a light and a dark terminal variant.
var (
	// AccentColor is the game's pink, used for titles
	AccentColor = lipgloss.AdaptiveColor{Light: "#C2185B", Dark: "#F48FB1"}
	// PathColor marks file system paths
	PathColor = lipgloss.AdaptiveColor{Light: "#5E35B1", Dark: "#B39DDB"}

	SuccessColor = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#EF9A9A"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#EF6C00", Dark: "#FFCC80"}

	MutedColor = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9E9E9E"}
)

// One color per plan step kind
var (
	ExecutableColor = lipgloss.AdaptiveColor{Light: "#AD1457", Dark: "#F06292"}
	DataFileColor   = lipgloss.AdaptiveColor{Light: "#6A1B9A", Dark: "#CE93D8"}
	MergeDirColor   = lipgloss.AdaptiveColor{Light: "#1565C0", Dark: "#90CAF9"}
)
