package style

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// markupTags are the tags Render understands. Anything else is printed as is.
var markupTags = map[string]lipgloss.Style{
	"title":   TitleStyle,
	"path":    PathStyle,
	"success": SuccessStyle,
	"warning": WarningStyle,
}

var markupPattern = regexp.MustCompile(`\[([a-z]+)\](.*?)\[/([a-z]+)\]`)

// Render replaces [tag]text[/tag] spans with styled text. Tags do not nest.
func Render(text string) string {
	return markupPattern.ReplaceAllStringFunc(text, func(span string) string {
		m := markupPattern.FindStringSubmatch(span)
		st, ok := markupTags[m[1]]
		if !ok || m[1] != m[3] {
			return span
		}
		return st.Render(m[2])
	})
}
