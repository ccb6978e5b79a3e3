package style

import (
	"strings"
	"testing"

	"github.com/arthur-debert/ddlcmod/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestMarkupRender(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:     "path tag",
			input:    "Installed into [path]/games/ddlc[/path]",
			contains: []string{"Installed into", "/games/ddlc"},
		},
		{
			name:     "several tags on one line",
			input:    "[success]Installed[/success] 2 steps into [path]/games/ddlc[/path]",
			contains: []string{"Installed", "2 steps into", "/games/ddlc"},
		},
		{
			name:     "title and warning",
			input:    "[title]Install plan[/title] [warning]Nothing was installed.[/warning]",
			contains: []string{"Install plan", "Nothing was installed."},
		},
		{
			name:     "unknown tags are left alone",
			input:    "[nope]text[/nope]",
			contains: []string{"[nope]text[/nope]"},
		},
		{
			name:     "mismatched tags are left alone",
			input:    "[path]/games[/success]",
			contains: []string{"[path]/games[/success]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Render(tt.input)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			if !strings.HasSuffix(tt.name, "left alone") {
				assert.NotContains(t, out, "[/")
			}
		})
	}
}

func TestKindStyle(t *testing.T) {
	assert.Equal(t, ExecutableStyle, KindStyle(types.KindExecutable))
	assert.Equal(t, DataFileStyle, KindStyle(types.KindDataFile))
	assert.Equal(t, MergeDirStyle, KindStyle(types.KindMergeDirectory))
	assert.Equal(t, MutedStyle, KindStyle(types.KindIgnore))
}

func TestStatusLabel(t *testing.T) {
	for _, status := range []Status{StatusSuccess, StatusError, StatusQueue, StatusCancelled, StatusIgnored} {
		label := StatusLabel(status)
		assert.NotEmpty(t, strings.TrimSpace(label), "status %s", status)
		assert.NotNil(t, StatusStyle(status))
	}
	assert.Contains(t, StatusLabel(StatusSuccess), "DONE")
}
