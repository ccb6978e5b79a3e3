package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/ddlcmod/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"install.md":       {Data: []byte("# Install\n\nHow installs work")},
		"option-yes.txt":   {Data: []byte("Skip the confirmation prompt")},
		"nested/locate.md": {Data: []byte("# Locate")},
		"config.txxt":      {Data: []byte("Configuration Guide")},
		"ignore.json":      {Data: []byte("{}")},
	}
}

func TestTopicManager_Scan(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm, err := New(testFS(), Options{})
		require.NoError(t, err)

		assert.Equal(t, []string{"install", "locate", "option-yes"}, tm.ListTopics())

		topic, ok := tm.GetTopic("install")
		require.True(t, ok)
		assert.Equal(t, "# Install\n\nHow installs work", topic.Content)
		assert.Equal(t, "install.md", topic.FilePath)

		_, ok = tm.GetTopic("config")
		assert.False(t, ok)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm, err := New(testFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"config"}, tm.ListTopics())
	})
}

func TestTopicManager_GetTopic_FlagStyle(t *testing.T) {
	tm, err := New(testFS(), Options{})
	require.NoError(t, err)

	for _, name := range []string{"--yes", "-yes", "yes", "option-yes"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-yes", topic.Name)
	}
}

type upperRenderer struct{ formats []string }

func (r *upperRenderer) Render(content, format string) string {
	r.formats = append(r.formats, format)
	return "RENDERED:" + content
}

func runDocs(t *testing.T, tm *TopicManager, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: "ddlcmod"}
	root.AddCommand(NewCommand("docs", "Show documentation", tm))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"docs"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestNewCommand(t *testing.T) {
	renderer := &upperRenderer{}
	tm, err := New(testFS(), Options{Renderer: renderer})
	require.NoError(t, err)

	t.Run("lists topics", func(t *testing.T) {
		out, err := runDocs(t, tm)
		require.NoError(t, err)
		assert.Contains(t, out, "General topics:")
		assert.Contains(t, out, "  install\n")
		assert.Contains(t, out, "Option topics:")
		assert.Contains(t, out, "  --yes\n")
		assert.Contains(t, out, "Use 'ddlcmod docs <topic>'")
	})

	t.Run("renders a topic", func(t *testing.T) {
		out, err := runDocs(t, tm, "install")
		require.NoError(t, err)
		assert.Equal(t, "RENDERED:# Install\n\nHow installs work", out)
		assert.Equal(t, ".md", renderer.formats[len(renderer.formats)-1])
	})

	t.Run("unknown topic", func(t *testing.T) {
		_, err := runDocs(t, tm, "nope")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})
}

func TestNewCommand_NoTopics(t *testing.T) {
	tm, err := New(fstest.MapFS{}, Options{})
	require.NoError(t, err)

	out, err := runDocs(t, tm)
	require.NoError(t, err)
	assert.Contains(t, out, "No topics available.")
}

func TestPlainRenderer(t *testing.T) {
	assert.Equal(t, "text", PlainRenderer{}.Render("text", ".md"))
}

func TestGlamourRenderer_NonMarkdown(t *testing.T) {
	assert.Equal(t, "plain", NewGlamourRenderer().Render("plain", ".txt"))
}
