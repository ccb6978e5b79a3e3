// Package topics provides topic-based documentation for Cobra CLI
// applications. Topics are text or markdown files read from an fs.FS,
// usually one embedded in the binary, and exposed through a single
// command that lists them or prints one.
package topics

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/ddlcmod/pkg/errors"
	"github.com/spf13/cobra"
)

// TopicManager manages documentation topics
type TopicManager struct {
	fsys       fs.FS
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Topic represents a documentation topic
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Options configures the TopicManager
type Options struct {
	// Extensions is the list of file extensions to consider as topics
	// Defaults to [".txt", ".md"] if not specified
	Extensions []string

	// Renderer for formatting topic content (optional)
	// Defaults to PlainRenderer if not specified
	Renderer Renderer
}

// New creates a TopicManager over fsys and scans it
func New(fsys fs.FS, opts Options) (*TopicManager, error) {
	tm := &TopicManager{
		fsys:       fsys,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}

	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = PlainRenderer{}
	}

	if err := tm.scanTopics(); err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to scan topics")
	}
	return tm, nil
}

func (tm *TopicManager) scanTopics() error {
	return fs.WalkDir(tm.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		supported := false
		for _, validExt := range tm.extensions {
			if ext == validExt {
				supported = true
				break
			}
		}
		if !supported {
			return nil
		}

		content, err := fs.ReadFile(tm.fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		tm.topics[name] = &Topic{
			Name:     name,
			FilePath: p,
			Content:  string(content),
		}
		return nil
	})
}

// GetTopic retrieves a topic by name. Flag-style names ("--yes") also
// match topics named "option-yes".
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	if topic, exists := tm.topics[name]; exists {
		return topic, true
	}

	topic, exists := tm.topics["option-"+name]
	return topic, exists
}

// ListTopics returns all available topic names, sorted
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the topic content through the configured renderer
func (tm *TopicManager) Render(topic *Topic) string {
	return tm.renderer.Render(topic.Content, path.Ext(topic.FilePath))
}

// NewCommand returns a command that lists topics when called bare and
// prints a topic when given its name.
func NewCommand(use, short string, tm *TopicManager) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [topic]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return tm.ListTopics(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				names := tm.ListTopics()
				if len(names) == 0 {
					fmt.Fprintln(out, "No topics available.")
					return nil
				}

				var options, general []string
				for _, name := range names {
					if strings.HasPrefix(name, "option-") {
						options = append(options, strings.TrimPrefix(name, "option-"))
					} else {
						general = append(general, name)
					}
				}

				fmt.Fprintln(out, "Available topics:")
				if len(general) > 0 {
					fmt.Fprintln(out, "\nGeneral topics:")
					for _, name := range general {
						fmt.Fprintf(out, "  %s\n", name)
					}
				}
				if len(options) > 0 {
					fmt.Fprintln(out, "\nOption topics:")
					for _, name := range options {
						fmt.Fprintf(out, "  --%s\n", name)
					}
				}
				fmt.Fprintf(out, "\nUse '%s %s <topic>' to read about a specific topic.\n", cmd.Root().Name(), use)
				return nil
			}

			topic, exists := tm.GetTopic(args[0])
			if !exists {
				return errors.Newf(errors.ErrNotFound, "unknown topic %q", args[0])
			}
			fmt.Fprint(out, tm.Render(topic))
			return nil
		},
	}
}
