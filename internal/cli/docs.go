package cli

import (
	"embed"
	"io/fs"
	"os"

	"github.com/arthur-debert/ddlcmod/pkg/cobrax/topics"
	"github.com/arthur-debert/ddlcmod/pkg/ui"
	"github.com/spf13/cobra"
)

//go:embed docs/*.md
var docsFS embed.FS

func newDocsCmd() *cobra.Command {
	sub, err := fs.Sub(docsFS, "docs")
	if err != nil {
		panic(err)
	}

	var renderer topics.Renderer = topics.PlainRenderer{}
	if ui.IsTerminal(os.Stdout) {
		renderer = topics.NewGlamourRenderer()
	}

	tm, err := topics.New(sub, topics.Options{Renderer: renderer})
	if err != nil {
		panic(err)
	}
	return topics.NewCommand("docs", MsgDocsShort, tm)
}
