package cli

import (
	"github.com/arthur-debert/ddlcmod/pkg/install"
	"github.com/arthur-debert/ddlcmod/pkg/paths"
	"github.com/arthur-debert/ddlcmod/pkg/types"
	"github.com/arthur-debert/ddlcmod/pkg/ui"
	"github.com/spf13/cobra"
)

func newPlanCmd(rt *runtime) *cobra.Command {
	var (
		target string
		auto   bool
		format string
	)

	cmd := &cobra.Command{
		Use:     "plan <archive>",
		Short:   MsgPlanShort,
		Long:    MsgPlanLong,
		Example: MsgPlanExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}
			archivePath, err := paths.Expand(args[0])
			if err != nil {
				return err
			}
			cfg, err := rt.loadConfig(nil)
			if err != nil {
				return err
			}

			// Keep stdout clean for machine-readable formats
			var sink types.LogSink = types.NopLog{}
			if rt.verbosity > 0 {
				sink = ui.NewConsoleLog(cmd.ErrOrStderr())
			}

			gameDir, err := rt.resolveTarget(cfg, target, auto, sink)
			if err != nil {
				return err
			}

			inst := install.NewInstaller(rt.env.FS, cfg.InstallOptions(), install.Collaborators{Log: sink})
			plan, err := inst.Preview(archivePath, gameDir)
			if err != nil {
				return err
			}

			renderer, err := ui.NewRenderer(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderPlan(plan)
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", MsgFlagTarget)
	cmd.Flags().BoolVar(&auto, "auto", false, MsgFlagAuto)
	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)
	cmd.MarkFlagsMutuallyExclusive("target", "auto")

	return cmd
}
