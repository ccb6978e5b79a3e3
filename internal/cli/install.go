package cli

import (
	"fmt"

	"github.com/arthur-debert/ddlcmod/pkg/install"
	"github.com/arthur-debert/ddlcmod/pkg/paths"
	"github.com/arthur-debert/ddlcmod/pkg/style"
	"github.com/arthur-debert/ddlcmod/pkg/ui"
	"github.com/spf13/cobra"
)

func newInstallCmd(rt *runtime) *cobra.Command {
	var (
		target   string
		auto     bool
		verify   bool
		noReveal bool
	)

	cmd := &cobra.Command{
		Use:     "install <archive>",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("verify") {
				overrides["install.verify"] = verify
			}
			if noReveal {
				overrides["install.reveal"] = false
			}
			archivePath, err := paths.Expand(args[0])
			if err != nil {
				return err
			}
			cfg, err := rt.loadConfig(overrides)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			sink := ui.NewConsoleLog(out)
			gameDir, err := rt.resolveTarget(cfg, target, auto, sink)
			if err != nil {
				return err
			}

			progress, bar := progressBar(cmd.ErrOrStderr(), sink, "Installing", true)
			inst := install.NewInstaller(rt.env.FS, cfg.InstallOptions(), install.Collaborators{
				Log:      sink,
				Progress: progress,
				Reveal:   rt.env.Reveal,
			})

			result, err := inst.Install(archivePath, gameDir)
			if err != nil {
				if bar != nil {
					bar.Clear()
				}
				return err
			}

			if result.Plan.Empty() {
				fmt.Fprintln(out, statusLine(style.StatusIgnored, MsgInstallNothing))
				return nil
			}
			fmt.Fprintln(out, statusLine(style.StatusSuccess, fmt.Sprintf(MsgInstallDone, len(result.Plan.Steps), result.Plan.Target)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", MsgFlagTarget)
	cmd.Flags().BoolVar(&auto, "auto", false, MsgFlagAuto)
	cmd.Flags().BoolVar(&verify, "verify", false, MsgFlagVerify)
	cmd.Flags().BoolVar(&noReveal, "no-reveal", false, MsgFlagNoReveal)
	cmd.MarkFlagsMutuallyExclusive("target", "auto")

	return cmd
}

// statusLine prefixes a rendered markup message with its status badge
func statusLine(status style.Status, msg string) string {
	return style.StatusLabel(status) + " " + style.Render(msg)
}
