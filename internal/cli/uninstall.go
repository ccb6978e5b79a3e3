package cli

import (
	"fmt"

	"github.com/arthur-debert/ddlcmod/pkg/style"
	"github.com/arthur-debert/ddlcmod/pkg/types"
	"github.com/arthur-debert/ddlcmod/pkg/ui"
	"github.com/arthur-debert/ddlcmod/pkg/ui/confirmations"
	"github.com/arthur-debert/ddlcmod/pkg/uninstall"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newUninstallCmd(rt *runtime) *cobra.Command {
	var (
		target string
		auto   bool
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: MsgUninstallShort,
		Long:  MsgUninstallLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rt.loadConfig(nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			sink := ui.NewConsoleLog(out)
			gameDir, err := rt.resolveTarget(cfg, target, auto, sink)
			if err != nil {
				return err
			}

			validator := uninstall.NewValidator(rt.env.FS, cfg.Game.NameFragments, cfg.Game.MarkerFiles)
			dialog := confirmations.NewConsoleDialog(cmd.InOrStdin(), out, yes)

			// The bar is attached only after the prompt so it never covers it
			var bar *ui.ProgressBar
			gate := types.ConfirmFunc(func(title, message string) (bool, error) {
				ok, err := dialog.Confirm(title, message)
				if ok && err == nil {
					_, bar = progressBar(cmd.ErrOrStderr(), sink, "Uninstalling", false)
				}
				return ok, err
			})
			progress := types.ProgressFunc(func(value, max int64) {
				if bar != nil {
					bar.SetProgress(value, max)
				}
			})

			u := uninstall.NewUninstaller(rt.env.FS, validator, uninstall.Collaborators{
				Confirm:  gate,
				Log:      sink,
				Progress: progress,
			})
			outcome, err := u.Uninstall(types.InstallTarget(gameDir))
			if err != nil {
				if bar != nil {
					bar.Clear()
				}
				return err
			}
			log.Info().Str("target", gameDir).Str("outcome", outcome.String()).Msg("Uninstall finished")
			if outcome == uninstall.OutcomeCancelled {
				fmt.Fprintln(out, statusLine(style.StatusCancelled, MsgUninstallCancelled))
				return nil
			}
			fmt.Fprintln(out, statusLine(style.StatusSuccess, fmt.Sprintf(MsgUninstallDone, gameDir)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", MsgFlagTarget)
	cmd.Flags().BoolVar(&auto, "auto", false, MsgFlagAuto)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	cmd.MarkFlagsMutuallyExclusive("target", "auto")

	return cmd
}
