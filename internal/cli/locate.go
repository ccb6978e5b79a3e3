package cli

import (
	"fmt"

	"github.com/arthur-debert/ddlcmod/pkg/errors"
	"github.com/arthur-debert/ddlcmod/pkg/steam"
	"github.com/arthur-debert/ddlcmod/pkg/types"
	"github.com/arthur-debert/ddlcmod/pkg/ui"
	"github.com/spf13/cobra"
)

func newLocateCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "locate",
		Short: MsgLocateShort,
		Long:  MsgLocateLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rt.loadConfig(nil)
			if err != nil {
				return err
			}

			// Locator chatter only shows with -v
			var sink types.LogSink = types.NopLog{}
			if rt.verbosity > 0 {
				sink = ui.NewConsoleLog(cmd.ErrOrStderr())
			}

			result := rt.locator(cfg, sink).FindGameDirectory()
			if !result.Found {
				errOut := cmd.ErrOrStderr()
				fmt.Fprintln(errOut, MsgLocateProbed)
				for _, p := range result.Probed {
					fmt.Fprintf(errOut, MsgLocateProbedItem, p)
				}
				return errors.New(errors.ErrNotFound, steam.NotFoundMessage)
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Path)
			return nil
		},
	}
}
