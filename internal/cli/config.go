package cli

import (
	"fmt"

	"github.com/arthur-debert/ddlcmod/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(rt *runtime) *cobra.Command {
	var (
		defaults bool
		path     bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case path:
				fmt.Fprintln(out, config.DefaultPath())
				return nil
			case defaults:
				fmt.Fprint(out, config.DefaultContent())
				return nil
			}

			cfg, err := rt.loadConfig(nil)
			if err != nil {
				return err
			}
			data, err := cfg.ToTOML()
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	cmd.Flags().BoolVar(&path, "path", false, MsgFlagPath)
	cmd.MarkFlagsMutuallyExclusive("defaults", "path")

	return cmd
}
