package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/ddlcmod/internal/version"
	"github.com/arthur-debert/ddlcmod/pkg/config"
	"github.com/arthur-debert/ddlcmod/pkg/errors"
	"github.com/arthur-debert/ddlcmod/pkg/filesystem"
	"github.com/arthur-debert/ddlcmod/pkg/logging"
	"github.com/arthur-debert/ddlcmod/pkg/paths"
	"github.com/arthur-debert/ddlcmod/pkg/steam"
	"github.com/arthur-debert/ddlcmod/pkg/style"
	"github.com/arthur-debert/ddlcmod/pkg/types"
	"github.com/arthur-debert/ddlcmod/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Env is what commands use outside the process besides the standard
// streams, which come from the cobra command.
type Env struct {
	FS types.FS
	// Finder overrides the Steam root lookup when set
	Finder steam.RootFinder
	Reveal types.RevealRequester
}

// DefaultEnv returns the environment of a real run
func DefaultEnv() Env {
	return Env{
		FS:     filesystem.NewOS(),
		Reveal: ui.NewRevealer(),
	}
}

// runtime is shared by all commands of one root
type runtime struct {
	env        Env
	verbosity  int
	configPath string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithEnv(DefaultEnv())
}

// NewRootCmdWithEnv creates the root command running against env
func NewRootCmdWithEnv(env Env) *cobra.Command {
	rt := &runtime{env: env}

	rootCmd := &cobra.Command{
		Use:     "ddlcmod",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(rt.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&rt.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&rt.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddCommand(newInstallCmd(rt))
	rootCmd.AddCommand(newUninstallCmd(rt))
	rootCmd.AddCommand(newLocateCmd(rt))
	rootCmd.AddCommand(newPlanCmd(rt))
	rootCmd.AddCommand(newConfigCmd(rt))
	rootCmd.AddCommand(newDocsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// loadConfig loads the configuration with flag overrides applied
func (rt *runtime) loadConfig(overrides map[string]interface{}) (*config.Config, error) {
	return config.Load(rt.configPath, overrides)
}

func (rt *runtime) rootFinder(cfg *config.Config) steam.RootFinder {
	if rt.env.Finder != nil {
		return rt.env.Finder
	}
	if cfg.Steam.Root != "" {
		root, err := paths.Expand(cfg.Steam.Root)
		if err == nil {
			return steam.StaticRoot(root)
		}
		log.Warn().Err(err).Str("root", cfg.Steam.Root).Msg("Ignoring configured Steam root")
	}
	return steam.NewPlatformRootFinder(rt.env.FS)
}

func (rt *runtime) locator(cfg *config.Config, sink types.LogSink) *steam.Locator {
	return steam.NewLocator(rt.env.FS, rt.rootFinder(cfg), cfg.LocatorOptions(), sink)
}

// resolveTarget returns the expanded target, or the located game
// directory with auto
func (rt *runtime) resolveTarget(cfg *config.Config, target string, auto bool, sink types.LogSink) (string, error) {
	if !auto {
		return paths.Expand(target)
	}
	result := rt.locator(cfg, sink).FindGameDirectory()
	if !result.Found {
		return "", errors.New(errors.ErrNotFound, steam.NotFoundMessage)
	}
	return result.Path, nil
}

// progressBar returns a bar drawn on w when w is a terminal. The sink is
// nil otherwise.
func progressBar(w io.Writer, sink *ui.ConsoleLog, description string, bytes bool) (types.ProgressSink, *ui.ProgressBar) {
	f, ok := w.(*os.File)
	if !ok || !ui.IsTerminal(f) {
		return nil, nil
	}
	bar := ui.NewProgressBar(f, description, bytes)
	sink.AttachBar(bar)
	return bar, bar
}

// PrintError writes err for a user: the message of a coded error without
// its code.
func PrintError(w io.Writer, err error) {
	msg := err.Error()
	var modErr *errors.ModError
	if stderrors.As(err, &modErr) {
		msg = modErr.Message
		if modErr.Wrapped != nil {
			msg += ": " + modErr.Wrapped.Error()
		}
	}
	fmt.Fprintln(w, style.ErrorStyle.Render("Error:"), msg)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ddlcmod version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, "Built:  %s\n", version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(ddlcmod completion bash)

Zsh:
  $ ddlcmod completion zsh > "${fpath[1]}/_ddlcmod"

Fish:
  $ ddlcmod completion fish | source

PowerShell:
  PS> ddlcmod completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
