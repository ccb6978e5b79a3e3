package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Install and uninstall Doki Doki Literature Club mods"
	MsgInstallShort    = "Install a mod archive into the game directory"
	MsgUninstallShort  = "Delete a game installation"
	MsgLocateShort     = "Find the game directory through Steam"
	MsgLocateLong      = "Locate reads the Steam installation and its library manifest and prints the first game directory that exists."
	MsgPlanShort       = "Show where a mod's files would be installed"
	MsgConfigShort     = "Print the effective configuration as TOML"
	MsgDocsShort       = "Display documentation topics"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Write the man page to stdout"

	// Status messages
	MsgInstallDone        = "[success]Installed[/success] %d steps into [path]%s[/path]"
	MsgInstallNothing     = "[warning]Nothing was installed.[/warning] The archive has no game, characters, lib or renpy folder."
	MsgUninstallDone      = "[success]Removed[/success] [path]%s[/path]"
	MsgUninstallCancelled = "[warning]Nothing was deleted.[/warning]"
	MsgLocateProbed       = "Probed:"
	MsgLocateProbedItem   = "  %s\n"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default is $XDG_CONFIG_HOME/ddlcmod/config.toml)"
	MsgFlagTarget   = "Game directory"
	MsgFlagAuto     = "Find the game directory through Steam"
	MsgFlagVerify   = "Compare checksums of every copied file"
	MsgFlagNoReveal = "Do not open the game directory when the install finishes"
	MsgFlagYes      = "Do not ask for confirmation"
	MsgFlagFormat   = "Output format: auto, table, text, json or yaml"
	MsgFlagDefaults = "Print the built-in defaults instead of the effective configuration"
	MsgFlagPath     = "Print the default config file path"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/uninstall-long.txt
	msgUninstallLongRaw string
	MsgUninstallLong    = strings.TrimSpace(msgUninstallLongRaw)

	//go:embed msgs/plan-long.txt
	msgPlanLongRaw string
	MsgPlanLong    = strings.TrimSpace(msgPlanLongRaw)

	//go:embed msgs/plan-example.txt
	msgPlanExampleRaw string
	MsgPlanExample    = strings.TrimRight(msgPlanExampleRaw, "\n")
)
