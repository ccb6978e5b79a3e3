package config

import (
	"github.com/arthur-debert/ddlcmod/pkg/classify"
	"github.com/arthur-debert/ddlcmod/pkg/install"
	"github.com/arthur-debert/ddlcmod/pkg/steam"
)

// Config is the effective configuration
type Config struct {
	Game     Game     `koanf:"game" toml:"game" json:"game"`
	Classify Classify `koanf:"classify" toml:"classify" json:"classify"`
	Archive  Archive  `koanf:"archive" toml:"archive" json:"archive"`
	Install  Install  `koanf:"install" toml:"install" json:"install"`
	Steam    Steam    `koanf:"steam" toml:"steam" json:"steam"`
}

// Game identifies the game being modded
type Game struct {
	AppIDs      []string `koanf:"app_ids" toml:"app_ids" json:"appIds"`
	FolderNames []string `koanf:"folder_names" toml:"folder_names" json:"folderNames"`
	// NameFragments must appear in a path before it may be uninstalled
	NameFragments []string `koanf:"name_fragments" toml:"name_fragments" json:"nameFragments"`
	MarkerFiles   []string `koanf:"marker_files" toml:"marker_files" json:"markerFiles"`
}

// Classify mirrors classify.Rules
type Classify struct {
	TargetFiles          []string `koanf:"target_files" toml:"target_files" json:"targetFiles"`
	TargetDirs           []string `koanf:"target_dirs" toml:"target_dirs" json:"targetDirs"`
	BundleSuffixes       []string `koanf:"bundle_suffixes" toml:"bundle_suffixes" json:"bundleSuffixes"`
	ExecutableExtensions []string `koanf:"executable_extensions" toml:"executable_extensions" json:"executableExtensions"`
	LauncherExtensions   []string `koanf:"launcher_extensions" toml:"launcher_extensions" json:"launcherExtensions"`
	DataSubfolder        string   `koanf:"data_subfolder" toml:"data_subfolder" json:"dataSubfolder"`
}

// Archive holds archive handling settings
type Archive struct {
	Extensions []string `koanf:"extensions" toml:"extensions" json:"extensions"`
}

// Install holds install run settings
type Install struct {
	Verify bool `koanf:"verify" toml:"verify" json:"verify"`
	Reveal bool `koanf:"reveal" toml:"reveal" json:"reveal"`
}

// Steam holds discovery settings
type Steam struct {
	// Root skips the platform lookup when set
	Root string `koanf:"root" toml:"root" json:"root"`
}

// Rules returns the classification rules
func (c *Config) Rules() classify.Rules {
	return classify.Rules{
		TargetFiles:    c.Classify.TargetFiles,
		TargetDirs:     c.Classify.TargetDirs,
		BundleSuffixes: c.Classify.BundleSuffixes,
		ExecutableExts: c.Classify.ExecutableExtensions,
		LauncherExts:   c.Classify.LauncherExtensions,
		DataSubfolder:  c.Classify.DataSubfolder,
	}
}

// InstallOptions returns the options for an install run
func (c *Config) InstallOptions() install.Options {
	return install.Options{
		Rules:      c.Rules(),
		Extensions: c.Archive.Extensions,
		Verify:     c.Install.Verify,
		Reveal:     c.Install.Reveal,
	}
}

// LocatorOptions returns what the Steam locator searches for
func (c *Config) LocatorOptions() steam.Options {
	return steam.Options{
		AppIDs:      c.Game.AppIDs,
		FolderNames: c.Game.FolderNames,
	}
}
