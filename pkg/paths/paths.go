package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/ddlcmod/pkg/errors"
)

// Environment variable names
const (
	EnvConfigDir = "DDLCMOD_CONFIG_DIR"
	EnvStateDir  = "DDLCMOD_STATE_DIR"
	EnvHome      = "HOME"
)

// Fixed names below the XDG directories
const (
	AppDirName     = "ddlcmod"
	ConfigFileName = "config.toml"
	LogFileName    = "ddlcmod.log"
)

// ConfigDir returns the directory holding the user config file
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the default user config file path
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the directory holding the log file
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFile returns the log file path
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// HomeDirectory returns the user's home directory. It first tries
// os.UserHomeDir, then the HOME environment variable.
func HomeDirectory() (string, error) {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home, nil
	}
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	return "", errors.New(errors.ErrFileAccess, "unable to determine home directory")
}

// Expand resolves a leading ~ and environment variables in a path typed by
// a user. "~user" forms are left alone. Empty input stays empty so callers
// can still report a missing path.
func Expand(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}

	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		home, err := HomeDirectory()
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot expand %s", path)
		}
		path = filepath.Join(home, path[1:])
	}

	return os.ExpandEnv(path), nil
}
