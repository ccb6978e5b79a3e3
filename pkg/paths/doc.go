// Package paths provides centralized path handling for ddlcmod.
//
// It resolves the per-user locations of the configuration and log files
// following the XDG Base Directory specification, and expands paths typed
// by users (a leading ~, environment variables).
//
// # Environment Variables
//
//   - DDLCMOD_CONFIG_DIR: overrides $XDG_CONFIG_HOME/ddlcmod
//   - DDLCMOD_STATE_DIR: overrides $XDG_STATE_HOME/ddlcmod, where the log lives
package paths
