// Package config loads ddlcmod's configuration.
//
// Sources are layered with koanf, later ones winning:
//
//  1. embedded/defaults.toml
//  2. the user file, $XDG_CONFIG_HOME/ddlcmod/config.toml or --config
//  3. DDLCMOD_* environment variables (DDLCMOD_INSTALL_VERIFY=true)
//  4. command-line flag overrides
//
// List values given as strings, as environment variables always are, are
// split on commas.
package config
