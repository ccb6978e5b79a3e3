package steam

import "github.com/arthur-debert/ddlcmod/pkg/errors"

// RootFinder returns the base Steam installation directory.
type RootFinder interface {
	SteamRoot() (string, error)
}

// RootFunc adapts a function to RootFinder.
type RootFunc func() (string, error)

// SteamRoot implements RootFinder
func (f RootFunc) SteamRoot() (string, error) { return f() }

// StaticRoot is a RootFinder with a fixed answer, used when the Steam root
// is configured explicitly.
type StaticRoot string

// SteamRoot implements RootFinder
func (s StaticRoot) SteamRoot() (string, error) {
	if s == "" {
		return "", errors.New(errors.ErrLocator, "no Steam root configured")
	}
	return string(s), nil
}
