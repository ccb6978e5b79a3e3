//go:build windows

package steam

import (
	"os"
	"strings"

	"github.com/arthur-debert/ddlcmod/pkg/errors"
	"github.com/arthur-debert/ddlcmod/pkg/types"
	"golang.org/x/sys/windows/registry"
)

type registryRootFinder struct{}

// NewPlatformRootFinder reads the Steam install path from the registry.
func NewPlatformRootFinder(types.FS) RootFinder {
	return registryRootFinder{}
}

func (registryRootFinder) SteamRoot() (string, error) {
	keyPath := `SOFTWARE\Valve\Steam`
	if strings.HasSuffix(os.Getenv("PROCESSOR_ARCHITECTURE"), "64") {
		keyPath = `SOFTWARE\Wow6432Node\Valve\Steam`
	}

	k, err := registry.OpenKey(registry.LOCAL_MACHINE, keyPath, registry.READ)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrLocator, "cannot open registry key HKLM\\%s", keyPath)
	}
	defer k.Close()

	value, _, err := k.GetStringValue("InstallPath")
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrLocator, "cannot read InstallPath from HKLM\\%s", keyPath)
	}
	return value, nil
}
