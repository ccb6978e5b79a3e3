package paths

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	t.Setenv("HOME", "/home/monika")
	t.Setenv("GAMES", "/mnt/games")
	home, err := HomeDirectory()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "blank", in: "   ", want: ""},
		{name: "tilde", in: "~", want: home},
		{name: "tilde slash", in: "~/games/ddlc", want: filepath.Join(home, "games", "ddlc")},
		{name: "other user", in: "~sayori/games", want: "~sayori/games"},
		{name: "env var", in: "$GAMES/ddlc", want: "/mnt/games/ddlc"},
		{name: "absolute", in: "/opt/ddlc", want: "/opt/ddlc"},
		{name: "trimmed", in: "  /opt/ddlc  ", want: "/opt/ddlc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigAndStateDirs(t *testing.T) {
	t.Run("xdg defaults", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		t.Setenv(EnvStateDir, "")
		t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
		t.Setenv("XDG_STATE_HOME", "/xdg/state")
		xdg.Reload()
		t.Cleanup(xdg.Reload)

		assert.Equal(t, "/xdg/config/ddlcmod/config.toml", ConfigFile())
		assert.Equal(t, "/xdg/state/ddlcmod/ddlcmod.log", LogFile())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/custom/config")
		t.Setenv(EnvStateDir, "/custom/state")

		assert.Equal(t, "/custom/config/config.toml", ConfigFile())
		assert.Equal(t, "/custom/state/ddlcmod.log", LogFile())
	})
}
