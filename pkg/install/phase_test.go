package install_test

import (
	"testing"

	"github.com/arthur-debert/ddlcmod/pkg/install"
	"github.com/stretchr/testify/assert"
)

func TestPhase_Terminal(t *testing.T) {
	tests := []struct {
		phase    install.Phase
		name     string
		terminal bool
	}{
		{install.PhaseIdle, "idle", false},
		{install.PhaseExtracting, "extracting", false},
		{install.PhaseClassifying, "classifying", false},
		{install.PhaseMerging, "merging", false},
		{install.PhaseRevealingResult, "revealing-result", false},
		{install.PhaseCompleted, "completed", true},
		{install.PhaseFailed, "failed", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.phase.String())
			assert.Equal(t, tt.terminal, tt.phase.Terminal())
		})
	}
}
