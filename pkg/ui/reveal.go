package ui

import (
	"os/exec"
	"runtime"

	"github.com/arthur-debert/ddlcmod/pkg/errors"
	"github.com/arthur-debert/ddlcmod/pkg/logging"
	"github.com/rs/zerolog"
)

// RunFunc starts an external program without waiting for it
type RunFunc func(name string, args ...string) error

// Revealer is the types.RevealRequester of the CLI. It opens a directory
// in the platform's file browser.
type Revealer struct {
	goos   string
	run    RunFunc
	logger zerolog.Logger
}

// NewRevealer creates a revealer for the running platform
func NewRevealer() *Revealer {
	return NewRevealerFor(runtime.GOOS, startDetached)
}

// NewRevealerFor creates a revealer for goos that starts programs with run
func NewRevealerFor(goos string, run RunFunc) *Revealer {
	return &Revealer{
		goos:   goos,
		run:    run,
		logger: logging.GetLogger("ui.reveal"),
	}
}

// Command returns the program and arguments used to show path
func (r *Revealer) Command(path string) (string, []string) {
	switch r.goos {
	case "windows":
		return "explorer", []string{path}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}

// Reveal implements types.RevealRequester
func (r *Revealer) Reveal(path string) error {
	name, args := r.Command(path)
	r.logger.Debug().Str("program", name).Str("path", path).Msg("Revealing directory")
	if err := r.run(name, args...); err != nil {
		return errors.Wrapf(err, errors.ErrReveal, "failed to open %s with %s", path, name)
	}
	return nil
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
