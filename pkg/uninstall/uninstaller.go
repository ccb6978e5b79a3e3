// Package uninstall removes a game installation after checking that the
// target really looks like one and the user agreed.
package uninstall

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/ddlcmod/pkg/bytecount"
	"github.com/arthur-debert/ddlcmod/pkg/errors"
	"github.com/arthur-debert/ddlcmod/pkg/filesystem"
	"github.com/arthur-debert/ddlcmod/pkg/logging"
	"github.com/arthur-debert/ddlcmod/pkg/progress"
	"github.com/arthur-debert/ddlcmod/pkg/types"
	"github.com/rs/zerolog"
)

const (
	confirmTitle   = "Confirm Uninstall"
	confirmMessage = "Are you sure you want to Uninstall DDLC? This action cannot be undone!"
)

// Outcome is how a run ended when it did not fail
type Outcome int

const (
	OutcomeCompleted Outcome = iota
	// OutcomeCancelled means the user declined and nothing was touched
	OutcomeCancelled
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	if o == OutcomeCancelled {
		return "cancelled"
	}
	return "completed"
}

// Phase is where an uninstall run currently is.
//
//	Idle -> Validating -> ConfirmPending -> Deleting -> Completed
//
// Validating and Deleting may end in Failed, ConfirmPending in Cancelled.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseConfirmPending
	PhaseDeleting
	PhaseCompleted
	PhaseFailed
	PhaseCancelled
)

var phaseNames = map[Phase]string{
	PhaseIdle:           "idle",
	PhaseValidating:     "validating",
	PhaseConfirmPending: "confirm-pending",
	PhaseDeleting:       "deleting",
	PhaseCompleted:      "completed",
	PhaseFailed:         "failed",
	PhaseCancelled:      "cancelled",
}

// String returns the string representation of the phase
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Collaborators are the host-side sinks an uninstall reports to. Confirm
// is required; the others default to no-ops.
type Collaborators struct {
	Confirm  types.ConfirmationGate
	Log      types.LogSink
	Progress types.ProgressSink
}

// Uninstaller deletes validated installations.
type Uninstaller struct {
	fs        types.FS
	runner    *filesystem.Runner
	validator *Validator
	confirm   types.ConfirmationGate
	log       types.LogSink
	progress  *progress.State
	phase     Phase
	logger    zerolog.Logger
}

// NewUninstaller creates an uninstaller
func NewUninstaller(fsys types.FS, validator *Validator, c Collaborators) *Uninstaller {
	if c.Log == nil {
		c.Log = types.NopLog{}
	}
	return &Uninstaller{
		fs:        fsys,
		runner:    filesystem.NewRunner(fsys),
		validator: validator,
		confirm:   c.Confirm,
		log:       c.Log,
		progress:  progress.New(c.Progress, progress.Percent),
		logger:    logging.GetLogger("uninstall"),
	}
}

// Phase returns the current phase of the running or last run
func (u *Uninstaller) Phase() Phase { return u.phase }

// Progress exposes the deletion counter so other goroutines can poll it
func (u *Uninstaller) Progress() *progress.State { return u.progress }

func (u *Uninstaller) setPhase(logger zerolog.Logger, p Phase) {
	logger.Debug().Str("from", u.phase.String()).Str("to", p.String()).Msg("Uninstall phase changed")
	u.phase = p
}

// Uninstall validates target, asks for confirmation once and deletes the
// whole tree bottom-up. Declining returns OutcomeCancelled and no error.
func (u *Uninstaller) Uninstall(target types.InstallTarget) (Outcome, error) {
	logger, _ := logging.WithOperation(u.logger, "uninstall")
	done := logging.LogOperationStart(logger, "uninstall")
	defer done()

	u.phase = PhaseIdle
	path := strings.TrimSpace(string(target))

	u.setPhase(logger, PhaseValidating)
	if err := u.validator.Validate(target); err != nil {
		u.setPhase(logger, PhaseFailed)
		switch errors.GetErrorCode(err) {
		case errors.ErrNotRecognized:
			u.log.Logf("Error: Attempted to delete a non-DDLC directory.")
		case errors.ErrMissingExpectedFiles:
			u.log.Logf("Error: The specified directory lacks expected DDLC files.")
		}
		logger.Warn().Err(err).Str("target", path).Msg("Target failed validation")
		return OutcomeCompleted, err
	}

	u.setPhase(logger, PhaseConfirmPending)
	if u.confirm == nil {
		u.setPhase(logger, PhaseFailed)
		return OutcomeCompleted, errors.New(errors.ErrInternal, "no confirmation gate configured")
	}
	ok, err := u.confirm.Confirm(confirmTitle, confirmMessage)
	if err != nil {
		u.setPhase(logger, PhaseFailed)
		return OutcomeCompleted, errors.Wrap(err, errors.ErrInternal, "confirmation failed")
	}
	if !ok {
		u.setPhase(logger, PhaseCancelled)
		u.log.Logf("Uninstallation cancelled.")
		return OutcomeCancelled, nil
	}

	u.setPhase(logger, PhaseDeleting)
	if err := u.deleteWithProgress(path); err != nil {
		u.setPhase(logger, PhaseFailed)
		u.log.Logf("Error during uninstallation: %v", err)
		return OutcomeCompleted, err
	}

	u.setPhase(logger, PhaseCompleted)
	u.log.Logf("DDLC has been uninstalled successfully from: %s", path)
	logger.Info().Str("target", path).Msg("Uninstall completed")
	return OutcomeCompleted, nil
}

// deleteWithProgress removes root and everything below it, reporting the
// share of bytes deleted so far.
func (u *Uninstaller) deleteWithProgress(root string) error {
	total, err := bytecount.SizeOfTree(u.fs, root)
	if err != nil {
		return err
	}
	u.progress.Reset(total)

	ctx := context.Background()
	if err := u.clear(ctx, root); err != nil {
		return err
	}
	if err := u.runner.Delete(ctx, root); err != nil {
		return errors.Wrapf(err, errors.ErrFileDelete, "cannot remove %s", root)
	}
	u.progress.Complete()
	return nil
}

// clear empties dir: subdirectories first, then its files, then the
// emptied subdirectories themselves. Every removal is one synthfs delete
// operation and each removed file advances the progress.
func (u *Uninstaller) clear(ctx context.Context, dir string) error {
	entries, err := u.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read directory %s", dir)
	}

	var subdirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, filepath.Join(dir, entry.Name()))
		}
	}
	for _, sub := range subdirs {
		if err := u.clear(ctx, sub); err != nil {
			return err
		}
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		var size int64
		if info, err := u.fs.Lstat(path); err == nil && info.Mode().IsRegular() {
			size = info.Size()
		}
		if err := u.runner.Delete(ctx, path); err != nil {
			return errors.Wrapf(err, errors.ErrFileDelete, "cannot remove %s", path)
		}
		u.progress.Add(size)
	}

	for _, sub := range subdirs {
		if err := u.runner.Delete(ctx, sub); err != nil {
			return errors.Wrapf(err, errors.ErrFileDelete, "cannot remove %s", sub)
		}
	}
	return nil
}
