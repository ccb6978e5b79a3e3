// Package install applies a mod archive to a game directory.
//
// Engine holds the two copy primitives: Merge for whole directories and
// OverwriteFile for single files. Installer drives a full run: it sizes
// and extracts the archive, classifies the extracted tree, applies the
// plan in order and optionally reveals the result. A failed step aborts
// the run and files already copied stay in place.
package install

import (
	"github.com/arthur-debert/ddlcmod/pkg/archive"
	"github.com/arthur-debert/ddlcmod/pkg/bytecount"
	"github.com/arthur-debert/ddlcmod/pkg/classify"
	"github.com/arthur-debert/ddlcmod/pkg/errors"
	"github.com/arthur-debert/ddlcmod/pkg/logging"
	"github.com/arthur-debert/ddlcmod/pkg/progress"
	"github.com/arthur-debert/ddlcmod/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures an install run
type Options struct {
	Rules classify.Rules
	// Extensions limits accepted archive types, nil accepts all supported
	Extensions []string
	Verify     bool
	// Reveal opens the target in a file browser when the mod ships a launcher
	Reveal bool
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		Rules:      classify.DefaultRules(),
		Extensions: archive.DefaultExtensions,
		Reveal:     true,
	}
}

// Collaborators are the host-side sinks an install reports to. Nil fields
// are replaced with no-ops.
type Collaborators struct {
	Log      types.LogSink
	Progress types.ProgressSink
	Reveal   types.RevealRequester
}

// Result summarises a finished run
type Result struct {
	OperationID string
	Extract     *archive.Result
	Plan        *types.Plan
	// Processed and Total are bytes, Total taken from the archive index
	Processed int64
	Total     int64
	Revealed  bool
	// RevealErr is set when revealing was attempted and failed
	RevealErr error
}

// Installer runs the install flow for one archive at a time.
type Installer struct {
	fs       types.FS
	opts     Options
	log      types.LogSink
	reveal   types.RevealRequester
	progress *progress.State
	phase    Phase
	base     zerolog.Logger
	logger   zerolog.Logger
}

// NewInstaller creates an installer
func NewInstaller(fsys types.FS, opts Options, c Collaborators) *Installer {
	if c.Log == nil {
		c.Log = types.NopLog{}
	}
	return &Installer{
		fs:       fsys,
		opts:     opts,
		log:      c.Log,
		reveal:   c.Reveal,
		progress: progress.New(c.Progress, progress.Bytes),
		base:     logging.GetLogger("install"),
		logger:   logging.GetLogger("install"),
	}
}

// Phase returns the current phase of the running or last run
func (i *Installer) Phase() Phase { return i.phase }

// Progress exposes the byte counter so other goroutines can poll it
func (i *Installer) Progress() *progress.State { return i.progress }

// setPhase moves to p. A run that reached a terminal phase stays there
// until Install resets it.
func (i *Installer) setPhase(p Phase) {
	if i.phase.Terminal() {
		i.logger.Warn().Str("phase", i.phase.String()).Str("to", p.String()).Msg("Ignoring transition out of a terminal phase")
		return
	}
	i.logger.Debug().Str("from", i.phase.String()).Str("to", p.String()).Msg("Install phase changed")
	i.phase = p
}

func (i *Installer) fail(err error) (*Result, error) {
	i.setPhase(PhaseFailed)
	i.log.Logf("Error during processing: %v", err)
	return nil, err
}

// Install extracts archivePath next to itself and applies its payload to
// target. An archive without a recognisable payload completes with an
// empty plan.
func (i *Installer) Install(archivePath, target string) (*Result, error) {
	logger, opID := logging.WithOperation(i.base, "install")
	i.logger = logger
	done := logging.LogOperationStart(logger, "install")
	defer done()

	i.phase = PhaseIdle
	result := &Result{OperationID: opID}
	i.log.Logf("Processing files from: %s to %s", archivePath, target)

	if target == "" {
		return i.fail(errors.New(errors.ErrEmptyTarget, "game directory is empty"))
	}
	if _, err := archive.Validate(archivePath, i.opts.Extensions); err != nil {
		return i.fail(err)
	}

	total, err := bytecount.SizeOfArchive(i.fs, archivePath)
	if err != nil {
		return i.fail(err)
	}
	i.progress.Reset(total)
	result.Total = total

	i.setPhase(PhaseExtracting)
	extracted, err := archive.NewExtractor(i.fs, i.log).Extract(archivePath)
	if err != nil {
		return i.fail(err)
	}
	result.Extract = extracted

	i.setPhase(PhaseClassifying)
	plan, err := classify.NewClassifier(i.fs, i.opts.Rules, i.log).Classify(extracted.Dir, target)
	if err != nil {
		return i.fail(err)
	}
	result.Plan = plan

	i.setPhase(PhaseMerging)
	if err := i.apply(plan); err != nil {
		result.Processed = i.progress.Processed()
		return i.fail(err)
	}
	i.progress.Complete()
	result.Processed = i.progress.Processed()

	i.setPhase(PhaseRevealingResult)
	result.Revealed, result.RevealErr = i.revealTarget(plan)

	i.setPhase(PhaseCompleted)
	i.log.Logf("All files have been processed successfully.")
	logger.Info().
		Str("archive", archivePath).
		Str("target", target).
		Int("steps", len(plan.Steps)).
		Int64("bytes", total).
		Msg("Install completed")
	return result, nil
}

// Preview extracts archivePath and classifies the result against target.
// Nothing below target is touched.
func (i *Installer) Preview(archivePath, target string) (*types.Plan, error) {
	logger, _ := logging.WithOperation(i.base, "preview")
	done := logging.LogOperationStart(logger, "preview")
	defer done()

	if target == "" {
		return nil, errors.New(errors.ErrEmptyTarget, "game directory is empty")
	}
	if _, err := archive.Validate(archivePath, i.opts.Extensions); err != nil {
		return nil, err
	}
	extracted, err := archive.NewExtractor(i.fs, i.log).Extract(archivePath)
	if err != nil {
		return nil, err
	}
	return classify.NewClassifier(i.fs, i.opts.Rules, i.log).Classify(extracted.Dir, target)
}

// apply runs the plan's steps in order
func (i *Installer) apply(plan *types.Plan) error {
	engine := NewEngine(i.fs, i.log, i.opts.Verify)
	for _, step := range plan.Steps {
		var err error
		switch step.Kind {
		case types.KindExecutable:
			i.log.Logf("Moving executable/script: %s to %s", step.Entry.Name, step.Destination)
			err = engine.OverwriteFile(step.Source, step.Destination, i.progress)
		case types.KindDataFile:
			i.log.Logf("Moving target file: %s to %s", step.Entry.Name, step.Destination)
			err = engine.OverwriteFile(step.Source, step.Destination, i.progress)
		case types.KindMergeDirectory:
			i.log.Logf("Copying directory: %s", step.Entry.Name)
			err = engine.Merge(step.Source, step.Destination, i.progress)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// revealTarget shows the target when the mod shipped a launcher. Failures
// are reported but never fail the install.
func (i *Installer) revealTarget(plan *types.Plan) (bool, error) {
	if !plan.HasLauncher || !i.opts.Reveal || i.reveal == nil {
		return false, nil
	}
	if _, err := i.fs.Stat(plan.Target); err != nil {
		i.log.Logf("The specified path does not exist: %s", plan.Target)
		return false, nil
	}
	if err := i.reveal.Reveal(plan.Target); err != nil {
		i.log.Logf("Could not open %s: %v", plan.Target, err)
		i.logger.Warn().Err(err).Str("path", plan.Target).Msg("Reveal failed")
		return false, err
	}
	return true, nil
}
