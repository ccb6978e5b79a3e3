// Package classify turns an extracted archive into an installation plan.
//
// It first finds the payload root, the first directory in a pre-order walk
// that directly contains one of the target directories. Everything under
// that root is then classified in walk order: a directory's files first,
// then the directories it merges, then the remaining subdirectories
// recursively. Merged directories are not descended into; they are applied
// whole. Children are visited in lexical order, so the same tree always
// yields the same plan.
package classify

import (
	"path"
	"path/filepath"

	"github.com/arthur-debert/ddlcmod/pkg/errors"
	"github.com/arthur-debert/ddlcmod/pkg/logging"
	"github.com/arthur-debert/ddlcmod/pkg/types"
	"github.com/rs/zerolog"
)

// Classifier applies Rules to an extracted tree.
type Classifier struct {
	fs     types.FS
	rules  Rules
	log    types.LogSink
	logger zerolog.Logger
}

// NewClassifier creates a classifier. A nil log discards user messages.
func NewClassifier(fsys types.FS, rules Rules, log types.LogSink) *Classifier {
	if log == nil {
		log = types.NopLog{}
	}
	return &Classifier{
		fs:     fsys,
		rules:  rules,
		log:    log,
		logger: logging.GetLogger("classify"),
	}
}

// FindPayloadRoot returns the first directory under extractDir, extractDir
// included, whose immediate subdirectories include a target directory.
// found is false when there is none.
func (c *Classifier) FindPayloadRoot(extractDir string) (root string, found bool, err error) {
	entries, err := c.fs.ReadDir(extractDir)
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "cannot read directory %s", extractDir)
	}

	for _, entry := range entries {
		if entry.IsDir() && c.rules.IsTargetDir(entry.Name()) {
			return extractDir, true, nil
		}
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		root, found, err := c.FindPayloadRoot(filepath.Join(extractDir, entry.Name()))
		if err != nil || found {
			return root, found, err
		}
	}
	return "", false, nil
}

// Classify builds the plan for installing extractDir's payload into target.
// A tree without a payload root yields an empty plan, not an error.
func (c *Classifier) Classify(extractDir, target string) (*types.Plan, error) {
	done := logging.LogOperationStart(c.logger, "classify")
	defer done()

	plan := &types.Plan{ExtractDir: extractDir, Target: target}

	root, found, err := c.FindPayloadRoot(extractDir)
	if err != nil {
		return nil, err
	}
	if !found {
		c.log.Logf("None of the target directories found in the extracted path.")
		c.logger.Warn().Str("dir", extractDir).Msg("No payload root found")
		return plan, nil
	}
	plan.PayloadRoot = root
	c.logger.Debug().Str("root", root).Msg("Payload root found")

	rel, err := filepath.Rel(extractDir, root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "payload root %s is outside %s", root, extractDir)
	}
	if err := c.walk(plan, root, filepath.ToSlash(rel)); err != nil {
		return nil, err
	}

	c.logger.Info().
		Str("root", root).
		Int("steps", len(plan.Steps)).
		Int("executables", plan.Count(types.KindExecutable)).
		Int("dataFiles", plan.Count(types.KindDataFile)).
		Int("mergeDirs", plan.Count(types.KindMergeDirectory)).
		Bool("launcher", plan.HasLauncher).
		Msg("Classification complete")
	return plan, nil
}

// walk classifies dir, whose path relative to the extraction root is rel.
func (c *Classifier) walk(plan *types.Plan, dir, rel string) error {
	entries, err := c.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read directory %s", dir)
	}

	var descend []string
	for _, entry := range entries {
		if entry.IsDir() || !entry.Type().IsRegular() {
			continue
		}
		kind := c.rules.FileKind(entry.Name())
		if kind == types.KindIgnore {
			c.logger.Trace().Str("file", entry.Name()).Msg("Ignoring file")
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", filepath.Join(dir, entry.Name()))
		}
		c.addStep(plan, dir, rel, entry.Name(), false, info.Size(), kind)
		if kind == types.KindExecutable && c.rules.IsLauncher(entry.Name()) {
			plan.HasLauncher = true
		}
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if c.rules.DirKind(entry.Name()) == types.KindMergeDirectory {
			c.addStep(plan, dir, rel, entry.Name(), true, 0, types.KindMergeDirectory)
			continue
		}
		descend = append(descend, entry.Name())
	}

	for _, name := range descend {
		if err := c.walk(plan, filepath.Join(dir, name), path.Join(rel, name)); err != nil {
			return err
		}
	}
	return nil
}

func (c *Classifier) addStep(plan *types.Plan, dir, rel, name string, isDir bool, size int64, kind types.Kind) {
	step := types.PlanStep{
		Entry: types.ArchiveEntry{
			RelPath: path.Join(rel, name),
			Name:    name,
			IsDir:   isDir,
			Size:    size,
			Parent:  rel,
		},
		Source:      filepath.Join(dir, name),
		Destination: c.rules.Destination(plan.Target, name, kind),
		Kind:        kind,
	}
	plan.Steps = append(plan.Steps, step)
	c.logger.Debug().
		Str("entry", step.Entry.RelPath).
		Str("kind", kind.String()).
		Str("dest", step.Destination).
		Msg("Classified entry")
}
