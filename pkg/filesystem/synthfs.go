package filesystem

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/ddlcmod/pkg/logging"
	"github.com/arthur-debert/ddlcmod/pkg/types"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	synthfilesystem "github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/rs/zerolog"
)

// ErrStillPresent is reported when a delete operation finished but the
// path is still there.
var ErrStillPresent = stderrors.New("path still present after delete")

// SynthAdapter presents a types.FS through the synthfs filesystem
// interfaces so synthfs operations act on the same tree as the installer.
type SynthAdapter struct {
	fs types.FS
}

var _ synthfilesystem.FullFileSystem = (*SynthAdapter)(nil)

// NewSynthAdapter wraps fsys
func NewSynthAdapter(fsys types.FS) *SynthAdapter {
	return &SynthAdapter{fs: fsys}
}

func (a *SynthAdapter) Open(name string) (fs.File, error) {
	f, err := a.fs.Open(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (a *SynthAdapter) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *SynthAdapter) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return a.fs.WriteFile(name, data, perm)
}

func (a *SynthAdapter) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *SynthAdapter) Remove(name string) error {
	return a.fs.Remove(name)
}

func (a *SynthAdapter) RemoveAll(name string) error {
	return a.fs.RemoveAll(name)
}

// Symlink is not supported: mod archives never install links
func (a *SynthAdapter) Symlink(oldname, newname string) error {
	return unsupported("symlink", newname)
}

func (a *SynthAdapter) Readlink(name string) (string, error) {
	return "", unsupported("readlink", name)
}

func (a *SynthAdapter) Rename(oldpath, newpath string) error {
	return unsupported("rename", oldpath)
}

func unsupported(op, path string) error {
	return &fs.PathError{Op: op, Path: path, Err: stderrors.ErrUnsupported}
}

// Runner executes synthfs operations against a types.FS. Every call runs
// its own pipeline, so a caller can account for each finished unit before
// starting the next one.
type Runner struct {
	fs     types.FS
	target *SynthAdapter
	ops    *synthfs.SynthFS
	opts   synthfs.PipelineOptions
	logger zerolog.Logger
}

// NewRunner creates a runner working on fsys
func NewRunner(fsys types.FS) *Runner {
	return &Runner{
		fs:     fsys,
		target: NewSynthAdapter(fsys),
		ops:    synthfs.New(),
		opts:   synthfs.DefaultPipelineOptions(),
		logger: logging.GetLogger("filesystem.runner"),
	}
}

// Run executes op. When the operation itself failed its own error is
// returned rather than the pipeline summary.
func (r *Runner) Run(ctx context.Context, op synthfs.Operation) error {
	result, err := synthfs.RunWithOptions(ctx, r.target, r.opts, op)
	if result != nil {
		for _, raw := range result.GetOperations() {
			res, ok := raw.(synthfs.OperationResult)
			if !ok {
				continue
			}
			r.logger.Trace().
				Str("op_id", string(res.OperationID)).
				Dur("duration", res.Duration).
				Msg("Operation finished")
			if res.Status == synthfs.StatusFailure && res.Error != nil {
				return res.Error
			}
		}
	}
	return err
}

// Apply runs fn as a single custom operation named id
func (r *Runner) Apply(ctx context.Context, id string, fn synthfs.CustomOperationFunc) error {
	return r.Run(ctx, r.ops.CustomOperationWithID(id, fn))
}

// Delete removes path, recursively for directories. synthfs treats a
// failed remove as already gone, so the path is checked afterwards.
func (r *Runner) Delete(ctx context.Context, path string) error {
	if err := r.Run(ctx, r.ops.DeleteWithID("delete:"+path, path)); err != nil {
		return err
	}
	if _, err := r.fs.Lstat(path); err == nil {
		return fmt.Errorf("%s: %w", path, ErrStillPresent)
	}
	return nil
}
