package install

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/ddlcmod/pkg/checksum"
	"github.com/arthur-debert/ddlcmod/pkg/errors"
	"github.com/arthur-debert/ddlcmod/pkg/filesystem"
	"github.com/arthur-debert/ddlcmod/pkg/logging"
	"github.com/arthur-debert/ddlcmod/pkg/progress"
	"github.com/arthur-debert/ddlcmod/pkg/types"
	synthfilesystem "github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/rs/zerolog"
)

// Engine copies classified entries into the target tree. Each file copy
// and each removal is one synthfs operation.
type Engine struct {
	fs     types.FS
	runner *filesystem.Runner
	log    types.LogSink
	verify bool
	logger zerolog.Logger
}

// NewEngine creates an engine. With verify set every copy is re-hashed and
// a mismatch fails the step.
func NewEngine(fsys types.FS, log types.LogSink, verify bool) *Engine {
	if log == nil {
		log = types.NopLog{}
	}
	return &Engine{
		fs:     fsys,
		runner: filesystem.NewRunner(fsys),
		log:    log,
		verify: verify,
		logger: logging.GetLogger("install.engine"),
	}
}

// Merge copies every file under src into the mirrored path under dst,
// replacing files that already exist. Files only present in dst are left
// alone. Each copied file advances prog, which may be nil.
func (e *Engine) Merge(src, dst string, prog *progress.State) error {
	info, err := e.fs.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", src)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput, "%s is not a directory", src)
	}
	if err := e.fs.MkdirAll(dst, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dst)
	}

	entries, err := e.fs.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read directory %s", src)
	}

	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := e.Merge(from, to, prog); err != nil {
				return err
			}
			continue
		}
		if !entry.Type().IsRegular() {
			e.logger.Debug().Str("path", from).Msg("Skipping non-regular file")
			continue
		}

		if _, err := e.fs.Lstat(to); err == nil {
			e.log.Logf("Overwriting file: %s", to)
		} else {
			e.log.Logf("Copying file: %s", to)
		}
		size, err := e.copyFile(from, to)
		if err != nil {
			return err
		}
		if prog != nil {
			prog.Add(size)
		}
	}
	return nil
}

// OverwriteFile replaces dst with a copy of src. An existing dst is removed
// first, then src is copied with its mode and modification time, and prog
// advances by the file size.
func (e *Engine) OverwriteFile(src, dst string, prog *progress.State) error {
	ctx := context.Background()
	if _, err := e.fs.Lstat(dst); err == nil {
		if err := e.runner.Delete(ctx, dst); err != nil {
			return errors.Wrapf(err, errors.ErrFileDelete, "cannot remove existing file %s", dst)
		}
		e.log.Logf("Removed existing file: %s", dst)
	}

	size, err := e.copyFile(src, dst)
	if err != nil {
		return err
	}
	e.log.Logf("Copied %s to %s", src, dst)
	if prog != nil {
		prog.Add(size)
	}
	return nil
}

// copyFile copies src over dst, creating the parent of dst, as one synthfs
// operation. It returns the number of bytes written.
func (e *Engine) copyFile(src, dst string) (int64, error) {
	var n int64
	err := e.runner.Apply(context.Background(), "copy:"+dst,
		func(ctx context.Context, fsys synthfilesystem.FileSystem) error {
			if err := fsys.MkdirAll(filepath.Dir(dst), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", filepath.Dir(dst))
			}
			var err error
			n, err = e.streamFile(src, dst)
			return err
		})
	return n, err
}

// streamFile copies src over dst keeping permission bits and mtime
func (e *Engine) streamFile(src, dst string) (int64, error) {
	in, err := e.fs.Open(src)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileAccess, "cannot open %s", src)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", src)
	}
	perm := info.Mode().Perm()

	out, err := e.fs.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm|0200)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileCreate, "cannot create %s", dst)
	}
	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", dst)
	}

	e.preserveMetadata(dst, info)

	if e.verify {
		same, err := checksum.Same(e.fs, src, dst)
		if err != nil {
			return n, err
		}
		if !same {
			return n, errors.Newf(errors.ErrFileWrite, "checksum mismatch after copying %s", src).
				WithDetail("destination", dst)
		}
	}

	e.logger.Trace().Str("src", src).Str("dst", dst).Int64("bytes", n).Msg("File copied")
	return n, nil
}

func (e *Engine) preserveMetadata(dst string, info fs.FileInfo) {
	if err := e.fs.Chmod(dst, info.Mode().Perm()); err != nil {
		e.logger.Debug().Err(err).Str("path", dst).Msg("Failed to preserve mode")
	}
	if err := e.fs.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		e.logger.Debug().Err(err).Str("path", dst).Msg("Failed to preserve modification time")
	}
}
