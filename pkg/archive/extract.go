package archive

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/ddlcmod/pkg/errors"
	"github.com/arthur-debert/ddlcmod/pkg/logging"
	"github.com/arthur-debert/ddlcmod/pkg/types"
	"github.com/rs/zerolog"
)

// Result describes one extraction run
type Result struct {
	Dir   string
	Files int
	Dirs  int
	// Skipped lists members that could not be written because of a
	// permission collision with existing output
	Skipped []string
}

// Extractor writes archive members below a destination directory
type Extractor struct {
	fs     types.FS
	log    types.LogSink
	logger zerolog.Logger
}

// NewExtractor creates an extractor. A nil log discards user messages.
func NewExtractor(fsys types.FS, log types.LogSink) *Extractor {
	if log == nil {
		log = types.NopLog{}
	}
	return &Extractor{
		fs:     fsys,
		log:    log,
		logger: logging.GetLogger("archive.extract"),
	}
}

// Extract unpacks archivePath into its sibling directory (see ExtractPath).
func (e *Extractor) Extract(archivePath string) (*Result, error) {
	return e.ExtractTo(archivePath, ExtractPath(archivePath))
}

// ExtractTo unpacks archivePath into dest.
//
// A permission error while writing is taken to mean the archive was already
// extracted by an earlier run: the member is skipped with a warning and the
// run continues. Any other failure aborts with ErrExtraction.
func (e *Extractor) ExtractTo(archivePath, dest string) (*Result, error) {
	done := logging.LogOperationStart(e.logger, "extract")
	defer done()

	w, err := openWalker(e.fs, archivePath)
	if err != nil {
		return nil, err
	}
	defer w.Close()

	result := &Result{Dir: dest}
	warned := false
	tolerate := func(err error, name string) bool {
		if !stderrors.Is(err, fs.ErrPermission) {
			return false
		}
		result.Skipped = append(result.Skipped, name)
		if !warned {
			e.log.Logf("Warning: Permission denied during extraction. The archive might have been already extracted.")
			warned = true
		}
		e.logger.Warn().Err(err).Str("member", name).Msg("Skipping member after permission error")
		return true
	}

	if err := e.fs.MkdirAll(dest, 0755); err != nil {
		if tolerate(err, ".") {
			return result, nil
		}
		return nil, errors.Wrapf(err, errors.ErrExtraction, "cannot create extraction directory %s", dest)
	}

	for {
		m, open, err := w.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrExtraction, "failed to read archive")
		}

		rel, ok := memberPath(m.Name)
		if !ok {
			return nil, errors.Newf(errors.ErrExtraction, "illegal file path in archive: %s", m.Name).
				WithDetail("archive", archivePath)
		}
		if rel == "" {
			continue
		}
		target := filepath.Join(dest, filepath.FromSlash(rel))

		switch {
		case m.IsDir:
			if err := e.fs.MkdirAll(target, 0755); err != nil {
				if tolerate(err, m.Name) {
					continue
				}
				return nil, errors.Wrapf(err, errors.ErrExtraction, "failed to create dir %s", target)
			}
			result.Dirs++
		case m.Regular:
			if err := e.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
				if tolerate(err, m.Name) {
					continue
				}
				return nil, errors.Wrapf(err, errors.ErrExtraction, "failed to create parent dir for %s", target)
			}
			if err := e.writeMember(target, m, open); err != nil {
				if tolerate(err, m.Name) {
					continue
				}
				return nil, errors.Wrapf(err, errors.ErrExtraction, "failed to write file %s", target)
			}
			result.Files++
		default:
			e.logger.Debug().Str("member", m.Name).Msg("Skipping unsupported archive entry type")
		}
	}

	e.log.Logf("Extracted archive to: %s", dest)
	e.logger.Info().
		Str("archive", archivePath).
		Str("dest", dest).
		Int("files", result.Files).
		Int("skipped", len(result.Skipped)).
		Msg("Archive extracted")
	return result, nil
}

func (e *Extractor) writeMember(target string, m Member, open func() (io.ReadCloser, error)) error {
	perm := m.Mode.Perm()
	if perm == 0 {
		perm = 0644
	}
	perm |= 0600

	out, err := e.fs.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	rc, err := open()
	if err != nil {
		out.Close()
		return err
	}
	_, err = io.Copy(out, rc)
	rc.Close()
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	if !m.Modified.IsZero() {
		if err := e.fs.Chtimes(target, m.Modified, m.Modified); err != nil {
			e.logger.Debug().Err(err).Str("path", target).Msg("Failed to set file times")
		}
	}
	return nil
}
