package archive

import (
	"archive/tar"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/arthur-debert/ddlcmod/pkg/errors"
	"github.com/arthur-debert/ddlcmod/pkg/types"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/pgzip"
	"github.com/ulikunitz/xz"
)

// Member is one entry of an archive index
type Member struct {
	// Name is the slash-separated path inside the archive
	Name     string
	Size     int64
	IsDir    bool
	Regular  bool
	Mode     fs.FileMode
	Modified time.Time
}

// walker iterates over archive members in index order
type walker interface {
	// Next returns the next member and a function opening its content.
	// The opener is only valid until the following call to Next, and the
	// caller closes what it returns.
	Next() (Member, func() (io.ReadCloser, error), error)
	Close() error
}

// openWalker opens path on fsys and returns a walker for its format.
func openWalker(fsys types.FS, archivePath string) (walker, error) {
	format, err := DetectFormat(archivePath)
	if err != nil {
		return nil, err
	}

	f, err := fsys.Open(archivePath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidArchive, "cannot open archive %s", archivePath)
	}

	switch format {
	case FormatZip:
		info, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, errors.Wrapf(err, errors.ErrInvalidArchive, "cannot stat archive %s", archivePath)
		}
		zr, err := zip.NewReader(f, info.Size())
		if err != nil {
			f.Close()
			return nil, errors.Wrapf(err, errors.ErrInvalidArchive, "%s is not a valid zip archive", archivePath)
		}
		return &zipWalker{file: f, files: zr.File}, nil
	default:
		var r io.Reader = f
		var closers []io.Closer
		switch format {
		case FormatTarGz:
			gz, err := pgzip.NewReader(f)
			if err != nil {
				f.Close()
				return nil, errors.Wrapf(err, errors.ErrInvalidArchive, "failed to create gzip reader for %s", archivePath)
			}
			closers = append(closers, gz)
			r = gz
		case FormatTarXz:
			xzr, err := xz.NewReader(f)
			if err != nil {
				f.Close()
				return nil, errors.Wrapf(err, errors.ErrInvalidArchive, "failed to create xz reader for %s", archivePath)
			}
			r = xzr
		}
		closers = append(closers, f)
		return &tarWalker{tr: tar.NewReader(r), closers: closers, name: archivePath}, nil
	}
}

type zipWalker struct {
	file  types.File
	files []*zip.File
	next  int
}

func (z *zipWalker) Next() (Member, func() (io.ReadCloser, error), error) {
	if z.next >= len(z.files) {
		return Member{}, nil, io.EOF
	}
	zf := z.files[z.next]
	z.next++

	info := zf.FileInfo()
	m := Member{
		Name:     zf.Name,
		Size:     int64(zf.UncompressedSize64),
		IsDir:    info.IsDir() || strings.HasSuffix(zf.Name, "/"),
		Mode:     info.Mode(),
		Modified: zf.Modified,
	}
	m.Regular = !m.IsDir && info.Mode().IsRegular()
	if m.IsDir {
		m.Size = 0
	}

	return m, zf.Open, nil
}

func (z *zipWalker) Close() error {
	return z.file.Close()
}

type tarWalker struct {
	tr      *tar.Reader
	closers []io.Closer
	name    string
}

func (t *tarWalker) Next() (Member, func() (io.ReadCloser, error), error) {
	for {
		hdr, err := t.tr.Next()
		if err == io.EOF {
			return Member{}, nil, io.EOF
		}
		if err != nil {
			return Member{}, nil, errors.Wrapf(err, errors.ErrInvalidArchive, "error reading tar header in %s", t.name)
		}

		// Global PAX headers carry no member
		if hdr.Typeflag == tar.TypeXGlobalHeader {
			continue
		}

		m := Member{
			Name:     hdr.Name,
			Size:     hdr.Size,
			IsDir:    hdr.Typeflag == tar.TypeDir,
			Regular:  hdr.Typeflag == tar.TypeReg,
			Mode:     fs.FileMode(hdr.Mode).Perm(),
			Modified: hdr.ModTime,
		}
		if !m.Regular {
			m.Size = 0
		}
		opener := func() (io.ReadCloser, error) {
			return io.NopCloser(t.tr), nil
		}
		return m, opener, nil
	}
}

func (t *tarWalker) Close() error {
	var first error
	for _, c := range t.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// List reads the archive index without extracting anything.
func List(fsys types.FS, archivePath string) ([]Member, error) {
	w, err := openWalker(fsys, archivePath)
	if err != nil {
		return nil, err
	}
	defer w.Close()

	var members []Member
	for {
		m, _, err := w.Next()
		if err == io.EOF {
			return members, nil
		}
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
}

// memberPath normalises an archive member name into a relative slash path.
// ok is false for absolute names and names that climb out of the root
// ("zip slip"). An empty rel with ok set means the root itself.
func memberPath(name string) (rel string, ok bool) {
	name = strings.ReplaceAll(name, "\\", "/")
	if strings.HasPrefix(name, "/") || (len(name) > 1 && name[1] == ':') {
		return "", false
	}
	depth := 0
	for _, part := range strings.Split(name, "/") {
		switch part {
		case "", ".":
		case "..":
			depth--
			if depth < 0 {
				return "", false
			}
		default:
			depth++
		}
	}
	rel = strings.TrimPrefix(path.Clean("/"+name), "/")
	return rel, true
}
