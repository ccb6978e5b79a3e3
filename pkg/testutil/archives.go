package testutil

import (
	"archive/tar"
	"io"
	"os"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/ddlcmod/pkg/types"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/pgzip"
	"github.com/ulikunitz/xz"
)

// ArchiveFiles maps slash-separated archive member names to contents.
// Names ending in "/" are written as explicit directory entries.
type ArchiveFiles map[string]string

// fixtureTime is stamped on every archive member so fixtures are stable
var fixtureTime = time.Date(2017, 9, 22, 12, 0, 0, 0, time.UTC)

func sortedNames(files ArchiveFiles) []string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildZip writes a zip archive containing files to path on fs.
func BuildZip(t *testing.T, fs types.FS, path string, files ArchiveFiles) string {
	t.Helper()

	f, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		t.Fatalf("Failed to create zip %s: %v", path, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, name := range sortedNames(files) {
		hdr := &zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: fixtureTime,
		}
		if strings.HasSuffix(name, "/") {
			hdr.Method = zip.Store
			hdr.SetMode(os.ModeDir | 0755)
		} else {
			hdr.SetMode(0644)
		}
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			t.Fatalf("Failed to add %s to zip: %v", name, err)
		}
		if _, err := io.WriteString(w, files[name]); err != nil {
			t.Fatalf("Failed to write %s to zip: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to finish zip %s: %v", path, err)
	}
	return path
}

// BuildTarGz writes a gzip-compressed tarball containing files to path on fs.
func BuildTarGz(t *testing.T, fs types.FS, path string, files ArchiveFiles) string {
	t.Helper()
	return buildTar(t, fs, path, files, func(w io.Writer) (io.WriteCloser, error) {
		return pgzip.NewWriter(w), nil
	})
}

// BuildTarXz writes an xz-compressed tarball containing files to path on fs.
func BuildTarXz(t *testing.T, fs types.FS, path string, files ArchiveFiles) string {
	t.Helper()
	return buildTar(t, fs, path, files, func(w io.Writer) (io.WriteCloser, error) {
		return xz.NewWriter(w)
	})
}

func buildTar(t *testing.T, fs types.FS, path string, files ArchiveFiles, compress func(io.Writer) (io.WriteCloser, error)) string {
	t.Helper()

	f, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		t.Fatalf("Failed to create tarball %s: %v", path, err)
	}
	defer f.Close()

	cw, err := compress(f)
	if err != nil {
		t.Fatalf("Failed to create compressor for %s: %v", path, err)
	}
	tw := tar.NewWriter(cw)
	for _, name := range sortedNames(files) {
		hdr := &tar.Header{
			Name:    name,
			ModTime: fixtureTime,
			Mode:    0644,
			Size:    int64(len(files[name])),
			Format:  tar.FormatPAX,
		}
		if strings.HasSuffix(name, "/") {
			hdr.Typeflag = tar.TypeDir
			hdr.Mode = 0755
			hdr.Size = 0
		} else {
			hdr.Typeflag = tar.TypeReg
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("Failed to add %s to tarball: %v", name, err)
		}
		if hdr.Typeflag == tar.TypeReg {
			if _, err := io.WriteString(tw, files[name]); err != nil {
				t.Fatalf("Failed to write %s to tarball: %v", name, err)
			}
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("Failed to finish tarball %s: %v", path, err)
	}
	if err := cw.Close(); err != nil {
		t.Fatalf("Failed to flush compressor for %s: %v", path, err)
	}
	return path
}

// TotalSize returns the sum of all file contents in files.
func (files ArchiveFiles) TotalSize() int64 {
	var total int64
	for name, content := range files {
		if !strings.HasSuffix(name, "/") {
			total += int64(len(content))
		}
	}
	return total
}
