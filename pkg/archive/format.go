// Package archive lists and extracts mod archives.
//
// Zip archives are read through klauspost/compress/zip. Tarballs may be
// plain, gzip (pgzip) or xz compressed. Everything goes through types.FS so
// extraction can be exercised against an in-memory filesystem.
package archive

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/ddlcmod/pkg/errors"
)

// Format identifies an archive container
type Format int

const (
	FormatUnknown Format = iota
	FormatZip
	FormatTar
	FormatTarGz
	FormatTarXz
)

// suffixes is checked longest first so ".tar.gz" wins over ".gz"
var suffixes = []struct {
	ext    string
	format Format
}{
	{".tar.gz", FormatTarGz},
	{".tar.xz", FormatTarXz},
	{".tgz", FormatTarGz},
	{".txz", FormatTarXz},
	{".tar", FormatTar},
	{".zip", FormatZip},
}

// DefaultExtensions are the archive suffixes accepted when none are configured
var DefaultExtensions = []string{".zip", ".tar.gz", ".tgz", ".tar.xz", ".txz", ".tar"}

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatZip:
		return "zip"
	case FormatTar:
		return "tar"
	case FormatTarGz:
		return "tar.gz"
	case FormatTarXz:
		return "tar.xz"
	default:
		return "unknown"
	}
}

// matchSuffix returns the recognised suffix of path and its format
func matchSuffix(path string) (string, Format) {
	lower := strings.ToLower(path)
	for _, s := range suffixes {
		if strings.HasSuffix(lower, s.ext) {
			return s.ext, s.format
		}
	}
	return "", FormatUnknown
}

// DetectFormat determines the archive format from the file name.
func DetectFormat(path string) (Format, error) {
	if _, format := matchSuffix(path); format != FormatUnknown {
		return format, nil
	}
	return FormatUnknown, errors.Newf(errors.ErrInvalidArchive,
		"%s is not a supported archive", filepath.Base(path)).WithDetail("path", path)
}

// Validate checks that path names a supported archive whose suffix is in
// allowed (case-insensitive). An empty allowed list means DefaultExtensions.
func Validate(path string, allowed []string) (Format, error) {
	if strings.TrimSpace(path) == "" {
		return FormatUnknown, errors.New(errors.ErrInvalidArchive, "no archive specified")
	}
	if len(allowed) == 0 {
		allowed = DefaultExtensions
	}
	ext, format := matchSuffix(path)
	if format == FormatUnknown {
		return FormatUnknown, errors.Newf(errors.ErrInvalidArchive,
			"the provided path does not point to a supported archive: %s", path).
			WithDetail("allowed", allowed)
	}
	for _, a := range allowed {
		if strings.EqualFold(a, ext) {
			return format, nil
		}
	}
	return FormatUnknown, errors.Newf(errors.ErrInvalidArchive,
		"archives ending in %s are not enabled", ext).WithDetail("allowed", allowed)
}

// ExtractPath returns the sibling directory an archive is extracted into:
// the archive path with its archive suffix removed.
func ExtractPath(archivePath string) string {
	ext, format := matchSuffix(archivePath)
	if format == FormatUnknown {
		return strings.TrimSuffix(archivePath, filepath.Ext(archivePath))
	}
	return archivePath[:len(archivePath)-len(ext)]
}
