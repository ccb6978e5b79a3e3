// Package bytecount sizes directory trees and archives so progress has a
// fixed denominator before any work starts. Nothing here writes.
package bytecount

import (
	"path/filepath"

	"github.com/arthur-debert/ddlcmod/pkg/archive"
	"github.com/arthur-debert/ddlcmod/pkg/errors"
	"github.com/arthur-debert/ddlcmod/pkg/types"
)

// SizeOfTree returns the total size of the regular files below root.
// Directories and symlinks contribute nothing. A regular file root is
// sized on its own.
func SizeOfTree(fsys types.FS, root string) (int64, error) {
	info, err := fsys.Lstat(root)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", root)
	}
	if info.Mode().IsRegular() {
		return info.Size(), nil
	}
	if !info.IsDir() {
		return 0, nil
	}

	entries, err := fsys.ReadDir(root)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileAccess, "cannot read directory %s", root)
	}

	var total int64
	for _, entry := range entries {
		n, err := SizeOfTree(fsys, filepath.Join(root, entry.Name()))
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// SizeOfArchive sums the declared uncompressed size of every member in the
// archive index. Zip archives are sized from the central directory; tar
// archives are scanned header by header.
func SizeOfArchive(fsys types.FS, archivePath string) (int64, error) {
	members, err := archive.List(fsys, archivePath)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, m := range members {
		if m.Regular {
			total += m.Size
		}
	}
	return total, nil
}
