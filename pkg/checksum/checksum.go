// Package checksum hashes files with BLAKE3 so copies can be verified.
package checksum

import (
	"encoding/hex"
	"io"

	"github.com/arthur-debert/ddlcmod/pkg/errors"
	"github.com/arthur-debert/ddlcmod/pkg/types"
	"lukechampine.com/blake3"
)

// Size is the digest length in bytes
const Size = 32

// File returns the hex BLAKE3 digest of the file at path.
func File(fsys types.FS, path string) (string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot open %s for hashing", path)
	}
	defer f.Close()

	h := blake3.New(Size, nil)
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s for hashing", path)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Same reports whether the files at a and b have identical content.
func Same(fsys types.FS, a, b string) (bool, error) {
	ha, err := File(fsys, a)
	if err != nil {
		return false, err
	}
	hb, err := File(fsys, b)
	if err != nil {
		return false, err
	}
	return ha == hb, nil
}
