package testutil

import (
	"io/fs"
	"path/filepath"
	"time"

	"github.com/arthur-debert/ddlcmod/pkg/types"
)

// FaultyFS wraps a types.FS and fails selected operations on selected paths.
type FaultyFS struct {
	types.FS
	faults map[string]error
}

// NewFaultyFS wraps inner with an empty fault table
func NewFaultyFS(inner types.FS) *FaultyFS {
	return &FaultyFS{FS: inner, faults: make(map[string]error)}
}

// FailOn makes op ("open", "openfile", "remove", "mkdir", "stat", "readdir",
// "chtimes") on path return err.
func (f *FaultyFS) FailOn(op, path string, err error) *FaultyFS {
	f.faults[op+":"+filepath.Clean(path)] = err
	return f
}

func (f *FaultyFS) fault(op, path string) error {
	return f.faults[op+":"+filepath.Clean(path)]
}

func (f *FaultyFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.fault("stat", name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FaultyFS) Open(name string) (types.File, error) {
	if err := f.fault("open", name); err != nil {
		return nil, err
	}
	return f.FS.Open(name)
}

func (f *FaultyFS) OpenFile(name string, flag int, perm fs.FileMode) (types.File, error) {
	if err := f.fault("openfile", name); err != nil {
		return nil, err
	}
	return f.FS.OpenFile(name, flag, perm)
}

func (f *FaultyFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.fault("mkdir", path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FaultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.fault("readdir", name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *FaultyFS) Remove(name string) error {
	if err := f.fault("remove", name); err != nil {
		return err
	}
	return f.FS.Remove(name)
}

func (f *FaultyFS) Chtimes(name string, atime, mtime time.Time) error {
	if err := f.fault("chtimes", name); err != nil {
		return err
	}
	return f.FS.Chtimes(name, atime, mtime)
}
