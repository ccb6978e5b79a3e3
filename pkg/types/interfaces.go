package types

import (
	"io"
	"io/fs"
	"time"
)

// FS abstracts the filesystem operations used by the installer so the
// engines can run against the real disk or an in-memory tree in tests.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Open(name string) (File, error)
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// Metadata
	Chtimes(name string, atime, mtime time.Time) error
	Chmod(name string, mode fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error

	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}

// File is an open file handle. *os.File and afero.File both satisfy it.
type File interface {
	io.Reader
	io.ReaderAt
	io.Writer
	io.Seeker
	io.Closer
	Stat() (fs.FileInfo, error)
}

// ProgressSink receives progress updates. Install reports bytes in
// [0, max]; uninstall reports a percentage with max fixed at 100.
type ProgressSink interface {
	SetProgress(value, max int64)
}

// ProgressFunc adapts a function to ProgressSink.
type ProgressFunc func(value, max int64)

// SetProgress implements ProgressSink
func (f ProgressFunc) SetProgress(value, max int64) { f(value, max) }

// LogSink receives human-readable, line-oriented messages for the user.
type LogSink interface {
	Logf(format string, args ...interface{})
}

// RevealRequester asks the host environment to show a directory in a file
// browser. Fire and forget: callers report failures but never abort on them.
type RevealRequester interface {
	Reveal(path string) error
}

// NopProgress discards progress updates.
type NopProgress struct{}

// SetProgress implements ProgressSink
func (NopProgress) SetProgress(int64, int64) {}

// NopLog discards log lines.
type NopLog struct{}

// Logf implements LogSink
func (NopLog) Logf(string, ...interface{}) {}
