// Package filesystem provides filesystem implementations for ddlcmod.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem and an afero-backed one used for in-memory tests.
// SynthAdapter and Runner run copy and delete operations through synthfs
// on top of either.
package filesystem
