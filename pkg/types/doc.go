// Package types defines the core types and interfaces used throughout ddlcmod.
// This includes the filesystem abstraction, the collaborator interfaces the
// engines report through (progress, log, confirmation, reveal), and the
// installation plan produced by archive classification.
package types
