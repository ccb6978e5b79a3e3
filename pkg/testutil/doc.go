// Package testutil provides utilities for testing ddlcmod components.
//
// Key components:
//   - TestEnvironment: in-memory filesystem plus a virtual root for fixtures
//   - FileTree: declarative directory trees written into a types.FS
//   - Archive builders: zip and tar fixtures written into a types.FS
//   - Recording sinks: progress, log, confirmation, and reveal collaborators
//     that remember every call for assertions
//   - FaultyFS: error injection on top of any types.FS
//
// Usage guidelines:
//   - Most tests should use the in-memory environment for speed and isolation
//   - All test data should be defined inline, not in external files
package testutil
