// Package steam finds the game's installation directory inside the local
// Steam setup.
//
// Discovery has three parts:
//
//   - RootFinder returns the base Steam directory. On Windows it reads the
//     registry, elsewhere it probes the usual Steam data directories.
//   - ParseLibraryEntries reads steamapps/libraryfolders.vdf and returns the
//     libraries that hold one of the wanted app IDs, with the IDs matched.
//   - Locator probes <root>/steamapps/common/<folder> for the base directory
//     first, then for every library, and returns the first one that exists.
//
// Discovery is best-effort. Nothing in this package returns a fatal error to
// the caller; a miss is reported as a Result with Found unset.
package steam
