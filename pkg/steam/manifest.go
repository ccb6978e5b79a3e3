package steam

import (
	"bufio"
	"strings"

	"github.com/arthur-debert/ddlcmod/pkg/errors"
	"github.com/arthur-debert/ddlcmod/pkg/logging"
	"github.com/arthur-debert/ddlcmod/pkg/types"
)

// DefaultAppID is Doki Doki Literature Club's Steam app id
const DefaultAppID = "698780"

// ManifestPath is libraryfolders.vdf relative to the Steam root
const ManifestPath = "steamapps/libraryfolders.vdf"

type parseState int

const (
	scanning parseState = iota
	inAppsBlock
)

// ParseLibraryFolders returns the library roots listed in the manifest at
// vdfPath whose "apps" block mentions one of appIDs, in file order and
// without duplicates. Roots that do not exist on fsys are dropped.
//
// This is a line heuristic, not a VDF parser. A line mentioning "path"
// sets the current library, a line mentioning "apps" opens its app list,
// and inside that list any line containing an app id as a substring counts
// as a match. A closing brace ends the list.
//
// Unreadable or malformed manifests yield an empty result and a log line.
func ParseLibraryFolders(fsys types.FS, vdfPath string, appIDs []string, log types.LogSink) []string {
	entries := ParseLibraryEntries(fsys, vdfPath, appIDs, log)
	var paths []string
	for _, e := range entries {
		paths = append(paths, e.Path)
	}
	return paths
}

// ParseLibraryEntries is ParseLibraryFolders keeping the app ids each
// library matched.
func ParseLibraryEntries(fsys types.FS, vdfPath string, appIDs []string, log types.LogSink) []types.LibraryEntry {
	logger := logging.GetLogger("steam.manifest")
	if log == nil {
		log = types.NopLog{}
	}
	if len(appIDs) == 0 {
		appIDs = []string{DefaultAppID}
	}

	entries, err := parseLibraryFolders(fsys, vdfPath, appIDs, log)
	if err != nil {
		log.Logf("Error parsing VDF: %v", err)
		logger.Warn().Err(err).Str("manifest", vdfPath).Msg("Failed to parse library manifest")
		entries = nil
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		paths = append(paths, e.Path)
	}
	log.Logf("VDF Paths: %v", paths)
	logger.Debug().Strs("libraries", paths).Msg("Library manifest parsed")
	return entries
}

func parseLibraryFolders(fsys types.FS, vdfPath string, appIDs []string, log types.LogSink) ([]types.LibraryEntry, error) {
	f, err := fsys.Open(vdfPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrLocator, "cannot open %s", vdfPath)
	}
	defer f.Close()

	var (
		entries []types.LibraryEntry
		current string
		state   = scanning
	)

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if strings.Contains(line, `"path"`) {
			fields := strings.Split(line, `"`)
			if len(fields) < 4 {
				return nil, errors.Newf(errors.ErrLocator, "malformed path entry on line %d", lineNo)
			}
			current = strings.ReplaceAll(fields[3], `\\`, `\`)
		}

		if strings.Contains(line, `"apps"`) {
			state = inAppsBlock
			continue
		}
		if state != inAppsBlock {
			continue
		}

		switch {
		case containsAny(line, appIDs):
			// A rejected path keeps the block open, so a later id line
			// in the same block is checked against the same path again.
			if current == "" || listed(entries, current) || !exists(fsys, current) {
				continue
			}
			entries = append(entries, types.LibraryEntry{Path: current, AppIDs: matching(line, appIDs)})
			log.Logf("Found Steam library with game: %s", current)
			current = ""
			state = scanning
		case strings.Contains(line, "}"):
			current = ""
			state = scanning
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrLocator, "cannot read %s", vdfPath)
	}
	return entries, nil
}

func listed(entries []types.LibraryEntry, path string) bool {
	for _, e := range entries {
		if e.Path == path {
			return true
		}
	}
	return false
}

func matching(line string, needles []string) []string {
	var ids []string
	for _, n := range needles {
		if n != "" && strings.Contains(line, n) {
			ids = append(ids, n)
		}
	}
	return ids
}

func containsAny(line string, needles []string) bool {
	return len(matching(line, needles)) > 0
}

func exists(fsys types.FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}
