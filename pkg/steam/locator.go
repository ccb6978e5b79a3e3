package steam

import (
	"path/filepath"

	"github.com/arthur-debert/ddlcmod/pkg/logging"
	"github.com/arthur-debert/ddlcmod/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultFolderName is the game's folder under steamapps/common
const DefaultFolderName = "Doki Doki Literature Club"

// NotFoundMessage is what users see when discovery finds nothing
const NotFoundMessage = "Game directory not found automatically."

// Result is the outcome of a discovery run. Path is only meaningful when
// Found is set and must never be used as an install target otherwise.
type Result struct {
	Path  string
	Found bool
	// Probed lists every directory that was checked, in order
	Probed []string
}

// String returns the found path or NotFoundMessage
func (r Result) String() string {
	if !r.Found {
		return NotFoundMessage
	}
	return r.Path
}

// Options tunes what the locator looks for
type Options struct {
	AppIDs      []string
	FolderNames []string
}

// Locator finds the game directory from the Steam root and its libraries.
type Locator struct {
	fs     types.FS
	finder RootFinder
	opts   Options
	log    types.LogSink
	logger zerolog.Logger
}

// NewLocator creates a locator. Empty options fall back to the defaults.
func NewLocator(fsys types.FS, finder RootFinder, opts Options, log types.LogSink) *Locator {
	if len(opts.AppIDs) == 0 {
		opts.AppIDs = []string{DefaultAppID}
	}
	if len(opts.FolderNames) == 0 {
		opts.FolderNames = []string{DefaultFolderName}
	}
	if log == nil {
		log = types.NopLog{}
	}
	return &Locator{
		fs:     fsys,
		finder: finder,
		opts:   opts,
		log:    log,
		logger: logging.GetLogger("steam.locator"),
	}
}

// FindGameDirectory probes the Steam root and then each library listed in
// its manifest, returning the first game folder that exists.
func (l *Locator) FindGameDirectory() Result {
	done := logging.LogOperationStart(l.logger, "locate")
	defer done()

	base, err := l.finder.SteamRoot()
	if err != nil {
		l.log.Logf("Error accessing Steam installation: %v", err)
		l.logger.Info().Err(err).Msg("Steam root not found")
		return Result{}
	}
	if base == "" {
		l.log.Logf("Steam installation not found")
		l.logger.Info().Msg("Steam root not found")
		return Result{}
	}
	l.log.Logf("Steam Path Value: %s", base)

	candidates := []string{base}
	for _, lib := range ParseLibraryEntries(l.fs, filepath.Join(base, filepath.FromSlash(ManifestPath)), l.opts.AppIDs, l.log) {
		l.logger.Debug().Str("library", lib.Path).Strs("apps", lib.AppIDs).Msg("Library lists the game")
		candidates = append(candidates, lib.Path)
	}

	var result Result
	for _, root := range candidates {
		for _, folder := range l.opts.FolderNames {
			gamePath := filepath.Join(root, "steamapps", "common", folder)
			l.log.Logf("Game Path: %s", gamePath)
			result.Probed = append(result.Probed, gamePath)
			if exists(l.fs, gamePath) {
				result.Path = gamePath
				result.Found = true
				l.logger.Info().Str("path", gamePath).Msg("Game directory found")
				return result
			}
		}
	}

	l.logger.Info().Strs("probed", result.Probed).Msg("Game directory not found")
	return result
}
