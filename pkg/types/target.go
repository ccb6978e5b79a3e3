package types

// InstallTarget is a directory believed to be a game installation root.
// It must pass validation before anything destructive runs against it.
type InstallTarget string

// String returns the target path
func (t InstallTarget) String() string { return string(t) }

// LibraryEntry is a Steam library root from libraryfolders.vdf together
// with the app ids that matched inside its "apps" block.
type LibraryEntry struct {
	Path   string   `json:"path"`
	AppIDs []string `json:"app_ids"`
}
