package types

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// Kind is the destination category an archive entry is classified into.
type Kind int

const (
	// KindIgnore entries are left in the extracted tree
	KindIgnore Kind = iota
	// KindExecutable files are copied to the target root
	KindExecutable
	// KindDataFile files are copied into the target's data subfolder
	KindDataFile
	// KindMergeDirectory directories are merged recursively into the target
	KindMergeDirectory
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindIgnore:
		return "ignore"
	case KindExecutable:
		return "executable"
	case KindDataFile:
		return "data-file"
	case KindMergeDirectory:
		return "merge-directory"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText lets plans render with readable kinds in JSON and YAML.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ArchiveEntry is one file or directory found in the extracted archive.
type ArchiveEntry struct {
	// RelPath is slash-separated and relative to the extraction root
	RelPath string `json:"relPath" yaml:"relPath"`
	Name    string `json:"name" yaml:"name"`
	IsDir   bool   `json:"isDir" yaml:"isDir"`
	// Size is zero for directories
	Size   int64  `json:"size" yaml:"size"`
	Parent string `json:"parent" yaml:"parent"`
}

// PlanStep routes one entry to its destination.
type PlanStep struct {
	Entry       ArchiveEntry `json:"entry" yaml:"entry"`
	Source      string       `json:"source" yaml:"source"`
	Destination string       `json:"destination" yaml:"destination"`
	Kind        Kind         `json:"kind" yaml:"kind"`
}

// Plan is the ordered list of steps derived from an extracted archive.
// Step order is write order.
type Plan struct {
	ExtractDir  string     `json:"extractDir" yaml:"extractDir"`
	PayloadRoot string     `json:"payloadRoot" yaml:"payloadRoot"`
	Target      string     `json:"target" yaml:"target"`
	Steps       []PlanStep `json:"steps" yaml:"steps"`
	// HasLauncher is set when an executable step is a primary launcher
	HasLauncher bool `json:"hasLauncher" yaml:"hasLauncher"`
}

// Empty reports whether the plan has nothing to apply.
func (p *Plan) Empty() bool {
	return p == nil || len(p.Steps) == 0
}

// Resolve returns where the entry at relPath (relative to the extraction
// root) ends up once the plan is applied. Files inside a merged directory
// resolve through that directory's step.
func (p *Plan) Resolve(relPath string) (string, Kind, bool) {
	if p == nil {
		return "", KindIgnore, false
	}
	relPath = path.Clean(filepath.ToSlash(relPath))
	for _, step := range p.Steps {
		if step.Entry.RelPath == relPath {
			return step.Destination, step.Kind, true
		}
		if step.Kind == KindMergeDirectory && strings.HasPrefix(relPath, step.Entry.RelPath+"/") {
			rest := strings.TrimPrefix(relPath, step.Entry.RelPath+"/")
			return filepath.Join(step.Destination, filepath.FromSlash(rest)), step.Kind, true
		}
	}
	return "", KindIgnore, false
}

// Count returns the number of steps of the given kind.
func (p *Plan) Count(kind Kind) int {
	if p == nil {
		return 0
	}
	n := 0
	for _, step := range p.Steps {
		if step.Kind == kind {
			n++
		}
	}
	return n
}
