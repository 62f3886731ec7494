package testing

import (
	"strings"

	"github.com/bgrewell/peggle-kit/pkg/level"
	"github.com/bgrewell/peggle-kit/pkg/pak"
)

// GetFileAndFolderCounts walks an archive's entry names and splits them into
// folder and file counts, treating any name containing a path separator as
// living inside at least one folder.
func GetFileAndFolderCounts(a *pak.Archive) (folderCount, fileCount int) {
	folders := make(map[string]struct{})

	for _, name := range a.List() {
		fileCount++
		dir := name
		for {
			idx := strings.LastIndexAny(dir, `/\`)
			if idx < 0 {
				break
			}
			dir = dir[:idx]
			if dir == "" {
				break
			}
			folders[dir] = struct{}{}
		}
	}

	return len(folders), fileCount
}

// CountElements reports how many of a level's slots hold a real element
// versus an empty (non-magic) slot, and a per-kind breakdown of the present
// ones.
func CountElements(lvl *level.Level) (present, empty int, byKind map[string]int) {
	byKind = make(map[string]int)
	for _, e := range lvl.Elements {
		if !e.Present() {
			empty++
			continue
		}
		present++
		byKind[e.Kind.String()]++
	}
	return present, empty, byKind
}
