package state

import (
	"path/filepath"

	fsutil "github.com/kk-code-lab/stranger/internal/fs"
)

// Positions remembers the last cursor index per absolute directory path.
// Unvisited paths read as 0; entries are never removed.
type Positions map[string]int

func (p Positions) Get(path string) int {
	return p[path]
}

func (p Positions) Set(path string, idx int) {
	p[path] = idx
}

// BackfillParent points the parent's remembered cursor at dir's row in the
// parent listing, so leaving dir lands on it even if the parent was never
// visited directly.
func (p Positions) BackfillParent(dir string, parentFiles []FileEntry) {
	parent := filepath.Dir(dir)
	if parent == dir {
		return
	}
	if idx := fsutil.IndexOf(parentFiles, filepath.Base(dir)); idx >= 0 {
		p[parent] = idx
	}
}
