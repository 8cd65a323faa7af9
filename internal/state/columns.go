package state

import (
	"path/filepath"

	fsutil "github.com/kk-code-lab/stranger/internal/fs"
)

const (
	ColumnParent = iota
	ColumnCurrent
	ColumnChild
	NumColumns
)

// MillerColumns is the parent / current / child snapshot.
type MillerColumns struct {
	Dirs  [NumColumns]fsutil.DirEntry
	Files [NumColumns][]FileEntry
}

// ListOptions filter every column the same way.
type ListOptions struct {
	ShowHidden bool
	Hide       NameMatcher
}

func (o ListOptions) read(withMeta bool) fsutil.ReadOptions {
	opts := fsutil.ReadOptions{WithMeta: withMeta, ShowHidden: o.ShowHidden}
	if o.Hide != nil {
		opts.Skip = o.Hide.Match
	}
	return opts
}

// BuildColumns lists dir with metadata and match flags, its parent without
// metadata, and the directory under the cursor (if any) as the child column.
// Only a failure to read dir itself is returned; parent and child failures
// leave those columns empty.
func BuildColumns(dir string, cursor int, pattern string, opts ListOptions) (MillerColumns, error) {
	var cols MillerColumns

	current, err := fsutil.ReadDir(dir, opts.read(true))
	if err != nil {
		return cols, err
	}
	fsutil.MarkMatches(current, pattern)
	cols.Dirs[ColumnCurrent] = fsutil.DirEntry{Path: dir, WithMeta: true}
	cols.Files[ColumnCurrent] = current

	if parent := filepath.Dir(dir); parent != dir {
		cols.Dirs[ColumnParent] = fsutil.DirEntry{Path: parent}
		if entries, err := fsutil.ReadDir(parent, opts.read(false)); err == nil {
			cols.Files[ColumnParent] = entries
		}
	}

	if len(current) > 0 {
		selected := current[clampIndex(cursor, len(current))]
		if selected.IsDir() {
			child := selected.PathIn(dir)
			cols.Dirs[ColumnChild] = fsutil.DirEntry{Path: child}
			if entries, err := fsutil.ReadDir(child, opts.read(true)); err == nil {
				cols.Files[ColumnChild] = entries
			}
		}
	}

	return cols, nil
}
