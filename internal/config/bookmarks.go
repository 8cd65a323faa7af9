package config

// Bookmark is a named path alias.
type Bookmark struct {
	Alias string
	Path  string
}

// Bookmarks keep insertion order; aliases are unique.
type Bookmarks []Bookmark

// Add appends alias, or replaces the path in place when the alias exists.
func (b Bookmarks) Add(alias, path string) Bookmarks {
	for i := range b {
		if b[i].Alias == alias {
			out := b.Clone()
			out[i].Path = path
			return out
		}
	}
	return append(b.Clone(), Bookmark{Alias: alias, Path: path})
}

// Delete removes the bookmark at index; out-of-range indexes are ignored.
func (b Bookmarks) Delete(index int) Bookmarks {
	if index < 0 || index >= len(b) {
		return b
	}
	out := make(Bookmarks, 0, len(b)-1)
	out = append(out, b[:index]...)
	return append(out, b[index+1:]...)
}

// At returns the bookmark at index.
func (b Bookmarks) At(index int) (Bookmark, bool) {
	if index < 0 || index >= len(b) {
		return Bookmark{}, false
	}
	return b[index], true
}

func (b Bookmarks) Clone() Bookmarks {
	if b == nil {
		return nil
	}
	out := make(Bookmarks, len(b))
	copy(out, b)
	return out
}
