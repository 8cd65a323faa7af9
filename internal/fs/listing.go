package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// TimeLayout formats last-modified timestamps in listings.
const TimeLayout = "2006-01-02 15:04:05"

// ReadOptions control how a directory is listed.
type ReadOptions struct {
	WithMeta   bool
	ShowHidden bool
	// Skip drops entries whose name it reports true for.
	Skip func(name string) bool
}

// ReadDir lists path sorted directories-first, then by case-insensitive name.
// Symlinks are classified by their target; broken links list as files.
func ReadDir(path string, opts ReadOptions) ([]FileEntry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, wrapErr("read dir", path, err)
	}

	entries := make([]FileEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := norm.NFC.String(de.Name())
		fullPath := filepath.Join(path, de.Name())
		if ShouldHideFromListing(fullPath, name) {
			continue
		}
		if !opts.ShowHidden && IsHidden(fullPath, name) {
			continue
		}
		if opts.Skip != nil && opts.Skip(name) {
			continue
		}

		entry := FileEntry{Name: name, DiskName: de.Name()}
		isDir := de.IsDir()
		var info os.FileInfo
		if de.Type()&os.ModeSymlink != 0 {
			if target, statErr := os.Stat(fullPath); statErr == nil {
				isDir = target.IsDir()
				info = target
			}
		}
		if isDir {
			entry.Variant.Kind = KindDirectory
		}

		if opts.WithMeta {
			if info == nil {
				info, _ = de.Info()
			}
			attachMeta(&entry, fullPath, info)
		}
		entries = append(entries, entry)
	}

	SortEntries(entries)
	return entries, nil
}

func attachMeta(entry *FileEntry, fullPath string, info os.FileInfo) {
	if info == nil {
		return
	}
	perms := FormatPermissions(info.Mode())
	modified := info.ModTime().Format(TimeLayout)
	entry.Variant.Permissions = &perms
	entry.Variant.LastModified = &modified

	if entry.IsDir() {
		count := countEntries(fullPath)
		entry.Variant.EntryCount = &count
		return
	}
	size := uint64(0)
	if info.Size() > 0 {
		size = uint64(info.Size())
	}
	entry.Variant.Size = &size
}

func countEntries(path string) uint64 {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer func() {
		_ = f.Close()
	}()
	names, _ := f.Readdirnames(-1)
	return uint64(len(names))
}

// FormatPermissions renders the permission bits as "rwxr-xr-x".
func FormatPermissions(mode os.FileMode) string {
	return mode.Perm().String()[1:]
}

// SortEntries orders directories before files, then by lower-cased name.
// Raw names break ties so listings are deterministic.
func SortEntries(entries []FileEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDir() != b.IsDir() {
			return a.IsDir()
		}
		la, lb := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if la != lb {
			return la < lb
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.OnDisk() < b.OnDisk()
	})
}

// MarkMatches sets IsMatched on entries whose lower-cased name starts with the
// lower-cased pattern and clears it on all others. An empty pattern clears all.
// It returns the number of matches.
func MarkMatches(entries []FileEntry, pattern string) int {
	pattern = strings.ToLower(pattern)
	count := 0
	for i := range entries {
		matched := pattern != "" && strings.HasPrefix(strings.ToLower(entries[i].Name), pattern)
		entries[i].Variant.IsMatched = matched
		if matched {
			count++
		}
	}
	return count
}

// IndexOf returns the position of name in entries or -1. name may be the
// stored form (from a path) or the normalised one (typed by the user); an
// exact stored-name match wins.
func IndexOf(entries []FileEntry, name string) int {
	for i, e := range entries {
		if e.OnDisk() == name {
			return i
		}
	}
	nfc := norm.NFC.String(name)
	for i, e := range entries {
		if e.Name == nfc {
			return i
		}
	}
	return -1
}
