package fs

import (
	"path/filepath"
	"strconv"

	"github.com/dustin/go-humanize"
)

// VariantKind tells directories and files apart.
type VariantKind int

const (
	KindFile VariantKind = iota
	KindDirectory
)

// FileVariant carries the per-kind metadata of an entry. Metadata pointers are
// nil for listings read without stat calls.
type FileVariant struct {
	Kind         VariantKind
	EntryCount   *uint64 // directories only
	Size         *uint64 // files only
	Permissions  *string
	LastModified *string
	IsMatched    bool
}

// FileEntry is a single row of a column listing. Name is NFC-normalised for
// display, sorting and matching; DiskName is the name as stored, used for
// every path built from the entry.
type FileEntry struct {
	Name     string
	DiskName string
	Variant  FileVariant
}

// DirEntry identifies the directory behind a column. An empty Path means the
// column has no directory (no parent above root, no directory under the cursor).
type DirEntry struct {
	Path     string
	WithMeta bool
}

// OnDisk returns the stored name, falling back to Name for entries built
// without one.
func (e FileEntry) OnDisk() string {
	if e.DiskName != "" {
		return e.DiskName
	}
	return e.Name
}

// PathIn joins the entry's stored name onto dir.
func (e FileEntry) PathIn(dir string) string {
	return filepath.Join(dir, e.OnDisk())
}

// IsDir reports whether the entry is a directory.
func (e FileEntry) IsDir() bool {
	return e.Variant.Kind == KindDirectory
}

// Matched reports whether the entry matches the active search pattern.
func (e FileEntry) Matched() bool {
	return e.Variant.IsMatched
}

// HasMeta reports whether the entry was listed with metadata.
func (e FileEntry) HasMeta() bool {
	return e.Variant.Permissions != nil
}

// DisplaySize renders the size column: humanized bytes for files, the number
// of children for directories, and "" when metadata was not collected.
func (e FileEntry) DisplaySize() string {
	switch e.Variant.Kind {
	case KindDirectory:
		if e.Variant.EntryCount == nil {
			return ""
		}
		return strconv.FormatUint(*e.Variant.EntryCount, 10)
	default:
		if e.Variant.Size == nil {
			return ""
		}
		return humanize.IBytes(*e.Variant.Size)
	}
}

// Permissions returns the rwx string or "" without metadata.
func (e FileEntry) Permissions() string {
	if e.Variant.Permissions == nil {
		return ""
	}
	return *e.Variant.Permissions
}

// LastModified returns the formatted modification time or "".
func (e FileEntry) LastModified() string {
	if e.Variant.LastModified == nil {
		return ""
	}
	return *e.Variant.LastModified
}

// IsNone reports whether the column has no backing directory.
func (d DirEntry) IsNone() bool {
	return d.Path == ""
}
