package state

import (
	"github.com/kk-code-lab/stranger/internal/config"
	fsutil "github.com/kk-code-lab/stranger/internal/fs"
)

// FileEntry mirrors fs.FileEntry so UI code can rely on a stable type.
type FileEntry = fsutil.FileEntry

// ===== STATE DEFINITIONS =====

// ClipboardAction decides whether paste keeps or removes the sources.
type ClipboardAction int

const (
	ClipboardCopy ClipboardAction = iota
	ClipboardCut
)

// Clipboard holds absolute source paths staged for paste.
type Clipboard struct {
	Items  []string
	Action ClipboardAction
}

// NotificationLevel drives the colour of the status line.
type NotificationLevel int

const (
	LevelInfo NotificationLevel = iota
	LevelSuccess
	LevelWarn
	LevelError
)

// Notification is the user-visible result of the last intent.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NameMatcher hides listing entries by name.
type NameMatcher interface {
	Match(name string) bool
}

// AppState is the single source of truth
type AppState struct {
	// Navigation & filesystem
	CurrentDir string
	Cursor     int
	Columns    MillerColumns
	Positions  Positions

	// Mode machine
	Mode  Mode
	Modal ModalKind
	Edit  *EditBuffer // non-nil only in ModeInsert

	// Batch targets
	Clipboard *Clipboard
	Marked    []FileEntry

	// Search & bookmarks
	Pattern   string
	Bookmarks config.Bookmarks
	Preview   MillerColumns // bookmark target, Bookmarks mode only

	// Listing filters
	ShowHidden bool
	Hide       NameMatcher

	Notification *Notification

	// Outer loop signals
	NeedsFullRepaint bool
	Quit             bool
	ChangeDirOnExit  bool

	// Dimensions
	ScreenWidth  int
	ScreenHeight int
}

// NewAppState returns a Normal-mode state rooted at dir. Columns are empty
// until the reducer loads them.
func NewAppState(dir string, bookmarks config.Bookmarks) *AppState {
	return &AppState{
		CurrentDir: dir,
		Positions:  Positions{},
		Mode:       Mode{Kind: ModeNormal},
		Bookmarks:  bookmarks.Clone(),
	}
}

// ===== HELPER METHODS =====

// CurrentFiles returns the listing of the current column.
func (s *AppState) CurrentFiles() []FileEntry {
	return s.Columns.Files[ColumnCurrent]
}

// CurrentFile returns the entry under the cursor, or nil for an empty listing.
func (s *AppState) CurrentFile() *FileEntry {
	files := s.CurrentFiles()
	if s.Cursor < 0 || s.Cursor >= len(files) {
		return nil
	}
	return &files[s.Cursor]
}

// CurrentFilePath returns the absolute path under the cursor or "".
func (s *AppState) CurrentFilePath() string {
	file := s.CurrentFile()
	if file == nil {
		return ""
	}
	return file.PathIn(s.CurrentDir)
}

// IsMarked reports whether name is in the marked set.
func (s *AppState) IsMarked(name string) bool {
	for _, m := range s.Marked {
		if m.Name == name {
			return true
		}
	}
	return false
}

func (s *AppState) toggleMark(entry FileEntry) {
	for i, m := range s.Marked {
		if m.Name == entry.Name {
			s.Marked = append(s.Marked[:i], s.Marked[i+1:]...)
			return
		}
	}
	s.Marked = append(s.Marked, entry)
}

func (s *AppState) markOnce(entry FileEntry) {
	if !s.IsMarked(entry.Name) {
		s.Marked = append(s.Marked, entry)
	}
}

// targets resolves the entries a file operation acts on: the marked set when
// non-empty, otherwise the entry under the cursor.
func (s *AppState) targets() []FileEntry {
	if len(s.Marked) > 0 {
		out := make([]FileEntry, len(s.Marked))
		copy(out, s.Marked)
		return out
	}
	if file := s.CurrentFile(); file != nil {
		return []FileEntry{*file}
	}
	return nil
}

func (s *AppState) notify(level NotificationLevel, msg string) {
	s.Notification = &Notification{Level: level, Message: msg}
}

func (s *AppState) listOptions() ListOptions {
	return ListOptions{ShowHidden: s.ShowHidden, Hide: s.Hide}
}

func clampIndex(idx, length int) int {
	if length <= 0 || idx < 0 {
		return 0
	}
	if idx >= length {
		return length - 1
	}
	return idx
}
