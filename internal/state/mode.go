package state

import (
	"fmt"

	fsutil "github.com/kk-code-lab/stranger/internal/fs"
	"github.com/kk-code-lab/stranger/internal/i18n"
)

// ModeKind is the primary mode of the browser.
type ModeKind int

const (
	ModeNormal ModeKind = iota
	ModeInsert
	ModeVisual
	ModeBookmarks
	ModeSearch
)

func (k ModeKind) String() string {
	switch k {
	case ModeInsert:
		return "insert"
	case ModeVisual:
		return "visual"
	case ModeBookmarks:
		return "bookmarks"
	case ModeSearch:
		return "search"
	default:
		return "normal"
	}
}

// Mode carries the per-mode payload. VisualInit is true until the first cursor
// move after entering Visual; BookmarkIndex is the Bookmarks-mode cursor.
type Mode struct {
	Kind          ModeKind
	VisualInit    bool
	BookmarkIndex int
}

// ModalType is the overlay axis, independent of Mode except for edit lines.
type ModalType int

const (
	ModalDisabled ModalType = iota
	ModalUnderLine
	ModalBottomLine
	ModalHintBar
)

// UnderLineAction is what an under-line edit commits to.
type UnderLineAction int

const (
	UnderLineAdd UnderLineAction = iota
	UnderLineEdit
	UnderLineBookmarks
)

// HintBarMode selects the sub-menu a hint bar offers.
type HintBarMode int

const (
	HintBarBookmarks HintBarMode = iota
	HintBarDelete
	HintBarExit
)

// ModalKind is the active overlay.
type ModalKind struct {
	Type   ModalType
	Action UnderLineAction // ModalUnderLine only
	Bar    HintBarMode     // ModalHintBar only
}

func underLine(action UnderLineAction) ModalKind {
	return ModalKind{Type: ModalUnderLine, Action: action}
}

func hintBar(bar HintBarMode) ModalKind {
	return ModalKind{Type: ModalHintBar, Bar: bar}
}

var bottomLine = ModalKind{Type: ModalBottomLine}

// validModal is the single place deciding which (Mode, ModalKind) pairs exist:
// edit lines only with Insert, and Insert only with an edit line.
func validModal(mode Mode, modal ModalKind) bool {
	switch modal.Type {
	case ModalUnderLine, ModalBottomLine:
		return mode.Kind == ModeInsert
	case ModalHintBar:
		return mode.Kind != ModeInsert && mode.Kind != ModeBookmarks
	default:
		return mode.Kind != ModeInsert
	}
}

// transition moves the state machine to (mode, modal). Leaving Insert drops the
// edit buffer, leaving Visual drops the marks and leaving Bookmarks drops the
// preview. The search pattern survives only in Search and in Insert opened
// from it.
func (s *AppState) transition(mode Mode, modal ModalKind) error {
	if !validModal(mode, modal) {
		return fmt.Errorf("invalid transition to %s mode with modal %d", mode.Kind, modal.Type)
	}
	prev := s.Mode.Kind
	if prev == ModeInsert && mode.Kind != ModeInsert {
		s.Edit = nil
	}
	if prev == ModeVisual && mode.Kind != ModeVisual {
		s.Marked = nil
	}
	if prev == ModeBookmarks && mode.Kind != ModeBookmarks {
		s.Preview = MillerColumns{}
	}
	if s.Pattern != "" && mode.Kind != ModeSearch && mode.Kind != ModeInsert {
		s.Pattern = ""
		fsutil.MarkMatches(s.Columns.Files[ColumnCurrent], "")
	}
	s.Mode = mode
	s.Modal = modal
	s.setModeBanner()
	return nil
}

// setModeBanner shows the persistent banner of the active mode; Normal clears
// the notification.
func (s *AppState) setModeBanner() {
	switch s.Mode.Kind {
	case ModeInsert:
		s.notify(LevelInfo, i18n.T(i18n.InsertMode))
	case ModeVisual:
		s.notify(LevelInfo, i18n.T(i18n.VisualMode))
	case ModeBookmarks:
		s.notify(LevelInfo, i18n.T(i18n.BookmarksMode))
	case ModeSearch:
		s.notify(LevelInfo, i18n.T(i18n.SearchMode, s.Pattern))
	default:
		s.Notification = nil
	}
}
