package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

// A zero Step moves by one row.
type MoveUpAction struct {
	Step int
}
type MoveDownAction struct {
	Step int
}
type ToParentAction struct{}
type ToChildAction struct{} // enters a directory or executes a file
type MarkAndDownAction struct{}
type ToggleHiddenAction struct{}
type RefreshAction struct{}

// ===== MODE ACTIONS =====

type EnterVisualAction struct{}
type RenameStartAction struct{}
type AddStartAction struct{}
type SearchStartAction struct{}
type OpenHintBarAction struct {
	Bar HintBarMode
}
type EscapeAction struct{}

// ===== EDIT LINE ACTIONS =====

type InputCharAction struct {
	Char rune
}
type InputBackspaceAction struct{}
type InputDeleteWordAction struct{}
type InputCursorAction struct {
	Move CursorMove
}
type CommitAction struct{}

// ===== FILE OPERATION ACTIONS =====

type CopyAction struct {
	Action ClipboardAction
}
type PasteAction struct{}

// DeleteMode picks between the desktop trash and permanent removal.
type DeleteMode int

const (
	DeleteTrash DeleteMode = iota
	DeletePermanent
)

type DeleteAction struct {
	Mode DeleteMode
}

// ===== SEARCH ACTIONS =====

type SearchNextAction struct {
	Reverse bool
}

// ===== BOOKMARK ACTIONS =====

type OpenBookmarksListAction struct{}
type AddBookmarkStartAction struct{}
type BookmarkMoveAction struct {
	Delta int
}
type BookmarkOpenAction struct{}
type BookmarkDeleteAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// Handled by the application layer, not the reducer.
type YankPathAction struct{}
type OpenExternalAction struct{}
type SuspendAction struct{} // ctrl+z

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}          // q - return to original directory
type QuitAndChangeAction struct{} // z - change to current directory
