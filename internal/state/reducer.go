package state

import (
	"github.com/kk-code-lab/stranger/internal/config"
	fsutil "github.com/kk-code-lab/stranger/internal/fs"
	"github.com/sirupsen/logrus"
)

// ConfigSaver persists the bookmark table.
type ConfigSaver interface {
	SaveBookmarks(bookmarks config.Bookmarks) error
}

// Executor runs the external program for a file and blocks until it exits.
type Executor interface {
	Execute(path string) error
}

// Dependencies are the side-effecting collaborators of the reducer. Nil
// fields fall back to the system trash and to no persistence/execution.
type Dependencies struct {
	Trasher  fsutil.Trasher
	Config   ConfigSaver
	Executor Executor
}

// ===== REDUCER =====

// StateReducer applies actions to state
type StateReducer struct {
	trasher  fsutil.Trasher
	saver    ConfigSaver
	executor Executor
	log      *logrus.Entry
}

// NewStateReducer creates a new reducer
func NewStateReducer(deps Dependencies) *StateReducer {
	trasher := deps.Trasher
	if trasher == nil {
		trasher = fsutil.NewSystemTrasher()
	}
	return &StateReducer{
		trasher:  trasher,
		saver:    deps.Config,
		executor: deps.Executor,
		log:      logrus.WithField("component", "reducer"),
	}
}

// Load builds the initial columns for state.CurrentDir.
func (r *StateReducer) Load(state *AppState) error {
	return r.rebuild(state)
}

// Reduce applies an action to state and returns it. The returned error is
// reserved for failures to read the current directory; everything else is
// reported through state.Notification.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {
	case QuitAction:
		state.Quit = true
		return state, nil
	case QuitAndChangeAction:
		state.Quit = true
		state.ChangeDirOnExit = true
		return state, nil
	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		return state, nil
	}

	// Hint bars intercept first; anything they do not own closes the bar and
	// falls through to the mode table.
	if state.Modal.Type == ModalHintBar {
		if _, ok := action.(EscapeAction); ok {
			return state, state.transition(state.Mode, ModalKind{})
		}
		if err := state.transition(state.Mode, ModalKind{}); err != nil {
			return state, err
		}
	}

	switch state.Mode.Kind {
	case ModeInsert:
		return state, r.reduceInsert(state, action)
	case ModeBookmarks:
		return state, r.reduceBookmarks(state, action)
	default:
		return state, r.reduceBrowse(state, action)
	}
}

// reduceBrowse is the table shared by Normal, Visual and Search.
func (r *StateReducer) reduceBrowse(state *AppState, action Action) error {
	switch a := action.(type) {

	// ===== NAVIGATION =====

	case MoveDownAction:
		return r.moveCursor(state, stepOf(a.Step))

	case MoveUpAction:
		return r.moveCursor(state, -stepOf(a.Step))

	case ToParentAction:
		return r.toParent(state)

	case ToChildAction:
		return r.toChild(state)

	case MarkAndDownAction:
		if file := state.CurrentFile(); file != nil {
			state.toggleMark(*file)
		}
		return r.moveCursor(state, 1)

	case ToggleHiddenAction:
		return r.toggleHidden(state)

	case RefreshAction:
		return r.refresh(state)

	// ===== MODES =====

	case EnterVisualAction:
		if state.Mode.Kind == ModeVisual {
			return r.escape(state)
		}
		if err := state.transition(Mode{Kind: ModeVisual, VisualInit: true}, ModalKind{}); err != nil {
			return err
		}
		if file := state.CurrentFile(); file != nil {
			state.markOnce(*file)
		}
		return nil

	case RenameStartAction:
		file := state.CurrentFile()
		if file == nil {
			return nil
		}
		if err := state.transition(Mode{Kind: ModeInsert}, underLine(UnderLineEdit)); err != nil {
			return err
		}
		state.Edit = NewEditBuffer(file.Name)
		return nil

	case AddStartAction:
		return r.startEdit(state, underLine(UnderLineAdd))

	case SearchStartAction:
		return r.startEdit(state, bottomLine)

	case OpenHintBarAction:
		return state.transition(state.Mode, hintBar(a.Bar))

	case EscapeAction:
		return r.escape(state)

	// ===== FILE OPERATIONS =====

	case CopyAction:
		return r.copyToClipboard(state, a.Action)

	case PasteAction:
		return r.paste(state)

	case DeleteAction:
		return r.delete(state, a.Mode)

	// ===== SEARCH =====

	case SearchNextAction:
		if state.Mode.Kind != ModeSearch {
			return nil
		}
		return r.nextMatch(state, a.Reverse)

	// ===== BOOKMARKS =====

	case OpenBookmarksListAction:
		return r.openBookmarksList(state)

	case AddBookmarkStartAction:
		return r.startEdit(state, underLine(UnderLineBookmarks))
	}

	return nil
}

func (r *StateReducer) reduceInsert(state *AppState, action Action) error {
	if state.Edit == nil {
		state.Edit = NewEditBuffer("")
	}
	switch a := action.(type) {
	case InputCharAction:
		state.Edit.Insert(a.Char)
	case InputBackspaceAction:
		state.Edit.Backspace()
	case InputDeleteWordAction:
		state.Edit.DeleteWord()
	case InputCursorAction:
		state.Edit.Move(a.Move)
	case CommitAction:
		return r.commit(state)
	case EscapeAction:
		return r.escape(state)
	}
	return nil
}

func (r *StateReducer) reduceBookmarks(state *AppState, action Action) error {
	switch a := action.(type) {
	case BookmarkMoveAction:
		return r.moveBookmark(state, a.Delta)
	case MoveDownAction:
		return r.moveBookmark(state, stepOf(a.Step))
	case MoveUpAction:
		return r.moveBookmark(state, -stepOf(a.Step))
	case BookmarkOpenAction, ToChildAction:
		return r.openBookmark(state)
	case BookmarkDeleteAction:
		return r.deleteBookmark(state)
	case EscapeAction:
		return r.escape(state)
	}
	return nil
}

func (r *StateReducer) startEdit(state *AppState, modal ModalKind) error {
	if err := state.transition(Mode{Kind: ModeInsert}, modal); err != nil {
		return err
	}
	state.Edit = NewEditBuffer("")
	return nil
}

// commit finishes the pending edit according to the overlay that opened it.
func (r *StateReducer) commit(state *AppState) error {
	text := state.Edit.String()
	switch state.Modal.Type {
	case ModalBottomLine:
		return r.commitSearch(state, text)
	case ModalUnderLine:
		switch state.Modal.Action {
		case UnderLineEdit:
			return r.rename(state, text)
		case UnderLineAdd:
			return r.create(state, text)
		case UnderLineBookmarks:
			return r.commitBookmark(state, text)
		}
	}
	return r.escape(state)
}

// escape returns to Normal from anywhere, dropping overlay, edit buffer,
// marks, search pattern and notification.
func (r *StateReducer) escape(state *AppState) error {
	state.Marked = nil
	return state.transition(Mode{Kind: ModeNormal}, ModalKind{})
}

func stepOf(step int) int {
	if step <= 0 {
		return 1
	}
	return step
}
