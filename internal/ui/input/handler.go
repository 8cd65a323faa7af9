package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/stranger/internal/state"
)

// pageStep is the row count of ctrl+d / ctrl+u and PgDn / PgUp.
const pageStep = 25

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false once a
// quit action has been sent.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		ih.actionChan <- statepkg.QuitAction{}
		return false
	}

	if ih.state != nil && ih.state.Modal.Type == statepkg.ModalHintBar {
		if handled, keepRunning := ih.processHintBar(ev, ih.state.Modal.Bar); handled {
			return keepRunning
		}
	}

	mode := statepkg.ModeNormal
	if ih.state != nil {
		mode = ih.state.Mode.Kind
	}
	switch mode {
	case statepkg.ModeInsert:
		ih.processEditKey(ev)
		return true
	case statepkg.ModeBookmarks:
		ih.processBookmarksKey(ev)
		return true
	default:
		return ih.processBrowseKey(ev, mode)
	}
}

// processHintBar handles the sub-menu keys of an open hint bar. Keys it does
// not own are left to the mode table.
func (ih *InputHandler) processHintBar(ev *tcell.EventKey, bar statepkg.HintBarMode) (handled, keepRunning bool) {
	if ev.Key() == tcell.KeyEscape {
		ih.actionChan <- statepkg.EscapeAction{}
		return true, true
	}
	if ev.Key() != tcell.KeyRune {
		return false, true
	}

	r := ev.Rune()
	switch bar {
	case statepkg.HintBarBookmarks:
		switch r {
		case 'b':
			ih.actionChan <- statepkg.OpenBookmarksListAction{}
		case 'a':
			ih.actionChan <- statepkg.AddBookmarkStartAction{}
		case 'q':
			ih.actionChan <- statepkg.EscapeAction{}
		default:
			return false, true
		}
	case statepkg.HintBarDelete:
		switch r {
		case 'd':
			ih.actionChan <- statepkg.CopyAction{Action: statepkg.ClipboardCut}
		case 'D':
			ih.actionChan <- statepkg.DeleteAction{Mode: statepkg.DeleteTrash}
		case 'x':
			ih.actionChan <- statepkg.DeleteAction{Mode: statepkg.DeletePermanent}
		case 'q':
			ih.actionChan <- statepkg.EscapeAction{}
		default:
			return false, true
		}
	case statepkg.HintBarExit:
		switch r {
		case 'z', 'Z':
			ih.actionChan <- statepkg.QuitAndChangeAction{}
			return true, false
		case 'q', 'Q':
			ih.actionChan <- statepkg.QuitAction{}
			return true, false
		default:
			return false, true
		}
	}
	return true, true
}

// processBrowseKey is the keymap of Normal, Visual and Search.
func (ih *InputHandler) processBrowseKey(ev *tcell.EventKey, mode statepkg.ModeKind) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.EscapeAction{}
	case tcell.KeyUp:
		ih.actionChan <- statepkg.MoveUpAction{Step: 1}
	case tcell.KeyDown:
		ih.actionChan <- statepkg.MoveDownAction{Step: 1}
	case tcell.KeyPgUp, tcell.KeyCtrlU:
		ih.actionChan <- statepkg.MoveUpAction{Step: pageStep}
	case tcell.KeyPgDn, tcell.KeyCtrlD:
		ih.actionChan <- statepkg.MoveDownAction{Step: pageStep}
	case tcell.KeyLeft:
		ih.actionChan <- statepkg.ToParentAction{}
	case tcell.KeyRight, tcell.KeyEnter:
		ih.actionChan <- statepkg.ToChildAction{}
	case tcell.KeyCtrlH:
		// tcell reports ctrl+h as KeyBackspace
		ih.actionChan <- statepkg.ToggleHiddenAction{}
	case tcell.KeyCtrlR:
		ih.actionChan <- statepkg.RefreshAction{}
	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}
	case tcell.KeyRune:
		return ih.processBrowseRune(ev, mode)
	}
	return true
}

func (ih *InputHandler) processBrowseRune(ev *tcell.EventKey, mode statepkg.ModeKind) bool {
	r := ev.Rune()
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		switch unicode.ToLower(r) {
		case 'd':
			ih.actionChan <- statepkg.MoveDownAction{Step: pageStep}
		case 'u':
			ih.actionChan <- statepkg.MoveUpAction{Step: pageStep}
		case 'h':
			ih.actionChan <- statepkg.ToggleHiddenAction{}
		case 'r':
			ih.actionChan <- statepkg.RefreshAction{}
		}
		return true
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		// Normalize shifted alphabetic runes to reflect user intent (Shift+n => 'N')
		r = unicode.ToUpper(r)
	}

	switch r {
	case 'q':
		// leaves Visual with the marks instead of quitting
		if mode == statepkg.ModeVisual {
			ih.actionChan <- statepkg.EscapeAction{}
			return true
		}
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case 'j':
		ih.actionChan <- statepkg.MoveDownAction{Step: 1}
	case 'k':
		ih.actionChan <- statepkg.MoveUpAction{Step: 1}
	case 'h':
		ih.actionChan <- statepkg.ToParentAction{}
	case 'l':
		ih.actionChan <- statepkg.ToChildAction{}
	case 'r':
		ih.actionChan <- statepkg.RenameStartAction{}
	case 'a':
		ih.actionChan <- statepkg.AddStartAction{}
	case 'y':
		ih.actionChan <- statepkg.CopyAction{Action: statepkg.ClipboardCopy}
	case 'Y':
		ih.actionChan <- statepkg.YankPathAction{}
	case 'd':
		ih.actionChan <- statepkg.OpenHintBarAction{Bar: statepkg.HintBarDelete}
	case 'p':
		ih.actionChan <- statepkg.PasteAction{}
	case 'v':
		ih.actionChan <- statepkg.EnterVisualAction{}
	case ' ':
		ih.actionChan <- statepkg.MarkAndDownAction{}
	case 'b':
		ih.actionChan <- statepkg.OpenHintBarAction{Bar: statepkg.HintBarBookmarks}
	case 'z', 'Z':
		ih.actionChan <- statepkg.OpenHintBarAction{Bar: statepkg.HintBarExit}
	case '/':
		ih.actionChan <- statepkg.SearchStartAction{}
	case 'n':
		if mode == statepkg.ModeSearch {
			ih.actionChan <- statepkg.SearchNextAction{}
		}
	case 'N':
		if mode == statepkg.ModeSearch {
			ih.actionChan <- statepkg.SearchNextAction{Reverse: true}
		}
	case 'o':
		ih.actionChan <- statepkg.OpenExternalAction{}
	}
	return true
}

// processEditKey drives the Insert-mode edit line.
func (ih *InputHandler) processEditKey(ev *tcell.EventKey) {
	wordJump := ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0

	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.EscapeAction{}
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.CommitAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.InputBackspaceAction{}
	case tcell.KeyCtrlW:
		ih.actionChan <- statepkg.InputDeleteWordAction{}
	case tcell.KeyLeft:
		if wordJump {
			ih.actionChan <- statepkg.InputCursorAction{Move: statepkg.CursorWordLeft}
		} else {
			ih.actionChan <- statepkg.InputCursorAction{Move: statepkg.CursorLeft}
		}
	case tcell.KeyRight:
		if wordJump {
			ih.actionChan <- statepkg.InputCursorAction{Move: statepkg.CursorWordRight}
		} else {
			ih.actionChan <- statepkg.InputCursorAction{Move: statepkg.CursorRight}
		}
	case tcell.KeyHome, tcell.KeyCtrlA:
		ih.actionChan <- statepkg.InputCursorAction{Move: statepkg.CursorHome}
	case tcell.KeyEnd, tcell.KeyCtrlE:
		ih.actionChan <- statepkg.InputCursorAction{Move: statepkg.CursorEnd}
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			switch unicode.ToLower(r) {
			case 'a':
				ih.actionChan <- statepkg.InputCursorAction{Move: statepkg.CursorHome}
			case 'e':
				ih.actionChan <- statepkg.InputCursorAction{Move: statepkg.CursorEnd}
			case 'w':
				ih.actionChan <- statepkg.InputDeleteWordAction{}
			case 'h':
				ih.actionChan <- statepkg.InputBackspaceAction{}
			}
			return
		}
		ih.actionChan <- statepkg.InputCharAction{Char: r}
	}
}

func (ih *InputHandler) processBookmarksKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyLeft:
		ih.actionChan <- statepkg.EscapeAction{}
	case tcell.KeyUp:
		ih.actionChan <- statepkg.BookmarkMoveAction{Delta: -1}
	case tcell.KeyDown:
		ih.actionChan <- statepkg.BookmarkMoveAction{Delta: 1}
	case tcell.KeyRight, tcell.KeyEnter:
		ih.actionChan <- statepkg.BookmarkOpenAction{}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'j':
			ih.actionChan <- statepkg.BookmarkMoveAction{Delta: 1}
		case 'k':
			ih.actionChan <- statepkg.BookmarkMoveAction{Delta: -1}
		case 'l':
			ih.actionChan <- statepkg.BookmarkOpenAction{}
		case 'd':
			ih.actionChan <- statepkg.BookmarkDeleteAction{}
		case 'q', 'h':
			ih.actionChan <- statepkg.EscapeAction{}
		}
	}
}
