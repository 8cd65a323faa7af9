package state

import (
	"os"
	"path/filepath"

	fsutil "github.com/kk-code-lab/stranger/internal/fs"
	"github.com/kk-code-lab/stranger/internal/i18n"
)

// rebuild refreshes the three columns for the current directory, clamps the
// cursor into the new listing and records it in the position store.
func (r *StateReducer) rebuild(state *AppState) error {
	if state.Positions == nil {
		state.Positions = Positions{}
	}
	cols, err := BuildColumns(state.CurrentDir, state.Cursor, state.Pattern, state.listOptions())
	if err != nil {
		r.log.WithError(err).WithField("path", state.CurrentDir).Warn("cannot list current directory")
		return err
	}
	state.Columns = cols
	state.Cursor = clampIndex(state.Cursor, len(cols.Files[ColumnCurrent]))
	state.Positions.Set(state.CurrentDir, state.Cursor)
	state.Positions.BackfillParent(state.CurrentDir, cols.Files[ColumnParent])
	return nil
}

// refresh re-reads the columns. When the current directory was removed from
// outside, the browser moves to the nearest ancestor that still exists.
func (r *StateReducer) refresh(state *AppState) error {
	err := r.rebuild(state)
	if err == nil || !fsutil.IsNotFound(err) {
		return err
	}
	for dir := filepath.Dir(state.CurrentDir); ; dir = filepath.Dir(dir) {
		if info, statErr := os.Stat(dir); statErr == nil && info.IsDir() {
			return r.changeDir(state, dir)
		}
		if filepath.Dir(dir) == dir {
			return err
		}
	}
}

// afterMove ends every navigation step: rebuild, then the mode banner.
func (r *StateReducer) afterMove(state *AppState) error {
	if err := r.rebuild(state); err != nil {
		return err
	}
	state.setModeBanner()
	return nil
}

// moveCursor shifts the cursor by delta, clamped to the listing. Moving past
// either end is a no-op. In Visual mode the row the cursor lands on is toggled.
func (r *StateReducer) moveCursor(state *AppState, delta int) error {
	files := state.CurrentFiles()
	if len(files) == 0 {
		return nil
	}
	target := clampIndex(state.Cursor+delta, len(files))
	if target == state.Cursor {
		return nil
	}
	state.Cursor = target
	if state.Mode.Kind == ModeVisual {
		state.Mode.VisualInit = false
		state.toggleMark(files[target])
	}
	return r.afterMove(state)
}

func (r *StateReducer) toParent(state *AppState) error {
	parent := state.Columns.Dirs[ColumnParent].Path
	if parent == "" {
		return nil
	}
	return r.changeDir(state, parent)
}

// toChild enters the directory under the cursor or executes the file.
func (r *StateReducer) toChild(state *AppState) error {
	file := state.CurrentFile()
	if file == nil {
		return nil
	}
	path := file.PathIn(state.CurrentDir)
	if !file.IsDir() {
		r.execute(state, path)
		return nil
	}
	return r.changeDir(state, path)
}

// changeDir makes path the current directory with its remembered cursor. On
// failure the previous directory is restored.
func (r *StateReducer) changeDir(state *AppState, path string) error {
	prevDir, prevCursor := state.CurrentDir, state.Cursor
	state.Positions.Set(prevDir, prevCursor)

	state.CurrentDir = path
	state.Cursor = state.Positions.Get(path)
	state.Marked = nil
	if err := r.afterMove(state); err != nil {
		state.CurrentDir, state.Cursor = prevDir, prevCursor
		_ = r.rebuild(state)
		return err
	}
	return nil
}

func (r *StateReducer) toggleHidden(state *AppState) error {
	var name string
	if file := state.CurrentFile(); file != nil {
		name = file.OnDisk()
	}
	state.ShowHidden = !state.ShowHidden
	if err := r.rebuild(state); err != nil {
		return err
	}
	// keep the cursor on the same entry when it is still listed
	if name != "" {
		if err := r.selectName(state, name); err != nil {
			return err
		}
	}
	if state.ShowHidden {
		state.notify(LevelInfo, i18n.T(i18n.HiddenShown))
	} else {
		state.notify(LevelInfo, i18n.T(i18n.HiddenHidden))
	}
	return nil
}

// selectName moves the cursor onto name in the current listing, if present.
func (r *StateReducer) selectName(state *AppState, name string) error {
	idx := fsutil.IndexOf(state.CurrentFiles(), name)
	if idx < 0 || idx == state.Cursor {
		return nil
	}
	state.Cursor = idx
	return r.rebuild(state)
}

// execute hands path to the external program and asks for a full repaint
// afterwards.
func (r *StateReducer) execute(state *AppState, path string) {
	state.NeedsFullRepaint = true
	if r.executor == nil {
		return
	}
	if err := r.executor.Execute(path); err != nil {
		r.log.WithError(err).WithField("path", path).Error("editor failed")
		state.notify(LevelError, i18n.T(i18n.EditorFailed, err.Error()))
	}
}
