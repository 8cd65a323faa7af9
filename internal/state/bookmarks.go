package state

import (
	"os"
	"path/filepath"

	"github.com/kk-code-lab/stranger/internal/config"
	fsutil "github.com/kk-code-lab/stranger/internal/fs"
	"github.com/kk-code-lab/stranger/internal/i18n"
)

func (r *StateReducer) openBookmarksList(state *AppState) error {
	if len(state.Bookmarks) == 0 {
		state.notify(LevelInfo, i18n.T(i18n.BookmarksEmpty))
		return nil
	}
	if err := state.transition(Mode{Kind: ModeBookmarks}, ModalKind{}); err != nil {
		return err
	}
	r.previewBookmark(state)
	return nil
}

func (r *StateReducer) moveBookmark(state *AppState, delta int) error {
	idx := clampIndex(state.Mode.BookmarkIndex+delta, len(state.Bookmarks))
	if idx == state.Mode.BookmarkIndex {
		return nil
	}
	state.Mode.BookmarkIndex = idx
	r.previewBookmark(state)
	return nil
}

// previewBookmark fills state.Preview with the columns of the highlighted
// bookmark. A file target previews its parent with the file selected. The
// current directory is left alone.
func (r *StateReducer) previewBookmark(state *AppState) {
	state.Preview = MillerColumns{}
	bm, ok := state.Bookmarks.At(state.Mode.BookmarkIndex)
	if !ok {
		return
	}
	info, err := os.Stat(bm.Path)
	if err != nil {
		return
	}

	dir, cursor := bm.Path, state.Positions.Get(bm.Path)
	if !info.IsDir() {
		dir, cursor = filepath.Dir(bm.Path), 0
	}
	cols, err := BuildColumns(dir, cursor, "", state.listOptions())
	if err != nil {
		return
	}
	if !info.IsDir() {
		if idx := fsutil.IndexOf(cols.Files[ColumnCurrent], filepath.Base(bm.Path)); idx > 0 {
			if cols, err = BuildColumns(dir, idx, "", state.listOptions()); err != nil {
				return
			}
		}
	}
	state.Preview = cols
}

// openBookmark navigates to the highlighted bookmark. Directories become the
// current directory; files are opened in the editor from their parent.
func (r *StateReducer) openBookmark(state *AppState) error {
	bm, ok := state.Bookmarks.At(state.Mode.BookmarkIndex)
	if !ok {
		return r.escape(state)
	}
	info, err := os.Stat(bm.Path)
	if err != nil {
		r.log.WithError(err).WithField("alias", bm.Alias).Warn("bookmark target missing")
		state.notify(LevelError, i18n.T(i18n.BookmarkInvalid, bm.Path))
		return nil
	}

	if err := state.transition(Mode{Kind: ModeNormal}, ModalKind{}); err != nil {
		return err
	}
	if info.IsDir() {
		return r.changeDir(state, bm.Path)
	}

	if err := r.changeDir(state, filepath.Dir(bm.Path)); err != nil {
		return err
	}
	if err := r.selectName(state, filepath.Base(bm.Path)); err != nil {
		return err
	}
	r.execute(state, bm.Path)
	return nil
}

// deleteBookmark removes the highlighted bookmark and persists the table.
func (r *StateReducer) deleteBookmark(state *AppState) error {
	bm, ok := state.Bookmarks.At(state.Mode.BookmarkIndex)
	if !ok {
		return nil
	}
	next := state.Bookmarks.Delete(state.Mode.BookmarkIndex)
	if err := r.saveBookmarks(next); err != nil {
		state.notify(LevelError, i18n.T(i18n.SaveFailed, err.Error()))
		return nil
	}
	state.Bookmarks = next

	if len(next) == 0 {
		if err := r.escape(state); err != nil {
			return err
		}
	} else {
		state.Mode.BookmarkIndex = clampIndex(state.Mode.BookmarkIndex, len(next))
		r.previewBookmark(state)
	}
	state.notify(LevelInfo, i18n.T(i18n.BookmarkDeleted, bm.Alias))
	return nil
}

// commitBookmark saves the cursor path (or the current directory when the
// listing is empty) under the typed alias.
func (r *StateReducer) commitBookmark(state *AppState, alias string) error {
	if alias == "" {
		state.notify(LevelError, i18n.T(i18n.NameEmpty))
		return nil
	}
	path := state.CurrentFilePath()
	if path == "" {
		path = state.CurrentDir
	}

	next := state.Bookmarks.Add(alias, path)
	if err := r.saveBookmarks(next); err != nil {
		r.log.WithError(err).Warn("cannot persist bookmarks")
		state.notify(LevelError, i18n.T(i18n.SaveFailed, err.Error()))
		return nil
	}
	state.Bookmarks = next

	if err := state.transition(Mode{Kind: ModeNormal}, ModalKind{}); err != nil {
		return err
	}
	state.notify(LevelSuccess, i18n.T(i18n.BookmarkAdded, alias))
	return nil
}

func (r *StateReducer) saveBookmarks(bookmarks config.Bookmarks) error {
	if r.saver == nil {
		return nil
	}
	return r.saver.SaveBookmarks(bookmarks)
}
