package state

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/kk-code-lab/stranger/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBookmarkDirectory(t *testing.T) {
	proj := t.TempDir()
	writeFile(t, filepath.Join(proj, "b.txt"), "")
	mkdir(t, filepath.Join(proj, "A"))
	home := t.TempDir()

	f := newFixture(t, home, config.Bookmarks{{Alias: "proj", Path: proj}})
	f.do(t, OpenBookmarksListAction{})
	assert.Equal(t, ModeBookmarks, f.state.Mode.Kind)
	assert.Equal(t, 0, f.state.Mode.BookmarkIndex)
	assert.Equal(t, home, f.state.CurrentDir)
	assert.Equal(t, proj, f.state.Preview.Dirs[ColumnCurrent].Path)
	assert.Equal(t, []string{"A", "b.txt"}, listNames(f.state.Preview.Files[ColumnCurrent]))

	f.do(t, BookmarkOpenAction{})
	assert.Equal(t, proj, f.state.CurrentDir)
	assert.Equal(t, ModeNormal, f.state.Mode.Kind)
	assert.True(t, f.state.Preview.Dirs[ColumnCurrent].IsNone())
}

func TestOpenBookmarkFileExecutes(t *testing.T) {
	proj := t.TempDir()
	writeFile(t, filepath.Join(proj, "a"), "")
	target := filepath.Join(proj, "main.go")
	writeFile(t, target, "")

	f := newFixture(t, t.TempDir(), config.Bookmarks{{Alias: "main", Path: target}})
	f.do(t, OpenBookmarksListAction{})
	assert.Equal(t, proj, f.state.Preview.Dirs[ColumnCurrent].Path)

	f.do(t, ToChildAction{})
	assert.Equal(t, proj, f.state.CurrentDir)
	assert.Equal(t, "main.go", f.state.CurrentFile().Name)
	assert.Equal(t, []string{target}, f.executor.paths)
	assert.True(t, f.state.NeedsFullRepaint)
}

func TestOpenInvalidBookmarkKeepsNavigation(t *testing.T) {
	home := t.TempDir()
	f := newFixture(t, home, config.Bookmarks{{Alias: "gone", Path: filepath.Join(home, "missing")}})
	f.do(t, OpenBookmarksListAction{}, BookmarkOpenAction{})
	assert.Equal(t, home, f.state.CurrentDir)
	assert.Equal(t, ModeBookmarks, f.state.Mode.Kind)
	assert.Equal(t, LevelError, f.state.Notification.Level)
	assert.Contains(t, f.state.Notification.Message, "Invalid bookmark")
}

func TestBookmarkCursorSaturates(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	f := newFixture(t, t.TempDir(), config.Bookmarks{{Alias: "a", Path: a}, {Alias: "b", Path: b}})
	f.do(t, OpenBookmarksListAction{}, MoveUpAction{})
	assert.Equal(t, 0, f.state.Mode.BookmarkIndex)

	f.do(t, BookmarkMoveAction{Delta: 1}, MoveDownAction{})
	assert.Equal(t, 1, f.state.Mode.BookmarkIndex)
	assert.Equal(t, b, f.state.Preview.Dirs[ColumnCurrent].Path)
}

func TestEmptyBookmarksStayInNormal(t *testing.T) {
	f := newFixture(t, t.TempDir(), nil)
	f.do(t, OpenBookmarksListAction{})
	assert.Equal(t, ModeNormal, f.state.Mode.Kind)
	assert.Equal(t, "No bookmarks yet", f.state.Notification.Message)
}

func TestAddBookmarkPersists(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "")

	f := newFixture(t, root, config.Bookmarks{{Alias: "x", Path: "/old"}})
	f.do(t, AddBookmarkStartAction{})
	assert.Equal(t, ModalKind{Type: ModalUnderLine, Action: UnderLineBookmarks}, f.state.Modal)
	f.typeText(t, "notes")
	f.do(t, CommitAction{})

	assert.Equal(t, ModeNormal, f.state.Mode.Kind)
	want := config.Bookmarks{{Alias: "x", Path: "/old"}, {Alias: "notes", Path: filepath.Join(root, "a.txt")}}
	assert.Equal(t, want, f.state.Bookmarks)
	assert.Equal(t, want, f.saver.saved)
	assert.Equal(t, "Bookmark notes added!", f.state.Notification.Message)
}

func TestAddBookmarkInEmptyDirectoryUsesDirectory(t *testing.T) {
	root := t.TempDir()
	f := newFixture(t, root, nil)
	f.do(t, AddBookmarkStartAction{})
	f.typeText(t, "here")
	f.do(t, CommitAction{})
	assert.Equal(t, config.Bookmarks{{Alias: "here", Path: root}}, f.state.Bookmarks)
}

func TestAddBookmarkSaveFailureStaysInInsert(t *testing.T) {
	f := newFixture(t, t.TempDir(), nil)
	f.saver.err = errors.New("read-only file system")
	f.do(t, AddBookmarkStartAction{})
	f.typeText(t, "x")
	f.do(t, CommitAction{})
	assert.Equal(t, ModeInsert, f.state.Mode.Kind)
	assert.Empty(t, f.state.Bookmarks)
	assert.Contains(t, f.state.Notification.Message, "read-only file system")
}

func TestAddBookmarkEmptyAlias(t *testing.T) {
	f := newFixture(t, t.TempDir(), nil)
	f.do(t, AddBookmarkStartAction{}, CommitAction{})
	assert.Equal(t, ModeInsert, f.state.Mode.Kind)
	assert.Zero(t, f.saver.calls)
}

func TestDeleteBookmarkByIndex(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	f := newFixture(t, t.TempDir(), config.Bookmarks{{Alias: "a", Path: a}, {Alias: "b", Path: b}})
	f.do(t, OpenBookmarksListAction{}, BookmarkMoveAction{Delta: 1}, BookmarkDeleteAction{})

	assert.Equal(t, config.Bookmarks{{Alias: "a", Path: a}}, f.state.Bookmarks)
	assert.Equal(t, f.state.Bookmarks, f.saver.saved)
	assert.Equal(t, ModeBookmarks, f.state.Mode.Kind)
	assert.Equal(t, 0, f.state.Mode.BookmarkIndex)

	f.do(t, BookmarkDeleteAction{})
	require.Empty(t, f.state.Bookmarks)
	assert.Equal(t, ModeNormal, f.state.Mode.Kind)
	assert.Equal(t, "Bookmark a deleted", f.state.Notification.Message)
}

func TestEscapeLeavesBookmarks(t *testing.T) {
	home := t.TempDir()
	f := newFixture(t, home, config.Bookmarks{{Alias: "a", Path: t.TempDir()}})
	f.do(t, OpenBookmarksListAction{}, EscapeAction{})
	assert.Equal(t, ModeNormal, f.state.Mode.Kind)
	assert.Equal(t, home, f.state.CurrentDir)
	assert.True(t, f.state.Preview.Dirs[ColumnCurrent].IsNone())
}
