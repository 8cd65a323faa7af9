package state

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	for _, name := range []string{"apple", "Apricot", "avocado", "banana"} {
		writeFile(t, filepath.Join(root, name), "")
	}
	return newFixture(t, root, nil)
}

func TestSearchCommitMarksPrefixMatches(t *testing.T) {
	f := searchFixture(t)
	f.do(t, SearchStartAction{})
	assert.Equal(t, ModeInsert, f.state.Mode.Kind)
	assert.Equal(t, ModalKind{Type: ModalBottomLine}, f.state.Modal)

	f.typeText(t, "AP")
	f.do(t, CommitAction{})
	assert.Equal(t, ModeSearch, f.state.Mode.Kind)
	assert.Equal(t, "ap", f.state.Pattern)
	assert.Equal(t, 2, MatchCount(f.state.CurrentFiles()))
	assert.Equal(t, "2 matches for ap", f.state.Notification.Message)
}

func TestNextMatchIsCircular(t *testing.T) {
	f := searchFixture(t)
	f.do(t, SearchStartAction{})
	f.typeText(t, "ap")
	f.do(t, CommitAction{})
	require.Equal(t, 0, f.state.Cursor)

	f.do(t, SearchNextAction{})
	assert.Equal(t, "Apricot", f.state.CurrentFile().Name)
	f.do(t, SearchNextAction{})
	assert.Equal(t, "apple", f.state.CurrentFile().Name)
	f.do(t, SearchNextAction{Reverse: true})
	assert.Equal(t, "Apricot", f.state.CurrentFile().Name)
}

func TestNextMatchWithoutMatchesKeepsCursor(t *testing.T) {
	f := searchFixture(t)
	f.do(t, MoveDownAction{})
	f.do(t, SearchStartAction{})
	f.typeText(t, "zz")
	f.do(t, CommitAction{})
	assert.Equal(t, ModeSearch, f.state.Mode.Kind)
	assert.Equal(t, "No matches", f.state.Notification.Message)

	f.do(t, SearchNextAction{})
	assert.Equal(t, 1, f.state.Cursor)
	assert.Equal(t, LevelWarn, f.state.Notification.Level)
	assert.Equal(t, "No matches", f.state.Notification.Message)
}

func TestSearchNextIgnoredOutsideSearchMode(t *testing.T) {
	f := searchFixture(t)
	f.do(t, SearchNextAction{})
	assert.Equal(t, 0, f.state.Cursor)
	assert.Nil(t, f.state.Notification)
}

func TestEscapeClearsSearch(t *testing.T) {
	f := searchFixture(t)
	f.do(t, SearchStartAction{})
	f.typeText(t, "b")
	f.do(t, CommitAction{}, EscapeAction{})
	assert.Equal(t, ModeNormal, f.state.Mode.Kind)
	assert.Empty(t, f.state.Pattern)
	assert.Zero(t, MatchCount(f.state.CurrentFiles()))
}

func TestEmptySearchCommitReturnsToNormal(t *testing.T) {
	f := searchFixture(t)
	f.do(t, SearchStartAction{}, CommitAction{})
	assert.Equal(t, ModeNormal, f.state.Mode.Kind)
	assert.Empty(t, f.state.Pattern)
}

func TestSearchModeStillNavigates(t *testing.T) {
	f := searchFixture(t)
	f.do(t, SearchStartAction{})
	f.typeText(t, "ban")
	f.do(t, CommitAction{}, MoveDownAction{})
	assert.Equal(t, 1, f.state.Cursor)
	assert.Equal(t, "--SEARCH-- ban", f.state.Notification.Message)
}

func TestCreateFromSearchEndsSearch(t *testing.T) {
	f := searchFixture(t)
	f.do(t, SearchStartAction{})
	f.typeText(t, "ap")
	f.do(t, CommitAction{}, AddStartAction{})
	f.typeText(t, "apex")
	f.do(t, CommitAction{})

	assert.Equal(t, ModeNormal, f.state.Mode.Kind)
	assert.Empty(t, f.state.Pattern)
	assert.Zero(t, MatchCount(f.state.CurrentFiles()))
	assert.Equal(t, "apex", f.state.CurrentFile().Name)
}

func TestRenameFromSearchEndsSearch(t *testing.T) {
	f := searchFixture(t)
	f.do(t, SearchStartAction{})
	f.typeText(t, "ban")
	f.do(t, CommitAction{}, SearchNextAction{}, RenameStartAction{})
	f.clearEdit(t)
	f.typeText(t, "cherry")
	f.do(t, CommitAction{})

	assert.Equal(t, ModeNormal, f.state.Mode.Kind)
	assert.Empty(t, f.state.Pattern)
	assert.Zero(t, MatchCount(f.state.CurrentFiles()))
	assert.Equal(t, "cherry", f.state.CurrentFile().Name)
}
