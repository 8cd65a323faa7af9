package state

import (
	"strings"

	"github.com/kk-code-lab/stranger/internal/i18n"
)

// commitSearch stores the bottom-line text as the prefix pattern and enters
// Search mode. An empty pattern returns to Normal.
func (r *StateReducer) commitSearch(state *AppState, text string) error {
	pattern := strings.ToLower(text)
	if pattern == "" {
		return r.escape(state)
	}

	state.Pattern = pattern
	if err := state.transition(Mode{Kind: ModeSearch}, ModalKind{}); err != nil {
		return err
	}
	if err := r.rebuild(state); err != nil {
		return err
	}

	count := MatchCount(state.CurrentFiles())
	if count == 0 {
		state.notify(LevelWarn, i18n.T(i18n.NoMatches))
		return nil
	}
	state.notify(LevelInfo, i18n.T(i18n.MatchesFound, count, pattern))
	return nil
}

// nextMatch moves the cursor to the next matched row, wrapping around the
// listing. The cursor row itself is checked last.
func (r *StateReducer) nextMatch(state *AppState, reverse bool) error {
	files := state.CurrentFiles()
	n := len(files)
	if n == 0 {
		state.notify(LevelWarn, i18n.T(i18n.NoMatches))
		return nil
	}

	for i := 1; i <= n; i++ {
		var idx int
		if reverse {
			idx = ((state.Cursor-i)%n + n) % n
		} else {
			idx = (state.Cursor + i) % n
		}
		if !files[idx].Matched() {
			continue
		}
		if idx == state.Cursor {
			return nil
		}
		state.Cursor = idx
		return r.afterMove(state)
	}

	state.notify(LevelWarn, i18n.T(i18n.NoMatches))
	return nil
}

// MatchCount returns how many entries carry the match flag.
func MatchCount(files []FileEntry) int {
	count := 0
	for _, f := range files {
		if f.Matched() {
			count++
		}
	}
	return count
}
