package render

import (
	"fmt"
	"strings"

	statepkg "github.com/kk-code-lab/stranger/internal/state"
)

// hint is one key of a hint bar sub-menu.
type hint struct {
	key   string
	label string
}

var hintBars = map[statepkg.HintBarMode][]hint{
	statepkg.HintBarBookmarks: {
		{"b", "open bookmarks"},
		{"a", "add bookmark"},
		{"q", "close"},
	},
	statepkg.HintBarDelete: {
		{"d", "cut"},
		{"D", "move to trash"},
		{"x", "delete permanently"},
		{"q", "close"},
	},
	statepkg.HintBarExit: {
		{"z", "quit and cd"},
		{"q", "quit"},
		{"esc", "close"},
	},
}

func hintBarItems(bar statepkg.HintBarMode) []hint {
	return hintBars[bar]
}

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles mode-aware help hints for the footer.
func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}

	switch state.Mode.Kind {
	case statepkg.ModeInsert:
		return []string{
			"↵: confirm",
			"Esc: cancel",
			"^W: delete word",
		}
	case statepkg.ModeVisual:
		return []string{
			"j/k: extend",
			"y: copy",
			"d: delete…",
			"v/q/Esc: leave",
		}
	case statepkg.ModeBookmarks:
		return []string{
			"j/k: select",
			"l/↵: open",
			"d: delete",
			"q/Esc: leave",
		}
	case statepkg.ModeSearch:
		return []string{
			"n/N: next/prev match",
			"/: new search",
			"Esc: clear",
		}
	}

	paste := "y/p: copy/paste"
	if clip := state.Clipboard; clip != nil {
		verb := "copied"
		if clip.Action == statepkg.ClipboardCut {
			verb = "cut"
		}
		paste = fmt.Sprintf("p: paste %d %s", len(clip.Items), verb)
	}
	return []string{
		"hjkl: navigate",
		"/: search",
		"v: visual",
		paste,
		"d: delete…",
		"b: bookmarks…",
		"z: exit…",
	}
}
