package render

import (
	"slices"
	"strings"
	"testing"

	statepkg "github.com/kk-code-lab/stranger/internal/state"
)

func TestBuildFooterHelpSegments_DefaultMode(t *testing.T) {
	state := &statepkg.AppState{Mode: statepkg.Mode{Kind: statepkg.ModeNormal}}

	got := buildFooterHelpSegments(state)
	want := []string{
		"hjkl: navigate",
		"/: search",
		"v: visual",
		"y/p: copy/paste",
		"d: delete…",
		"b: bookmarks…",
		"z: exit…",
	}

	if !slices.Equal(got, want) {
		t.Fatalf("default help mismatch\nwant: %#v\n got: %#v", want, got)
	}
}

func TestBuildFooterHelpSegments_ClipboardCount(t *testing.T) {
	state := &statepkg.AppState{
		Clipboard: &statepkg.Clipboard{Items: []string{"/a", "/b"}, Action: statepkg.ClipboardCut},
	}

	got := buildFooterHelpSegments(state)
	if !slices.Contains(got, "p: paste 2 cut") {
		t.Fatalf("expected paste hint with clipboard size, got %#v", got)
	}
}

func TestBuildFooterHelpSegments_PerMode(t *testing.T) {
	tests := []struct {
		kind  statepkg.ModeKind
		first string
	}{
		{statepkg.ModeInsert, "↵: confirm"},
		{statepkg.ModeVisual, "j/k: extend"},
		{statepkg.ModeBookmarks, "j/k: select"},
		{statepkg.ModeSearch, "n/N: next/prev match"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := buildFooterHelpSegments(&statepkg.AppState{Mode: statepkg.Mode{Kind: tt.kind}})
			if len(got) == 0 || got[0] != tt.first {
				t.Fatalf("expected first hint %q, got %#v", tt.first, got)
			}
		})
	}
}

func TestHintBarItemsCoverEveryBar(t *testing.T) {
	for _, bar := range []statepkg.HintBarMode{statepkg.HintBarBookmarks, statepkg.HintBarDelete, statepkg.HintBarExit} {
		if len(hintBarItems(bar)) == 0 {
			t.Fatalf("hint bar %d has no items", bar)
		}
	}
}

func TestBuildFooterHelpTextPadding(t *testing.T) {
	text := buildFooterHelpText(&statepkg.AppState{})
	if !strings.HasPrefix(text, " ") || !strings.HasSuffix(text, " ") {
		t.Fatalf("expected padded help text, got %q", text)
	}
	if buildFooterHelpText(nil) != "" {
		t.Fatalf("expected empty help for nil state")
	}
}
