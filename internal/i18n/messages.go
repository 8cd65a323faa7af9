// Package i18n holds the notification catalog.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys.
const (
	Copied          = "copied"
	Cut             = "cut"
	Deleted         = "deleted"
	DeletedWithErr  = "deleted_with_error"
	Pasted          = "pasted"
	PastedWithErr   = "pasted_with_error"
	Moved           = "moved"
	MovedWithErr    = "moved_with_error"
	Created         = "created"
	Renamed         = "renamed"
	BufferEmpty     = "buffer_empty"
	ItemsNotFound   = "items_not_found"
	NameEmpty       = "name_empty"
	BookmarkAdded   = "bookmark_added"
	BookmarkDeleted = "bookmark_deleted"
	BookmarkInvalid = "bookmark_invalid"
	BookmarksEmpty  = "bookmarks_empty"
	InsertMode      = "insert_mode"
	VisualMode      = "visual_mode"
	SearchMode      = "search_mode"
	BookmarksMode   = "bookmarks_mode"
	MatchesFound    = "matches_found"
	NoMatches       = "no_matches"
	HiddenShown     = "hidden_shown"
	HiddenHidden    = "hidden_hidden"
	PathYanked      = "path_yanked"
	YankFailed      = "yank_failed"
	OpenFailed      = "open_failed"
	EditorFailed    = "editor_failed"
	SaveFailed      = "save_failed"
)

var english = map[string]string{
	Copied:          "Copied %d items!",
	Cut:             "Cut %d items!",
	Deleted:         "Deleted %d items!",
	DeletedWithErr:  "Deleted %d, failed %d: %s",
	Pasted:          "Pasted %d items!",
	PastedWithErr:   "Pasted %d, failed %d: %s",
	Moved:           "Moved %d items!",
	MovedWithErr:    "Moved %d, failed %d: %s",
	Created:         "Created %s",
	Renamed:         "Renamed to %s",
	BufferEmpty:     "Buffer is empty",
	ItemsNotFound:   "Files not found.",
	NameEmpty:       "Name cannot be empty",
	BookmarkAdded:   "Bookmark %s added!",
	BookmarkDeleted: "Bookmark %s deleted",
	BookmarkInvalid: "Invalid bookmark: %s",
	BookmarksEmpty:  "No bookmarks yet",
	InsertMode:      "--INSERT--",
	VisualMode:      "--VISUAL--",
	SearchMode:      "--SEARCH-- %s",
	BookmarksMode:   "--BOOKMARKS--",
	MatchesFound:    "%d matches for %s",
	NoMatches:       "No matches",
	HiddenShown:     "Showing hidden files",
	HiddenHidden:    "Hiding hidden files",
	PathYanked:      "Yanked %s",
	YankFailed:      "Clipboard unavailable: %s",
	OpenFailed:      "Cannot open %s: %s",
	EditorFailed:    "Editor failed: %s",
	SaveFailed:      "Cannot save config: %s",
}

var printer *message.Printer

func init() {
	for key, msg := range english {
		_ = message.SetString(language.English, key, msg)
	}
	printer = message.NewPrinter(language.English)
}

// T formats the message registered under key. Unknown keys are returned as is.
func T(key string, args ...any) string {
	if _, ok := english[key]; !ok {
		return key
	}
	return printer.Sprintf(key, args...)
}
