package render

import (
	"fmt"
	"strings"

	statepkg "github.com/kk-code-lab/stranger/internal/state"
)

// formatEntryStatus describes the cursor entry for the right side of the
// footer: permissions, modification time, marked count and position.
func formatEntryStatus(state *statepkg.AppState) string {
	if state == nil {
		return ""
	}
	files := state.CurrentFiles()
	if len(files) == 0 {
		return ""
	}

	var parts []string
	if file := state.CurrentFile(); file != nil && file.HasMeta() {
		parts = append(parts, file.Permissions(), file.LastModified())
	}
	if n := len(state.Marked); n > 0 {
		parts = append(parts, fmt.Sprintf("%d marked", n))
	}
	if !state.ShowHidden {
		parts = append(parts, "hidden off")
	}
	parts = append(parts, formatPosition(state.Cursor, len(files)))
	return strings.Join(parts, " · ")
}

func formatPosition(cursor, total int) string {
	if total == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", cursor+1, total)
}
