package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultTabWidth is the tab stop used for file previews.
const DefaultTabWidth = 4

// ExpandTabs replaces tab characters with spaces up to the next tab stop,
// counting wide runes as two columns.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var builder strings.Builder
	column := 0
	for _, ru := range text {
		if ru == '\t' {
			spaces := tabWidth - (column % tabWidth)
			builder.WriteString(strings.Repeat(" ", spaces))
			column += spaces
			continue
		}
		builder.WriteRune(ru)
		if width := runewidth.RuneWidth(ru); width > 0 {
			column += width
		}
	}
	return builder.String()
}
