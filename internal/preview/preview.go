// Package preview renders the head of a file as terminal-safe lines for the
// child column.
package preview

import (
	"os"
	"strings"

	"github.com/kk-code-lab/stranger/internal/textutil"
)

const (
	// DefaultByteBudget caps how much of a file is read.
	DefaultByteBudget int64 = 16 * 1024
	// DefaultMaxLines caps how many lines are returned.
	DefaultMaxLines = 50
)

// Result is either a list of lines or the unsupported marker.
type Result struct {
	Lines       []string
	Unsupported bool
	Truncated   bool
}

// Unsupported is returned for directories, binaries and unreadable files.
var Unsupported = Result{Unsupported: true}

// Load reads at most budget bytes of path and returns up to maxLines lines.
// Failures are never reported beyond the unsupported marker.
func Load(path string, budget int64, maxLines int) Result {
	if budget <= 0 || maxLines <= 0 {
		return Unsupported
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return Unsupported
	}

	content, err := readHead(path, budget)
	if err != nil || !looksLikeText(path, content) {
		return Unsupported
	}

	text := strings.ReplaceAll(decodeText(content), "\r\n", "\n")
	raw := strings.Split(text, "\n")
	truncated := info.Size() > int64(len(content))
	if truncated && len(raw) > 1 {
		// the last line was cut by the byte budget
		raw = raw[:len(raw)-1]
	}
	if !truncated && len(raw) > 0 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	if len(raw) > maxLines {
		raw = raw[:maxLines]
		truncated = true
	}

	lines := make([]string, len(raw))
	for i, line := range raw {
		line = textutil.ExpandTabs(line, textutil.DefaultTabWidth)
		lines[i] = textutil.SanitizeTerminalText(line)
	}
	return Result{Lines: lines, Truncated: truncated}
}
