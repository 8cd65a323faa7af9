package render

import (
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/stranger/internal/preview"
)

type previewCache struct {
	path    string
	modTime time.Time
	size    int64
	result  preview.Result
}

// loadPreview reads the head of path, reusing the last result while the file
// is unchanged.
func (r *Renderer) loadPreview(path string) preview.Result {
	info, err := os.Stat(path)
	if err != nil {
		r.previewCache = nil
		return preview.Unsupported
	}
	if c := r.previewCache; c != nil && c.path == path && c.size == info.Size() && c.modTime.Equal(info.ModTime()) {
		return c.result
	}

	result := preview.Load(path, preview.DefaultByteBudget, preview.DefaultMaxLines)
	r.previewCache = &previewCache{
		path:    path,
		modTime: info.ModTime(),
		size:    info.Size(),
		result:  result,
	}
	return result
}

// drawFilePreview fills the child column with the first lines of a file.
func (r *Renderer) drawFilePreview(rect columnRect, layout layoutMetrics, path string) {
	width := rect.width - 1
	if width <= 1 || layout.bodyHeight <= 0 {
		return
	}
	result := r.loadPreview(path)
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.PreviewFg)

	if result.Unsupported {
		style := tcell.StyleDefault.Foreground(r.theme.EmptyFg).Italic(true)
		r.drawStyledStringClipped(rect.x+1, layout.bodyTop, rect.x+width, "no preview", style)
		return
	}

	lines := result.Lines
	if len(lines) > layout.bodyHeight {
		lines = lines[:layout.bodyHeight]
	}
	for i, line := range lines {
		r.drawCombining(rect.x+1, layout.bodyTop+i, rect.x+width, r.truncateTextToWidth(line, width-1), baseStyle)
	}
	if result.Truncated && len(lines) < layout.bodyHeight {
		r.drawStyledStringClipped(rect.x+1, layout.bodyTop+len(lines), rect.x+width, "…", baseStyle.Dim(true))
	}
}
