package render

import statepkg "github.com/kk-code-lab/stranger/internal/state"

const (
	headerHeight = 2
	footerHeight = 1

	parentColumnPercent  = 20
	currentColumnPercent = 20

	// bookmark list share of the body in Bookmarks mode
	bookmarksPercent = 40

	// rows kept below the cursor before a column starts scrolling
	scrollMargin = 6

	minColumnWidth = 4
)

type columnRect struct {
	x     int
	width int
}

type layoutMetrics struct {
	columns    [statepkg.NumColumns]columnRect
	bodyTop    int
	bodyHeight int
	footerY    int
}

// computeLayout splits the screen into header, three columns and the footer.
// Each column keeps its last cell blank as a separator.
func (r *Renderer) computeLayout(w, h int) layoutMetrics {
	var layout layoutMetrics
	layout.bodyTop = headerHeight
	layout.footerY = h - footerHeight
	layout.bodyHeight = layout.footerY - layout.bodyTop
	if layout.bodyHeight < 0 {
		layout.bodyHeight = 0
	}

	parent := w * parentColumnPercent / 100
	current := w * currentColumnPercent / 100
	if current < minColumnWidth && w >= minColumnWidth {
		// very narrow terminals show the current column only
		parent, current = 0, w
	}
	child := w - parent - current
	if child < 0 {
		child = 0
	}

	layout.columns[statepkg.ColumnParent] = columnRect{x: 0, width: parent}
	layout.columns[statepkg.ColumnCurrent] = columnRect{x: parent, width: current}
	layout.columns[statepkg.ColumnChild] = columnRect{x: parent + current, width: child}
	return layout
}

// scrollOffset returns the first visible row so that cursor stays on screen
// with scrollMargin rows of context below it where possible.
func scrollOffset(cursor, count, height int) int {
	if height <= 0 || count <= height {
		return 0
	}
	margin := scrollMargin
	if margin >= height {
		margin = height - 1
	}
	upper := height - margin
	if cursor < upper {
		return 0
	}
	offset := cursor - upper + 1
	if maxOffset := count - height; offset > maxOffset {
		offset = maxOffset
	}
	return offset
}
