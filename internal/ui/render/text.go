package render

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const ellipsis = '…'

// cellWidth is the number of terminal cells ru occupies. Widths are cached
// per renderer; rendering happens on the loop goroutine only.
func (r *Renderer) cellWidth(ru rune) int {
	if ru < 0x20 {
		return 0
	}
	if ru < 0x7f {
		return 1
	}
	if w, ok := r.widths[ru]; ok {
		return w
	}
	w := runewidth.RuneWidth(ru)
	if w < 0 {
		w = 0
	}
	if r.widths == nil {
		r.widths = make(map[rune]int)
	}
	r.widths[ru] = w
	return w
}

func (r *Renderer) measureTextWidth(text string) int {
	total := 0
	for _, ru := range text {
		total += r.cellWidth(ru)
	}
	return total
}

// truncateTextToWidth cuts text to maxWidth cells, ending with an ellipsis
// when anything was dropped.
func (r *Renderer) truncateTextToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	if r.measureTextWidth(text) <= maxWidth {
		return text
	}
	budget := maxWidth - r.cellWidth(ellipsis)
	if budget <= 0 {
		return string(ellipsis)
	}

	var b strings.Builder
	for _, ru := range text {
		w := r.cellWidth(ru)
		if w > budget {
			break
		}
		b.WriteRune(ru)
		budget -= w
	}
	b.WriteRune(ellipsis)
	return b.String()
}

// dropColumns removes leading runes until cols display columns are gone.
func (r *Renderer) dropColumns(text string, cols int) string {
	for i, ru := range text {
		if cols <= 0 {
			return text[i:]
		}
		cols -= r.cellWidth(ru)
	}
	return ""
}

// drawCombining writes text into [startX, maxX), attaching combining marks to
// the cell before them.
func (r *Renderer) drawCombining(startX, y, maxX int, text string, style tcell.Style) int {
	runes := []rune(text)
	x := startX
	for i := 0; i < len(runes) && x < maxX; {
		main := runes[i]
		i++
		var marks []rune
		for i < len(runes) && unicode.Is(unicode.Mn, runes[i]) {
			marks = append(marks, runes[i])
			i++
		}
		r.screen.SetContent(x, y, main, marks, style)
		x += max(r.cellWidth(main), 1)
	}
	return x
}

// drawStyledStringClipped writes text rune by rune into [startX, maxX) and
// returns the column after the last cell written. Wide runes pad their
// trailing cell so the background stays continuous.
func (r *Renderer) drawStyledStringClipped(startX, y, maxX int, text string, style tcell.Style) int {
	x := startX
	for _, ru := range text {
		if x >= maxX {
			break
		}
		x = r.putRune(x, y, maxX, ru, style)
	}
	return x
}

func (r *Renderer) putRune(x, y, maxX int, ru rune, style tcell.Style) int {
	w := max(r.cellWidth(ru), 1)
	r.screen.SetContent(x, y, ru, nil, style)
	for pad := 1; pad < w && x+pad < maxX; pad++ {
		r.screen.SetContent(x+pad, y, ' ', nil, style)
	}
	return x + w
}

// drawMatchedName draws name with its first prefixLen runes in the match style.
func (r *Renderer) drawMatchedName(startX, y, maxX int, name string, prefixLen int, style, match tcell.Style) int {
	x := startX
	n := 0
	for _, ru := range name {
		if x >= maxX {
			break
		}
		s := style
		if n < prefixLen {
			s = match
		}
		x = r.putRune(x, y, maxX, ru, s)
		n++
	}
	return x
}

// fillRow paints [startX, maxX) on row y with style.
func (r *Renderer) fillRow(startX, y, maxX int, style tcell.Style) {
	for x := startX; x < maxX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}
