package render

import (
	"os"
	"os/user"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/stranger/internal/fs"
	statepkg "github.com/kk-code-lab/stranger/internal/state"
	textutil "github.com/kk-code-lab/stranger/internal/textutil"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen       tcell.Screen
	theme        ColorTheme
	identity     string
	widths       map[rune]int
	previewCache *previewCache
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:   screen,
		theme:    GetColorTheme(),
		identity: whoami(),
	}
}

// whoami returns user@host for the header.
func whoami() string {
	name := "unknown"
	if u, err := user.Current(); err == nil && u.Username != "" {
		name = u.Username
	}
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "localhost"
	}
	return name + "@" + host
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.HideCursor()
	r.screen.Clear()

	w, h := r.screen.Size()
	layout := r.computeLayout(w, h)

	r.drawHeader(state, w)
	if state.Mode.Kind == statepkg.ModeBookmarks {
		r.drawBookmarks(state, layout, w)
	} else {
		r.drawColumns(state, layout)
	}

	switch state.Modal.Type {
	case statepkg.ModalUnderLine:
		r.drawUnderLine(state, layout, w)
	case statepkg.ModalHintBar:
		r.drawHintBar(state, layout, w)
	}
	r.drawFooter(state, layout, w)

	r.screen.Show()
}

// drawHeader renders user@host followed by the current directory and the
// entry under the cursor.
func (r *Renderer) drawHeader(state *statepkg.AppState, w int) {
	base := tcell.StyleDefault.Background(r.theme.Background)
	r.fillRow(0, 0, w, base)

	x := r.drawStyledStringClipped(0, 0, w, r.identity, base.Foreground(r.theme.HeaderUser).Bold(true))
	x = r.drawStyledStringClipped(x, 0, w, " ", base)

	dir := textutil.SanitizeTerminalText(state.CurrentDir)
	if dir != string(filepath.Separator) {
		dir += string(filepath.Separator)
	}
	x = r.drawStyledStringClipped(x, 0, w, dir, base.Foreground(r.theme.HeaderPath).Bold(true))

	if file := state.CurrentFile(); file != nil && state.Mode.Kind != statepkg.ModeBookmarks {
		name := r.truncateTextToWidth(textutil.SanitizeTerminalText(file.Name), w-x)
		r.drawStyledStringClipped(x, 0, w, name, base.Bold(true))
	}
}

// drawColumns renders parent, current and child. A file under the cursor
// is previewed in the child column.
func (r *Renderer) drawColumns(state *statepkg.AppState, layout layoutMetrics) {
	cols := state.Columns
	for col := 0; col < statepkg.NumColumns; col++ {
		rect := layout.columns[col]
		if rect.width <= 1 {
			continue
		}
		opts := listingOptions{
			current:  col == statepkg.ColumnCurrent,
			showMeta: col != statepkg.ColumnParent,
			selected: -1,
		}

		switch col {
		case statepkg.ColumnParent:
			opts.selected = fsutil.IndexOf(cols.Files[col], filepath.Base(state.CurrentDir))
		case statepkg.ColumnCurrent:
			opts.selected = state.Cursor
			opts.pattern = state.Pattern
			opts.visual = state.Mode.Kind == statepkg.ModeVisual
			opts.state = state
		case statepkg.ColumnChild:
			if cols.Dirs[col].IsNone() {
				if path := state.CurrentFilePath(); path != "" {
					r.drawFilePreview(rect, layout, path)
				}
				continue
			}
			opts.selected = state.Positions.Get(cols.Dirs[col].Path)
		}

		if len(cols.Files[col]) == 0 {
			if col != statepkg.ColumnParent && !cols.Dirs[col].IsNone() {
				r.drawEmptyMarker(rect, layout)
			}
			continue
		}
		r.drawListing(rect, layout, cols.Files[col], opts)
	}
}

type listingOptions struct {
	current  bool
	showMeta bool
	visual   bool
	selected int
	pattern  string
	state    *statepkg.AppState // for marks; current column only
}

func (r *Renderer) drawListing(rect columnRect, layout layoutMetrics, files []statepkg.FileEntry, opts listingOptions) {
	width := rect.width - 1
	offset := scrollOffset(opts.selected, len(files), layout.bodyHeight)
	for row := 0; row < layout.bodyHeight; row++ {
		idx := offset + row
		if idx >= len(files) {
			break
		}
		marked := opts.state != nil && opts.state.IsMarked(files[idx].Name)
		r.drawEntryRow(rect.x, layout.bodyTop+row, width, files[idx], rowFlags{
			selected: idx == opts.selected,
			current:  opts.current,
			marked:   marked,
			visual:   opts.visual,
			showMeta: opts.showMeta,
			pattern:  opts.pattern,
		})
	}
}

type rowFlags struct {
	selected bool
	current  bool
	marked   bool
	visual   bool
	showMeta bool
	pattern  string
}

func (r *Renderer) entryStyle(entry statepkg.FileEntry, flags rowFlags) tcell.Style {
	style := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.FileFg)
	if entry.IsDir() {
		style = style.Foreground(r.theme.DirectoryFg).Bold(true)
	}

	switch {
	case flags.selected && flags.current && (flags.marked || flags.visual):
		return style.Background(r.theme.MarkedBg).Foreground(r.theme.SelectionFg)
	case flags.selected && flags.current && entry.IsDir():
		return style.Background(r.theme.DirSelectBg).Foreground(r.theme.SelectionFg)
	case flags.selected && flags.current:
		return style.Background(r.theme.FileSelectBg).Foreground(r.theme.SelectionFg)
	case flags.selected:
		return style.Reverse(true)
	case flags.marked:
		return style.Foreground(r.theme.MarkedFg)
	}
	return style
}

// drawEntryRow draws " name ... meta" padded to width.
func (r *Renderer) drawEntryRow(x, y, width int, entry statepkg.FileEntry, flags rowFlags) {
	if width <= 0 {
		return
	}
	style := r.entryStyle(entry, flags)
	maxX := x + width
	r.fillRow(x, y, maxX, style)

	meta := ""
	if flags.showMeta {
		meta = entry.DisplaySize()
	}
	metaWidth := r.measureTextWidth(meta)
	nameWidth := width - 1
	if metaWidth > 0 {
		nameWidth -= metaWidth + 2
	}
	if nameWidth < 1 {
		// drop the metadata before the name
		meta, metaWidth, nameWidth = "", 0, width-1
	}

	name := r.truncateTextToWidth(textutil.SanitizeTerminalText(entry.Name), nameWidth)
	if flags.pattern != "" && entry.Matched() && !flags.selected {
		r.drawMatchedName(x+1, y, x+1+nameWidth, name, len([]rune(flags.pattern)), style, style.Foreground(r.theme.MatchFg).Bold(true))
	} else {
		r.drawStyledStringClipped(x+1, y, x+1+nameWidth, name, style)
	}

	if metaWidth > 0 {
		metaStyle := style
		if !flags.selected {
			metaStyle = metaStyle.Foreground(r.theme.MetaFg).Bold(false)
		}
		r.drawStyledStringClipped(maxX-metaWidth-1, y, maxX, meta, metaStyle)
	}
}

func (r *Renderer) drawEmptyMarker(rect columnRect, layout layoutMetrics) {
	if layout.bodyHeight <= 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(r.theme.EmptyFg).Italic(true)
	r.drawStyledStringClipped(rect.x+1, layout.bodyTop, rect.x+rect.width-1, "empty", style)
}

// drawBookmarks lists aliases and paths on the left and previews the
// highlighted target on the right.
func (r *Renderer) drawBookmarks(state *statepkg.AppState, layout layoutMetrics, w int) {
	listWidth := w * bookmarksPercent / 100
	selected := state.Mode.BookmarkIndex
	offset := scrollOffset(selected, len(state.Bookmarks), layout.bodyHeight)

	for row := 0; row < layout.bodyHeight; row++ {
		idx := offset + row
		if idx >= len(state.Bookmarks) {
			break
		}
		bm := state.Bookmarks[idx]
		y := layout.bodyTop + row
		aliasStyle := tcell.StyleDefault.Foreground(r.theme.DirectoryFg).Bold(true)
		pathStyle := tcell.StyleDefault.Foreground(r.theme.MetaFg)
		if idx == selected {
			aliasStyle = aliasStyle.Background(r.theme.DirSelectBg).Foreground(r.theme.SelectionFg)
			pathStyle = pathStyle.Background(r.theme.DirSelectBg).Foreground(r.theme.SelectionFg)
			r.fillRow(0, y, listWidth-1, aliasStyle)
		}
		x := r.drawStyledStringClipped(1, y, listWidth-1, r.truncateTextToWidth(bm.Alias, listWidth-2), aliasStyle)
		x = r.drawStyledStringClipped(x, y, listWidth-1, "  ", pathStyle)
		path := r.truncateTextToWidth(textutil.SanitizeTerminalText(bm.Path), listWidth-1-x)
		r.drawStyledStringClipped(x, y, listWidth-1, path, pathStyle)
	}

	preview := state.Preview
	rest := w - listWidth
	currentRect := columnRect{x: listWidth, width: rest / 3}
	childRect := columnRect{x: listWidth + rest/3, width: rest - rest/3}
	if preview.Dirs[statepkg.ColumnCurrent].IsNone() {
		r.drawEmptyMarker(currentRect, layout)
		return
	}

	files := preview.Files[statepkg.ColumnCurrent]
	cursor := -1
	if bm, ok := state.Bookmarks.At(selected); ok {
		if preview.Dirs[statepkg.ColumnCurrent].Path == bm.Path {
			cursor = state.Positions.Get(bm.Path)
		} else {
			cursor = fsutil.IndexOf(files, filepath.Base(bm.Path))
		}
	}
	if len(files) == 0 {
		r.drawEmptyMarker(currentRect, layout)
	} else {
		r.drawListing(currentRect, layout, files, listingOptions{current: true, showMeta: true, selected: cursor})
	}
	if !preview.Dirs[statepkg.ColumnChild].IsNone() {
		r.drawListing(childRect, layout, preview.Files[statepkg.ColumnChild], listingOptions{showMeta: true, selected: -1})
	}
}

// drawUnderLine draws the boxed edit field just below the cursor row.
func (r *Renderer) drawUnderLine(state *statepkg.AppState, layout layoutMetrics, w int) {
	rect := layout.columns[statepkg.ColumnCurrent]
	width := rect.width
	if width < 30 {
		width = 30
	}
	if rect.x+width > w {
		width = w - rect.x
	}
	if width < 4 || state.Edit == nil {
		return
	}

	offset := scrollOffset(state.Cursor, len(state.CurrentFiles()), layout.bodyHeight)
	y := layout.bodyTop + state.Cursor - offset + 1
	if y+3 > layout.footerY {
		y = layout.footerY - 3
	}
	if y < layout.bodyTop {
		y = layout.bodyTop
	}

	title := "Add File"
	switch state.Modal.Action {
	case statepkg.UnderLineEdit:
		title = "Rename File"
	case statepkg.UnderLineBookmarks:
		title = "Add New Bookmark Name"
	}

	style := tcell.StyleDefault.Foreground(r.theme.EditFg).Bold(true)
	r.drawBox(rect.x, y, width, 3, title, style)

	inner := width - 2
	text := state.Edit.String()
	cursorCol := r.measureTextWidth(string([]rune(text)[:state.Edit.Cursor()]))
	shift := 0
	if cursorCol >= inner {
		shift = cursorCol - inner + 1
	}
	visible := r.dropColumns(text, shift)
	r.drawStyledStringClipped(rect.x+1, y+1, rect.x+1+inner, visible, tcell.StyleDefault.Bold(true))
	r.screen.ShowCursor(rect.x+1+cursorCol-shift, y+1)
}

func (r *Renderer) drawBox(x, y, width, height int, title string, style tcell.Style) {
	right, bottom := x+width-1, y+height-1
	for cx := x; cx <= right; cx++ {
		r.screen.SetContent(cx, y, tcell.RuneHLine, nil, style)
		r.screen.SetContent(cx, bottom, tcell.RuneHLine, nil, style)
	}
	for cy := y + 1; cy < bottom; cy++ {
		r.screen.SetContent(x, cy, tcell.RuneVLine, nil, style)
		r.fillRow(x+1, cy, right, tcell.StyleDefault)
		r.screen.SetContent(right, cy, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(x, y, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(right, y, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(x, bottom, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
	r.drawStyledStringClipped(x+1, y, right, r.truncateTextToWidth(title, width-2), style)
}

// drawHintBar lists the sub-menu keys above the footer.
func (r *Renderer) drawHintBar(state *statepkg.AppState, layout layoutMetrics, w int) {
	items := hintBarItems(state.Modal.Bar)
	top := layout.footerY - len(items)
	if top < layout.bodyTop {
		top = layout.bodyTop
	}
	base := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.HintFg)
	keyStyle := base.Foreground(r.theme.HintKeyFg).Bold(true)
	for i, item := range items {
		y := top + i
		if y >= layout.footerY {
			break
		}
		r.fillRow(0, y, w, base)
		x := r.drawStyledStringClipped(1, y, w, item.key, keyStyle)
		x = r.drawStyledStringClipped(x, y, w, "  ", base)
		r.drawStyledStringClipped(x, y, w, item.label, base)
	}
}

// drawFooter shows the search prompt, the notification or the key help on
// the left and the cursor entry status on the right.
func (r *Renderer) drawFooter(state *statepkg.AppState, layout layoutMetrics, w int) {
	y := layout.footerY
	if y < 0 {
		return
	}
	base := tcell.StyleDefault.Background(r.theme.Background)
	r.fillRow(0, y, w, base)

	if state.Modal.Type == statepkg.ModalBottomLine && state.Edit != nil {
		text := state.Edit.String()
		x := r.drawStyledStringClipped(0, y, w, "/", base.Foreground(r.theme.EditFg).Bold(true))
		r.drawStyledStringClipped(x, y, w, text, base)
		cursorCol := r.measureTextWidth(string([]rune(text)[:state.Edit.Cursor()]))
		r.screen.ShowCursor(x+cursorCol, y)
		return
	}

	status := formatEntryStatus(state)
	statusWidth := r.measureTextWidth(status)

	left, leftStyle := buildFooterHelpText(state), base.Foreground(r.theme.FooterFg)
	if n := state.Notification; n != nil {
		left, leftStyle = " "+textutil.SanitizeTerminalText(n.Message), base.Foreground(r.levelColor(n.Level)).Bold(true)
	}

	leftMax := w
	if statusWidth > 0 && statusWidth+2 < w {
		leftMax = w - statusWidth - 2
		r.drawStyledStringClipped(w-statusWidth-1, y, w, status, base.Foreground(r.theme.MetaFg))
	}
	r.drawStyledStringClipped(0, y, leftMax, r.truncateTextToWidth(left, leftMax), leftStyle)
}

func (r *Renderer) levelColor(level statepkg.NotificationLevel) tcell.Color {
	switch level {
	case statepkg.LevelSuccess:
		return r.theme.SuccessFg
	case statepkg.LevelWarn:
		return r.theme.WarnFg
	case statepkg.LevelError:
		return r.theme.ErrorFg
	default:
		return r.theme.InfoFg
	}
}
