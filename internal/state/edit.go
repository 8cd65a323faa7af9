package state

import (
	"unicode"
	"unicode/utf8"
)

// maxEditBytes bounds the edit line to a single path component.
const maxEditBytes = 255

// CursorMove is a cursor motion inside the edit line.
type CursorMove int

const (
	CursorLeft CursorMove = iota
	CursorRight
	CursorHome
	CursorEnd
	CursorWordLeft
	CursorWordRight
)

// EditBuffer is the single pending edit of Insert mode.
type EditBuffer struct {
	runes  []rune
	cursor int
	size   int // bytes
}

// NewEditBuffer starts an edit pre-filled with initial, cursor at the end.
func NewEditBuffer(initial string) *EditBuffer {
	b := &EditBuffer{}
	for _, r := range initial {
		b.Insert(r)
	}
	return b
}

func (b *EditBuffer) String() string {
	return string(b.runes)
}

// Cursor is the rune offset of the caret.
func (b *EditBuffer) Cursor() int {
	return b.cursor
}

// Insert adds r at the caret. Control runes and input past the size limit are
// rejected.
func (b *EditBuffer) Insert(r rune) bool {
	if unicode.IsControl(r) || r == utf8.RuneError {
		return false
	}
	n := utf8.RuneLen(r)
	if b.size+n > maxEditBytes {
		return false
	}
	b.runes = append(b.runes, 0)
	copy(b.runes[b.cursor+1:], b.runes[b.cursor:])
	b.runes[b.cursor] = r
	b.cursor++
	b.size += n
	return true
}

// Backspace removes the rune before the caret.
func (b *EditBuffer) Backspace() {
	if b.cursor == 0 {
		return
	}
	b.deleteRange(b.cursor-1, b.cursor)
}

// DeleteWord removes back to the previous word boundary.
func (b *EditBuffer) DeleteWord() {
	start := previousWordBoundary(b.runes, b.cursor)
	b.deleteRange(start, b.cursor)
}

// Move repositions the caret.
func (b *EditBuffer) Move(m CursorMove) {
	switch m {
	case CursorLeft:
		if b.cursor > 0 {
			b.cursor--
		}
	case CursorRight:
		if b.cursor < len(b.runes) {
			b.cursor++
		}
	case CursorHome:
		b.cursor = 0
	case CursorEnd:
		b.cursor = len(b.runes)
	case CursorWordLeft:
		b.cursor = previousWordBoundary(b.runes, b.cursor)
	case CursorWordRight:
		b.cursor = nextWordBoundary(b.runes, b.cursor)
	}
}

func (b *EditBuffer) deleteRange(from, to int) {
	if from >= to {
		return
	}
	for _, r := range b.runes[from:to] {
		b.size -= utf8.RuneLen(r)
	}
	b.runes = append(b.runes[:from], b.runes[to:]...)
	b.cursor = from
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func previousWordBoundary(runes []rune, pos int) int {
	if pos > len(runes) {
		pos = len(runes)
	}
	i := pos
	for i > 0 && !isWordChar(runes[i-1]) {
		i--
	}
	for i > 0 && isWordChar(runes[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(runes []rune, pos int) int {
	i := pos
	for i < len(runes) && !isWordChar(runes[i]) {
		i++
	}
	for i < len(runes) && isWordChar(runes[i]) {
		i++
	}
	return i
}
