package pride

import (
	"strings"
	"unicode/utf8"
)

// blocks is the number of horizontal color bands across the screen.
const blocks = 9

// Layout holds the frame geometry derived from the terminal size and the
// rendered text content. All coordinates are signed; content larger than
// the terminal yields negative or overlapping boxes, which render clipped
// rather than failing.
type Layout struct {
	Width, Height int

	// BlockWidth is the stripe thickness in columns.
	BlockWidth int

	// Lines are the art rows, trimmed of the surrounding newlines.
	Lines  []string
	Notice string

	TextStartX, TextEndX int
	TextStartY, TextEndY int

	NoticeStartX, NoticeEndX int
	NoticeY                  int
}

// NewLayout centers the art block in a w x h terminal and right-aligns
// the notice on the bottom row.
func NewLayout(w, h int, art, notice string) Layout {
	lines := strings.Split(strings.Trim(art, "\n"), "\n")
	textHeight := len(lines)
	textWidth := utf8.RuneCountInString(lines[0])

	l := Layout{
		Width:      w,
		Height:     h,
		BlockWidth: w / blocks,
		Lines:      lines,
		Notice:     notice,
	}

	l.TextStartY = h/2 - textHeight/2
	l.TextEndY = l.TextStartY + textHeight
	l.TextStartX = w/2 - textWidth/2
	l.TextEndX = l.TextStartX + textWidth

	l.NoticeStartX = w - utf8.RuneCountInString(notice) - 1
	l.NoticeEndX = w - 1
	l.NoticeY = h - 1

	return l
}
