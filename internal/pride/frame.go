package pride

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/oSoWoSo/neofetch/internal/color"
)

const textBanner = `
.======================================================.
| .  .              .__       .     .  .       , .   | |
| |__| _.._ ._   .  [__)._.* _| _   |\/| _ ._ -+-|_  | |
| |  |(_][_)[_)\_|  |   [  |(_](/,  |  |(_)[ ) | [ ) * |
|        |  |  ._|                                     |
'======================================================'
`

const noticeText = "Press enter to continue"

// overlayAlpha is the opacity of the black layer blended over stripes
// inside the text boxes.
const overlayAlpha = 0.5

var textFg = color.MustHex("#FFE09B")

var (
	// ErrEmptyCycle indicates an empty color cycle.
	ErrEmptyCycle = errors.New("pride: color cycle is empty")

	// ErrTerminalTooSmall indicates a terminal narrower than one color
	// band per block.
	ErrTerminalTooSmall = errors.New("pride: terminal too narrow for color blocks")
)

// Renderer composes animation frames. It is a pure function of its
// inputs: the same frame index always yields a byte-identical buffer.
type Renderer struct {
	layout Layout
	cycle  []color.RGB
	mode   color.Mode
	fgSeq  string
	rows   [][]rune
	notice []rune
}

// NewRenderer validates the geometry and cycle and prepares the art rows
// for per-cell indexing.
func NewRenderer(layout Layout, cycle []color.RGB, mode color.Mode) (*Renderer, error) {
	if len(cycle) == 0 {
		return nil, ErrEmptyCycle
	}
	if layout.BlockWidth < 1 {
		return nil, fmt.Errorf("%w: width %d", ErrTerminalTooSmall, layout.Width)
	}

	rows := make([][]rune, len(layout.Lines))
	for i, line := range layout.Lines {
		rows[i] = []rune(line)
	}

	return &Renderer{
		layout: layout,
		cycle:  cycle,
		mode:   mode,
		fgSeq:  textFg.Sequence(mode, false),
		rows:   rows,
		notice: []rune(layout.Notice),
	}, nil
}

// waveIndex maps a cell to its diagonal stripe index. The sine term adds
// a slow vertical ripple so stripes are not straight lines. It stays
// non-negative for every frame >= 0 the loop can reach.
func waveIndex(frame, x, y int) int {
	ripple := int(math.Floor(2 * math.Sin(float64(y)+0.5*float64(frame))))
	return frame + x + y + ripple
}

// Frame renders one full screen of styled cells for the given frame
// index, rows separated by a reset and newline except after the last.
// The frame index must be non-negative.
func (r *Renderer) Frame(frame int) string {
	l := r.layout
	n := len(r.cycle)

	var b strings.Builder
	for y := 0; y < l.Height; y++ {
		// Row prologue: background for the row's first stripe, then
		// the constant text foreground.
		b.WriteString(r.cycle[((frame+y)/l.BlockWidth)%n].Sequence(r.mode, true))
		b.WriteString(r.fgSeq)

		yText := l.TextStartY <= y && y < l.TextEndY
		border := 2
		if y == l.TextStartY || y == l.TextEndY-1 {
			border = 1
		}

		for x := 0; x < l.Width; x++ {
			idx := waveIndex(frame, x, y)

			// Emit a fresh background only at stripe boundaries and at
			// the widened box edges.
			if idx%l.BlockWidth == 0 ||
				x == l.TextStartX-border || x == l.TextEndX+border ||
				x == l.NoticeStartX-1 || x == l.NoticeEndX+1 {
				c := r.cycle[(idx/l.BlockWidth)%n]
				if (yText && l.TextStartX-border <= x && x < l.TextEndX+border) ||
					(y == l.NoticeY && l.NoticeStartX-1 <= x && x < l.NoticeEndX+1) {
					c = c.Overlay(color.RGB{}, overlayAlpha)
				}
				b.WriteString(c.Sequence(r.mode, true))
			}

			switch {
			case yText && l.TextStartX <= x && x < l.TextEndX:
				b.WriteRune(r.artRune(y-l.TextStartY, x-l.TextStartX))
			case y == l.NoticeY && l.NoticeStartX <= x && x < l.NoticeEndX:
				b.WriteRune(r.noticeRune(x - l.NoticeStartX))
			default:
				b.WriteByte(' ')
			}
		}

		if y != l.Height-1 {
			b.WriteString(color.ResetSequence)
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func (r *Renderer) artRune(row, col int) rune {
	if row < len(r.rows) && col < len(r.rows[row]) {
		return r.rows[row][col]
	}
	return ' '
}

func (r *Renderer) noticeRune(col int) rune {
	if col < len(r.notice) {
		return r.notice[col]
	}
	return ' '
}
