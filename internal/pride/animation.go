package pride

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/oSoWoSo/neofetch/internal/color"
	"github.com/oSoWoSo/neofetch/internal/presets"
	"golang.org/x/term"
)

const (
	clearScreen = "\033[2J\033[H"

	// frameSpeed is the frame counter advance per tick; frameDelay paces
	// the loop at 25 frames per second.
	frameSpeed = 2
	frameDelay = time.Second / 25
)

// Animation owns the draw loop. Geometry is captured at construction and
// never refreshed; resizing the terminal mid-run leaves the frame at the
// old size.
type Animation struct {
	renderer *Renderer
	out      *bufio.Writer
	in       io.Reader
	delay    time.Duration
	speed    int

	pressed atomic.Bool
	timings []float64
}

// New builds an animation for a w x h terminal, scrolling the full
// preset catalog in the given color mode. It draws to stdout and stops
// on the first line read from stdin.
func New(w, h int, mode color.Mode) (*Animation, error) {
	r, err := NewRenderer(NewLayout(w, h, textBanner, noticeText), presets.ColorCycle(), mode)
	if err != nil {
		return nil, err
	}
	return &Animation{
		renderer: r,
		out:      bufio.NewWriter(os.Stdout),
		in:       os.Stdin,
		delay:    frameDelay,
		speed:    frameSpeed,
	}, nil
}

// TerminalSize reports the stdout terminal geometry in character cells.
func TerminalSize() (int, int, error) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get terminal size: %w", err)
	}
	return w, h, nil
}

// Run draws frames until a line arrives on the input stream, then resets
// the terminal style and clears the screen. Write failures abort the run
// immediately.
func (a *Animation) Run() error {
	go watchInput(a.in, &a.pressed)

	frame := 0
	for {
		start := time.Now()
		if err := a.writeFrame(frame); err != nil {
			return err
		}
		a.timings = append(a.timings, float64(time.Since(start).Microseconds())/1000)

		frame += a.speed
		time.Sleep(a.delay)

		if a.pressed.Load() {
			break
		}
	}

	if err := a.write(color.ResetSequence + clearScreen); err != nil {
		return fmt.Errorf("failed to reset terminal: %w", err)
	}
	return nil
}

// writeFrame clears the screen and writes the fully assembled frame as
// one write+flush, so no partial frame is ever visible.
func (a *Animation) writeFrame(frame int) error {
	if err := a.write(clearScreen + a.renderer.Frame(frame)); err != nil {
		return fmt.Errorf("failed to write frame to stdout: %w", err)
	}
	return nil
}

func (a *Animation) write(s string) error {
	if _, err := a.out.WriteString(s); err != nil {
		return err
	}
	return a.out.Flush()
}

// FrameTimings returns the render+write duration of every drawn frame in
// milliseconds. Valid after Run returns.
func (a *Animation) FrameTimings() []float64 {
	return a.timings
}
