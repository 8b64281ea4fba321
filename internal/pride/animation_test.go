package pride

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/oSoWoSo/neofetch/internal/color"
)

func testAnimation(t *testing.T, out io.Writer, in io.Reader) *Animation {
	t.Helper()
	r, err := NewRenderer(NewLayout(30, 6, "\nAB\n", "hi"), testCycle, color.ModeRGB)
	if err != nil {
		t.Fatal(err)
	}
	return &Animation{
		renderer: r,
		out:      bufio.NewWriter(out),
		in:       in,
		delay:    time.Millisecond,
		speed:    frameSpeed,
	}
}

func TestRunStopsOnInput(t *testing.T) {
	var out bytes.Buffer
	a := testAnimation(t, &out, strings.NewReader("\n"))

	start := time.Now()
	if err := a.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("run took %v after input arrived", elapsed)
	}

	buf := out.String()
	frames := strings.Count(buf, clearScreen) - 1
	if frames < 1 {
		t.Fatal("no frame was drawn")
	}
	if got := len(a.FrameTimings()); got != frames {
		t.Errorf("recorded %d timings for %d frames", got, frames)
	}
	if !strings.HasSuffix(buf, color.ResetSequence+clearScreen) {
		t.Error("missing final reset and clear")
	}
	if n := strings.Count(buf, color.ResetSequence+clearScreen); n != 1 {
		t.Errorf("reset+clear emitted %d times, want once", n)
	}
}

func TestRunExitsAfterOneFrameWhenCancelled(t *testing.T) {
	in, _ := io.Pipe() // never delivers a line
	var out bytes.Buffer
	a := testAnimation(t, &out, in)
	a.pressed.Store(true)

	if err := a.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// One frame clear plus the final cleanup clear.
	if n := strings.Count(out.String(), clearScreen); n != 2 {
		t.Errorf("screen cleared %d times, want 2", n)
	}
	if len(a.FrameTimings()) != 1 {
		t.Errorf("drew %d frames after cancellation, want 1", len(a.FrameTimings()))
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("tty gone")
}

func TestRunPropagatesWriteFailure(t *testing.T) {
	in, _ := io.Pipe()
	a := testAnimation(t, failWriter{}, in)

	err := a.Run()
	if err == nil {
		t.Fatal("expected write failure")
	}
	if !strings.Contains(err.Error(), "failed to write frame") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRunAdvancesFrames(t *testing.T) {
	var out bytes.Buffer
	a := testAnimation(t, &out, strings.NewReader("\n"))
	a.delay = 5 * time.Millisecond

	if err := a.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// Consecutive frames differ because the frame counter advanced.
	frames := strings.Split(out.String(), clearScreen)[1:]
	if len(frames) >= 3 && frames[0] == frames[1] {
		t.Error("frame counter did not advance between ticks")
	}
}
