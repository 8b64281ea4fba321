package pride

import (
	"bufio"
	"errors"
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// watchInput blocks on line reads from in and sets pressed exactly once,
// on the first line that arrives, then returns. End of input is not a
// signal and is retried; read errors are logged and retried.
func watchInput(in io.Reader, pressed *atomic.Bool) {
	r := bufio.NewReader(in)
	for {
		line, err := r.ReadString('\n')
		switch {
		case err == nil:
			pressed.Store(true)
			return
		case errors.Is(err, io.EOF):
			// An unterminated trailing line still counts as input.
			if line != "" {
				pressed.Store(true)
				return
			}
		default:
			log.Error("failed to read line from standard input", "error", err)
		}
	}
}
