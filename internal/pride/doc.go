// Package pride renders the full-screen pride month animation: a
// diagonally scrolling gradient over every flag palette in the preset
// catalog, behind a fixed ASCII banner and a bottom-right notice, until a
// line arrives on standard input.
//
// The package splits the work into three layers:
//
//   - [Layout]: pure geometry derived once from the terminal size
//   - [Renderer]: pure frame composition, one styled string per frame
//   - [Animation]: the fixed-rate draw loop and its input watcher
//
// # Example
//
//	w, h, err := pride.TerminalSize()
//	anim, err := pride.New(w, h, color.ModeRGB)
//	err = anim.Run()
//
// # Concurrency
//
// Run drives the loop on the calling goroutine and spawns one watcher
// goroutine blocked on standard input. They share a single write-once
// atomic flag; the loop polls it after every sleep and never blocks on
// the watcher. The watcher is abandoned at process exit.
package pride
