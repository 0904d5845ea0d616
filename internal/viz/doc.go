// Package viz is the terminal preview host: a Braille canvas that
// implements [field.Surface] and a Bubble Tea program that drives a field
// from terminal size and mouse events.
//
//   - [Canvas]: 2x4 Braille sub-pixel grid with Bresenham lines
//   - [Surface]: maps field coordinates onto a canvas, dithering glows
//   - [Model]: tea.Model wiring resize, pointer, blur and tick messages
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Regenerate particles
//	T     - Cycle themes
//	?     - Show help overlay
//	Q     - Quit
package viz
