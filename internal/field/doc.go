// Package field provides the particle field behind every animated background.
//
// A [Field] holds the viewport, the particle collection and the [Variant]
// that tunes it. Hosts drive it cooperatively:
//
//   - [Advance]: one display frame of motion (phase, pointer, velocity, edges)
//   - [Render]: paint the current frame onto a [Surface]
//   - [Field.Resize]: track the viewport, regenerating every particle
//
// # Example
//
//	f, _ := field.New(variant, field.Viewport{W: 1200, H: 800}, 1)
//	for {
//		field.Advance(f, 1, field.At(mx, my))
//		field.Render(f, surface)
//	}
//
// # Thread Safety
//
// A Field is owned by the goroutine that drives it. Run independent fields
// to use more than one goroutine.
package field
