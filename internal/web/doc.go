// Package web hosts a field as a full-window page background with Ebiten.
// It builds natively and for GOOS=js, where the canvas fills the browser
// page. The page glue (fading cards, anchor keys, hover tags) is drawn on
// top of the background and never feeds input back into it.
package web
