// Package export writes fields to files: PNG frames and GIF clips through a
// gg raster surface, and single-frame SVG snapshots.
package export
