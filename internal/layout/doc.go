// Package layout places Gallifreyan letters around a word circle.
//
// Angles given to AngularPosition are in degrees, 0 pointing straight down
// from the center and growing counter-clockwise on screen. Arc bounds in
// emitted commands use the raster convention instead: degrees, 0 at three
// o'clock, growing clockwise with y pointing down. Pixel bounding boxes are
// truncated toward zero, not rounded.
package layout
