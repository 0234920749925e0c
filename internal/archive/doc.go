// Package archive rotates the glyph output directory out of the way.
package archive
