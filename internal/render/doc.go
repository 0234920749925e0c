// Package render turns layout commands into output: an SVG document, a
// plain text dump or JSON. The layout engine stays unaware of any of them;
// everything it hands over goes through the Canvas interface.
package render
