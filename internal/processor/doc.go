// Package processor contains the core workflow of the gallifreyan command.
// It normalizes and optionally respells words, transliterates them, lays
// them out around the word circle, writes the SVG, text or JSON artifact
// and records every render in the history database.
package processor
