// Package style holds the per-letter drawing attributes of Circular
// Gallifreyan: which shape a letter uses relative to the word circle and
// how many dots and lines decorate it. Tables are immutable once built and
// are passed explicitly to the layout engine.
package style
