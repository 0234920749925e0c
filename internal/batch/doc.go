// Package batch reads word lists for batch rendering.
package batch
