// Package store keeps a history of rendered words in a SQLite database.
package store
