// Package notes owns the note directory and its JSON index. It provides
// create/delete/list/read operations and keeps the index and the files on
// disk in lockstep across every mutating operation.
package notes

import "errors"

// Sentinel errors for store operations. Callers match with errors.Is.
var (
	// ErrInvalidInput means the title or description is empty after trimming.
	ErrInvalidInput = errors.New("title and description must not be empty")

	// ErrDuplicateNote means a note file for the same formatted timestamp
	// already exists. Creation fails rather than overwriting.
	ErrDuplicateNote = errors.New("a note with this timestamp already exists")

	// ErrCapacityExceeded means the configured note limit has been reached.
	ErrCapacityExceeded = errors.New("maximum number of notes reached")

	// ErrNotFound means the requested note file does not exist.
	ErrNotFound = errors.New("note not found")

	// ErrStorageUnavailable means the index is unreadable or corrupt.
	// Fatal for the session; not recoverable locally.
	ErrStorageUnavailable = errors.New("note storage unavailable")
)

// NoteRecord is one index entry. Filename is the unique key, derived from
// the creation timestamp and immutable for the life of the note.
type NoteRecord struct {
	Filename string
	Title    string
	Created  string
}

// indexEntry is the persisted form of a record in index.json.
type indexEntry struct {
	Title   string `json:"title"`
	Created string `json:"created"`
}
